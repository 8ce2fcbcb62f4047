// internal/normalize/resolve.go
package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/errors"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/validation"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/safety"
)

// ResolveItems normalizes a text-resolution payload. Unlike the image
// endpoint, this one tolerates no alternate shapes: the payload must be
// an object with an array-valued hits field, every hit must carry a
// recognized verdict, and any deviation is a ShapeMismatch for the
// whole call. The backend-computed overall status is returned for
// display; it plays no part in per-item verdicts.
func ResolveItems(raw []byte) ([]safety.Item, safety.Verdict, error) {
	if err := validation.CheckResolvePayload(raw); err != nil {
		return nil, "", errors.NewShapeMismatchError(err.Error())
	}

	var resp safety.ResolveResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, "", errors.NewShapeMismatchError(fmt.Sprintf("decode resolve response: %v", err))
	}

	items, err := hitItems(resp.Hits)
	if err != nil {
		return nil, "", err
	}

	overall, ok := safety.ParseVerdict(resp.OverallStatus)
	if !ok {
		return nil, "", errors.NewShapeMismatchError(
			fmt.Sprintf("unrecognized overall_status %q", resp.OverallStatus))
	}

	return items, overall, nil
}

// hitItems maps hits 1:1 onto items, preserving backend order.
func hitItems(hits []safety.ResolveHit) ([]safety.Item, error) {
	items := make([]safety.Item, 0, len(hits))
	for i, hit := range hits {
		verdict, ok := safety.ParseVerdict(hit.Status)
		if !ok {
			return nil, errors.NewShapeMismatchError(
				fmt.Sprintf("hit %d: unrecognized status %q", i, hit.Status))
		}
		items = append(items, safety.Item{
			DisplayLabel:  hit.Token,
			CanonicalName: hit.Name,
			Verdict:       verdict,
			Confidence:    hit.Score,
			Rationale:     hit.Notes,
			Sources:       hit.Sources,
		})
	}
	return items, nil
}
