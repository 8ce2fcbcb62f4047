// internal/normalize/barcode.go
package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/errors"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/validation"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/safety"
)

// Domain failure signals the barcode resolver embeds in a 200 body.
const (
	signalBarcodeNotFound    = "barcode_not_found"
	signalIngredientsMissing = "ingredients_missing"
)

// UnknownProductName labels the aggregate card when the backend sends
// no usable display name.
const UnknownProductName = "Unknown product"

type barcodeEnvelope struct {
	Error          string              `json:"error"`
	Message        string              `json:"message"`
	Hits           []safety.ResolveHit `json:"hits"`
	OverallStatus  string              `json:"overall_status"`
	DisplayName    string              `json:"display_name"`
	RawIngredients string              `json:"raw_ingredients"`
}

// BarcodeItems normalizes a barcode-resolution payload into an
// aggregate "overall product" item followed by one item per ingredient
// hit, in backend order.
//
// Domain negatives are checked before shape: an explicit
// barcode_not_found signal is NotFound, an explicit ingredients_missing
// signal is IncompleteData, and a structurally valid lookup with zero
// hits is also IncompleteData, since a product with no matchable
// ingredients is not actionable. The overall verdict prefers a
// validated overall_status from the backend and otherwise is the worst
// verdict across the hits; an unrecognized value in this optional field
// is treated as absent rather than failing the batch.
func BarcodeItems(raw []byte, barcode string) ([]safety.Item, error) {
	var envelope barcodeEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.NewShapeMismatchError(fmt.Sprintf("decode barcode response: %v", err))
	}

	switch envelope.Error {
	case signalBarcodeNotFound:
		return nil, errors.NewNotFoundError(envelope.Message)
	case signalIngredientsMissing:
		return nil, errors.NewIncompleteDataError(envelope.Message)
	}

	if err := validation.CheckResolvePayload(raw); err != nil {
		return nil, errors.NewShapeMismatchError(err.Error())
	}
	if len(envelope.Hits) == 0 {
		return nil, errors.NewIncompleteDataError("")
	}

	items, err := hitItems(envelope.Hits)
	if err != nil {
		return nil, err
	}

	overall, ok := safety.ParseVerdict(envelope.OverallStatus)
	if !ok {
		verdicts := make([]safety.Verdict, len(items))
		for i, item := range items {
			verdicts[i] = item.Verdict
		}
		overall = safety.Worst(verdicts)
	}

	aggregate := safety.Item{
		DisplayLabel:  barcode,
		CanonicalName: productName(envelope.DisplayName),
		Verdict:       overall,
		Rationale:     aggregateRationale(len(items), envelope.RawIngredients),
		IsAggregate:   true,
	}

	return append([]safety.Item{aggregate}, items...), nil
}

func productName(displayName string) string {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return UnknownProductName
	}
	return name
}

func aggregateRationale(count int, rawIngredients string) string {
	noun := "ingredients"
	if count == 1 {
		noun = "ingredient"
	}
	sentence := fmt.Sprintf("Matched %d %s from the product label.", count, noun)
	if raw := strings.TrimSpace(rawIngredients); raw != "" {
		sentence = fmt.Sprintf("%s Label lists: %s", sentence, raw)
	}
	return sentence
}
