// Package normalize turns the three loosely-typed backend payloads
// (image classification, text resolution, barcode resolution) into one
// uniform ordered sequence of safety items.
package normalize

import (
	"encoding/json"

	"github.com/frankasd12/NibbleCheck-Mobile/internal/safety"
)

// imageItem is the already-normalized record the classifier may return
// as a bare array.
type imageItem struct {
	DisplayLabel  string   `json:"displayLabel"`
	CanonicalName string   `json:"canonicalName"`
	Verdict       string   `json:"verdict"`
	Confidence    *float64 `json:"confidence"`
	Rationale     string   `json:"rationale"`
	Sources       []string `json:"sources"`
}

// imageCandidate is the looser record carried under "candidates".
// Name fallback order: name (canonical), generic_name, label.
// Verdict fallback order: status, default_status.
type imageCandidate struct {
	Name          string   `json:"name"`
	GenericName   string   `json:"generic_name"`
	Label         string   `json:"label"`
	Status        string   `json:"status"`
	DefaultStatus string   `json:"default_status"`
	Confidence    *float64 `json:"confidence"`
	Reason        string   `json:"reason"`
	Sources       []string `json:"sources"`
}

type candidateEnvelope struct {
	Candidates []imageCandidate `json:"candidates"`
}

type itemsEnvelope struct {
	Items []imageItem `json:"items"`
}

// ImageItems normalizes an image-classification payload. Three shapes
// are accepted, tried in priority order: a bare array of normalized
// items, an object carrying a candidates array, or an object carrying
// an items array of normalized records. Any other shape yields an
// empty result set, not an error.
//
// A candidate with no resolvable verdict (or no resolvable name) is a
// shape error for that record only: the record is dropped and the rest
// of the batch is processed. Records are independent.
func ImageItems(raw []byte) []safety.Item {
	if items, ok := decodeBareItems(raw); ok {
		return items
	}
	if items, ok := decodeCandidates(raw); ok {
		return items
	}
	if items, ok := decodeItemsEnvelope(raw); ok {
		return items
	}
	return []safety.Item{}
}

func decodeBareItems(raw []byte) ([]safety.Item, bool) {
	var wire []imageItem
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, false
	}
	return mapImageItems(wire), true
}

func decodeItemsEnvelope(raw []byte) ([]safety.Item, bool) {
	var envelope itemsEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, false
	}
	if envelope.Items == nil {
		return nil, false
	}
	return mapImageItems(envelope.Items), true
}

func mapImageItems(wire []imageItem) []safety.Item {
	items := make([]safety.Item, 0, len(wire))
	for _, w := range wire {
		verdict, ok := safety.ParseVerdict(w.Verdict)
		if !ok {
			continue
		}
		if w.DisplayLabel == "" && w.CanonicalName == "" {
			continue
		}
		items = append(items, safety.Item{
			DisplayLabel:  w.DisplayLabel,
			CanonicalName: w.CanonicalName,
			Verdict:       verdict,
			Confidence:    w.Confidence,
			Rationale:     w.Rationale,
			Sources:       w.Sources,
		})
	}
	return items
}

func decodeCandidates(raw []byte) ([]safety.Item, bool) {
	var envelope candidateEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, false
	}
	if envelope.Candidates == nil {
		return nil, false
	}

	items := make([]safety.Item, 0, len(envelope.Candidates))
	for _, c := range envelope.Candidates {
		name := firstNonEmpty(c.Name, c.GenericName, c.Label)
		if name == "" {
			continue
		}
		verdict, ok := safety.ParseVerdict(firstNonEmpty(c.Status, c.DefaultStatus))
		if !ok {
			continue
		}
		items = append(items, safety.Item{
			DisplayLabel:  c.Label,
			CanonicalName: name,
			Verdict:       verdict,
			Confidence:    c.Confidence,
			Rationale:     c.Reason,
			Sources:       c.Sources,
		})
	}
	return items, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
