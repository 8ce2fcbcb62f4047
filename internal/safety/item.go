// internal/safety/item.go
package safety

// Item is the normalized unit every lookup flow produces: one
// displayable safety judgment for an ingredient or a whole product.
// At least one of DisplayLabel/CanonicalName is non-empty and Verdict
// is always a member of the enumeration. Sources keeps backend citation
// order; it is meaningful, not just a de-duplicated set.
type Item struct {
	DisplayLabel  string   `json:"displayLabel,omitempty"`
	CanonicalName string   `json:"canonicalName,omitempty"`
	Verdict       Verdict  `json:"verdict"`
	Confidence    *float64 `json:"confidence,omitempty"`
	Rationale     string   `json:"rationale,omitempty"`
	Sources       []string `json:"sources,omitempty"`
	IsAggregate   bool     `json:"isAggregate"`
}

// ResolveHit is one backend match from the text/barcode/token resolver.
// It is an intermediate record; outside of ResolveTokens it never
// crosses the normalizer boundary.
type ResolveHit struct {
	Token     string   `json:"token"`
	FoodID    int64    `json:"food_id"`
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	MatchedBy string   `json:"matched_by,omitempty"`
	Score     *float64 `json:"score"`
	Notes     string   `json:"notes,omitempty"`
	Sources   []string `json:"sources,omitempty"`
}

// ResolveResponse is the wire envelope the resolve endpoints return on
// success. Constructed per request and discarded once mapped to items.
type ResolveResponse struct {
	Hits          []ResolveHit `json:"hits"`
	OverallStatus string       `json:"overall_status"`
}
