// Package model holds the request-scoped domain types shared across the
// concierge pipeline.
package model

// Company is the optional deal context supplied by the caller. The
// pipeline never mutates it; it only enriches prompt text and search
// queries.
type Company struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	ShortName   string `json:"shortName"`
	Sector      string `json:"sector"`
	DemandIndex int    `json:"demandIndex"` // 0-100
	SupplyIndex int    `json:"supplyIndex"` // 0-100
}

// SearchResult is a normalized web search hit used to ground answers.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}
