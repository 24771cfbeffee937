package assistant_search

import (
	assistantSearch "github.com/cubecar/CC-RentalService/internal/usecase/assistant_search"
)

// SearchRequest HTTP request model
type SearchRequest struct {
	Query     string   `json:"query"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Text    string           `json:"text"`
	Sources []SourceResponse `json:"sources"`
}

// SourceResponse источник из ответа ассистента
type SourceResponse struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assistantSearch.Response) *SearchResponse {
	sources := make([]SourceResponse, 0, len(resp.Sources))
	for _, s := range resp.Sources {
		sources = append(sources, SourceResponse{URI: s.URI, Title: s.Title})
	}
	return &SearchResponse{Text: resp.Text, Sources: sources}
}
