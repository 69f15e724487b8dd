package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ParseReceiptResponse wraps the extracted fields for the parse endpoint.
type ParseReceiptResponse struct {
	Fields      ExtractedFields `json:"fields"`
	ProcessedAt string          `json:"processed_at"`
}

// ResolveAnnotationResponse wraps a card match result.
type ResolveAnnotationResponse struct {
	Result CardMatchResult `json:"result"`
}

// CandidateCardsResponse lists every active card referenced by a 4-digit
// token in the transcript, in order of appearance.
type CandidateCardsResponse struct {
	Candidates []Card `json:"candidates"`
}

// CardListResponse lists all registered cards.
type CardListResponse struct {
	Cards []Card `json:"cards"`
}
