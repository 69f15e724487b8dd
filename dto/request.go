package dto

import "errors"

// ParseReceiptRequest carries already-recognized OCR text for field
// extraction. The text comes from whatever OCR engine the client ran; this
// service treats it as an opaque string.
type ParseReceiptRequest struct {
	Text string `json:"text" binding:"required"`
}

// ResolveAnnotationRequest carries the current speech transcript. The caller
// re-sends the full transcript on every partial-result update.
type ResolveAnnotationRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

// AddCardRequest registers a new payment card.
type AddCardRequest struct {
	LastFour string `json:"last_four" binding:"required"`
	Entity   string `json:"entity"`
	CardType string `json:"card_type"`
	Bank     string `json:"bank"`
}

// Validate performs basic validation on the request
func (r *AddCardRequest) Validate() error {
	if len(r.LastFour) != 4 {
		return errors.New("last_four must be exactly 4 digits")
	}
	for _, c := range r.LastFour {
		if c < '0' || c > '9' {
			return errors.New("last_four must be exactly 4 digits")
		}
	}
	return nil
}
