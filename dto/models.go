package dto

import "time"

// ExtractedFields is the structured result of parsing one receipt's
// recognized text. Every field is independently optional; an absent field
// means "not found", never an error.
type ExtractedFields struct {
	Amount        *float64   `json:"amount,omitempty"`
	Date          *time.Time `json:"date,omitempty"`
	Merchant      string     `json:"merchant,omitempty"`
	Purpose       string     `json:"purpose,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
}

// P2PHints carries fields recovered from peer-to-peer payment app
// screenshots (Cash App, Venmo, Zelle style layouts). The orchestrator only
// consults them to fill fields the primary extractors left empty.
type P2PHints struct {
	ToName        string `json:"to_name,omitempty"`
	Purpose       string `json:"purpose,omitempty"`
	PaymentSource string `json:"payment_source,omitempty"`
}

// Card is one payment card registered by the user. LastFour always matches
// ^\d{4}$; only active cards participate in automatic matching.
type Card struct {
	ID        string    `json:"id"`
	LastFour  string    `json:"last_four"`
	Entity    string    `json:"entity"`
	CardType  string    `json:"card_type"`
	Bank      string    `json:"bank"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// CardMatchResult is the outcome of resolving a spoken annotation against
// the card registry. MatchedCard is set only when an active card has exactly
// the extracted last four; otherwise LastFour still carries the digits so
// the UI can ask for confirmation.
type CardMatchResult struct {
	CleanedMemo string `json:"cleaned_memo"`
	LastFour    string `json:"last_four,omitempty"`
	MatchedCard *Card  `json:"matched_card,omitempty"`
}

// ReceiptScanResult is what the scan endpoint returns for an uploaded image
// or PDF: the recognized text plus the fields parsed out of it.
type ReceiptScanResult struct {
	RecognizedText string          `json:"recognized_text"`
	Fields         ExtractedFields `json:"fields"`
	OcrConfidence  float64         `json:"ocr_confidence"`
	QRPayload      string          `json:"qr_payload,omitempty"`
	ProcessedAt    string          `json:"processed_at"`
}
