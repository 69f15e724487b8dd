package utils

import (
	"time"

	"github.com/receiptstack/receipt-extraction/dto"
)

// ReceiptParser turns raw recognized receipt text into structured fields.
// It is stateless apart from its capability bindings and safe for
// concurrent use.
type ReceiptParser struct {
	tagger   NameTagger
	detector DateSpanDetector
	now      func() time.Time
}

// NewReceiptParser builds a parser with the default gazetteer tagger and
// regex date detector.
func NewReceiptParser() *ReceiptParser {
	return NewReceiptParserWith(NewGazetteerTagger(), NewRegexDateDetector())
}

// NewReceiptParserWith builds a parser bound to custom name-tagging and
// date-detection capabilities.
func NewReceiptParserWith(tagger NameTagger, detector DateSpanDetector) *ReceiptParser {
	return &ReceiptParser{
		tagger:   tagger,
		detector: detector,
		now:      time.Now,
	}
}

// Parse runs every extractor over the text and merges the results. Amount,
// date and merchant extraction run unconditionally; P2P hints only fill
// fields still empty afterwards. Identical input always yields an identical
// result.
func (p *ReceiptParser) Parse(ocrText string) dto.ExtractedFields {
	var fields dto.ExtractedFields

	if amount, ok := ExtractAmount(ocrText); ok {
		fields.Amount = &amount
	}
	if date, ok := ExtractDate(ocrText, p.detector, p.now()); ok {
		fields.Date = &date
	}
	if merchant, ok := ExtractMerchant(ocrText, p.tagger); ok {
		fields.Merchant = merchant
	}

	hints := ExtractP2PHints(ocrText)
	if fields.Merchant == "" && hints.ToName != "" {
		fields.Merchant = hints.ToName
	}
	if fields.Purpose == "" && hints.Purpose != "" {
		fields.Purpose = hints.Purpose
	}
	if fields.PaymentMethod == "" && hints.PaymentSource != "" {
		fields.PaymentMethod = hints.PaymentSource
	}

	return fields
}
