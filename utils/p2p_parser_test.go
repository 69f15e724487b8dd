package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractP2PHintsCashAppLayout(t *testing.T) {
	text := `Payment between
To: Marcus Drummer
From: Alicia Keyes
For dinner last night
Payment source
Wells Fargo Checking`

	hints := ExtractP2PHints(text)

	assert.Equal(t, "Marcus Drummer", hints.ToName)
	assert.Equal(t, "dinner last night", hints.Purpose)
	assert.Equal(t, "Wells Fargo Checking", hints.PaymentSource)
}

func TestExtractP2PHintsBankNameFallback(t *testing.T) {
	text := "To: Marcus Drummer\nPaid with Chase Sapphire"

	hints := ExtractP2PHints(text)

	assert.Equal(t, "Marcus Drummer", hints.ToName)
	assert.Equal(t, "Chase", hints.PaymentSource)
}

func TestExtractP2PHintsBankListOrder(t *testing.T) {
	// Both banks appear; the first in the fixed list wins regardless of
	// position in the text.
	hints := ExtractP2PHints("Chase then Bank of America")

	assert.Equal(t, "Bank of America", hints.PaymentSource)
}

func TestExtractP2PHintsPaymentSourceLineEmpty(t *testing.T) {
	// An empty line after the label falls through to the bank list scan.
	text := "Payment source\n\nBofA debit"

	hints := ExtractP2PHints(text)

	assert.Equal(t, "BofA", hints.PaymentSource)
}

func TestExtractP2PHintsIndependentAbsence(t *testing.T) {
	hints := ExtractP2PHints("For office supplies")

	assert.Empty(t, hints.ToName)
	assert.Equal(t, "office supplies", hints.Purpose)
	assert.Empty(t, hints.PaymentSource)
}

func TestExtractP2PHintsEmptyInput(t *testing.T) {
	hints := ExtractP2PHints("")

	assert.Empty(t, hints.ToName)
	assert.Empty(t, hints.Purpose)
	assert.Empty(t, hints.PaymentSource)
}
