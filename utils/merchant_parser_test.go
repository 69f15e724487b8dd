package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMerchantOrganizationTag(t *testing.T) {
	text := `
		Trader Joe's
		123 Main St
		San Francisco CA
		03/14/2023
	`

	merchant, ok := ExtractMerchant(text, NewGazetteerTagger())

	assert.True(t, ok)
	assert.Equal(t, "Trader Joe's", merchant)
}

func TestExtractMerchantCorporateSuffix(t *testing.T) {
	text := "ACME Holdings LLC\nInvoice 2291"

	merchant, ok := ExtractMerchant(text, NewGazetteerTagger())

	assert.True(t, ok)
	assert.Equal(t, "ACME Holdings LLC", merchant)
}

func TestExtractMerchantOrganizationOnlyInLeadingLines(t *testing.T) {
	// The org tagger only sees the first four lines; a merchant mentioned
	// further down does not count as an organization hit.
	text := "11:26\n100\n100\n100\nStarbucks"

	merchant, ok := ExtractMerchant(text, NewGazetteerTagger())

	assert.True(t, ok)
	assert.Equal(t, "Starbucks", merchant)
}

func TestExtractMerchantPaymentAppPhrase(t *testing.T) {
	text := `
		11:26
		$25.00
		Payment to Sarah Chen
	`

	merchant, ok := ExtractMerchant(text, NewGazetteerTagger())

	assert.True(t, ok)
	assert.Equal(t, "Sarah Chen", merchant)
}

func TestExtractMerchantToLineFallback(t *testing.T) {
	text := `
		11:26
		$25.00
		To: Marcus Drummer
	`

	merchant, ok := ExtractMerchant(text, NewGazetteerTagger())

	assert.True(t, ok)
	assert.Equal(t, "Marcus Drummer", merchant)
}

func TestExtractMerchantPhraseAfterLengthChangingRunes(t *testing.T) {
	// Runes like "Ⱥ" grow by a byte when lowercased; the phrase offset must
	// come from the original line, not a lowercased copy.
	merchant, ok := ExtractMerchant("ȺȺȺȺȺȺȺȺ Payment to Sarah Chen", NewGazetteerTagger())

	assert.True(t, ok)
	assert.Equal(t, "Sarah Chen", merchant)
}

func TestExtractMerchantNameLikeLine(t *testing.T) {
	text := `
		11:26
		$25.00
		482
		Marcus Drummer
	`

	merchant, ok := ExtractMerchant(text, NewGazetteerTagger())

	assert.True(t, ok)
	assert.Equal(t, "Marcus Drummer", merchant)
}

func TestExtractMerchantFirstLineFallback(t *testing.T) {
	merchant, ok := ExtractMerchant("42\n7", NewGazetteerTagger())

	assert.True(t, ok)
	assert.Equal(t, "42", merchant)
}

func TestExtractMerchantEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\n  "} {
		_, ok := ExtractMerchant(text, NewGazetteerTagger())
		assert.False(t, ok)
	}
}
