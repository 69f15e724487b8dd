package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGazetteerTagsKnownMerchant(t *testing.T) {
	tags := NewGazetteerTagger().TagOrganizations("Welcome to Trader Joe's\nThank you")

	require.NotEmpty(t, tags)
	assert.Equal(t, "Trader Joe's", tags[0].Text)
}

func TestGazetteerTagsCorporateSuffixLine(t *testing.T) {
	tags := NewGazetteerTagger().TagOrganizations("Invoice\nACME Holdings LLC\nNet 30")

	require.Len(t, tags, 1)
	assert.Equal(t, "ACME Holdings LLC", tags[0].Text)
}

func TestGazetteerTagsTradeWordLine(t *testing.T) {
	tags := NewGazetteerTagger().TagOrganizations("Blue Bottle Coffee\n03/14/2023")

	require.Len(t, tags, 1)
	assert.Equal(t, "Blue Bottle Coffee", tags[0].Text)
}

func TestGazetteerOrdersTagsByAppearance(t *testing.T) {
	tags := NewGazetteerTagger().TagOrganizations("Riverside Bakery\nWalmart")

	require.Len(t, tags, 2)
	assert.Equal(t, "Riverside Bakery", tags[0].Text)
	assert.Equal(t, "Walmart", tags[1].Text)
}

func TestGazetteerSpansValidWhenLowercaseChangesByteLength(t *testing.T) {
	// "Ⱥ" lowercases to "ⱥ", which is one byte longer; spans must still index
	// the original text.
	text := "ȺȺȺȺȺȺShell"

	tags := NewGazetteerTagger().TagOrganizations(text)

	require.Len(t, tags, 1)
	assert.Equal(t, "Shell", tags[0].Text)
	assert.Equal(t, "Shell", text[tags[0].Start:tags[0].End])
}

func TestGazetteerNoOrganizations(t *testing.T) {
	for _, text := range []string{"", "11:26", "$45.00", "Marcus Drummer"} {
		assert.Empty(t, NewGazetteerTagger().TagOrganizations(text))
	}
}
