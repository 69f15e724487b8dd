package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestExtractDateFiltersFutureDates(t *testing.T) {
	text := `
		MEMBERSHIP CARD
		Valid until 12/31/2099
		Purchased on 03/14/2023
	`

	date, ok := ExtractDate(text, NewRegexDateDetector(), testNow)

	assert.True(t, ok)
	assert.Equal(t, 2023, date.Year())
	assert.Equal(t, time.March, date.Month())
	assert.Equal(t, 14, date.Day())
}

func TestExtractDateMostRecentWins(t *testing.T) {
	text := "Issued 01/05/2023\nPaid 02/10/2023"

	date, ok := ExtractDate(text, NewRegexDateDetector(), testNow)

	assert.True(t, ok)
	assert.Equal(t, time.February, date.Month())
	assert.Equal(t, 10, date.Day())
}

func TestExtractDateMonthNameFormat(t *testing.T) {
	date, ok := ExtractDate("Purchased March 14, 2023", NewRegexDateDetector(), testNow)

	assert.True(t, ok)
	assert.Equal(t, 2023, date.Year())
	assert.Equal(t, time.March, date.Month())
	assert.Equal(t, 14, date.Day())
}

func TestExtractDateISOFormat(t *testing.T) {
	date, ok := ExtractDate("2023-03-14 14:32", NewRegexDateDetector(), testNow)

	assert.True(t, ok)
	assert.Equal(t, 2023, date.Year())
	assert.Equal(t, time.March, date.Month())
	assert.Equal(t, 14, date.Day())
}

func TestExtractDateAllFuture(t *testing.T) {
	_, ok := ExtractDate("Expires 12/31/2099", NewRegexDateDetector(), testNow)

	assert.False(t, ok)
}

func TestExtractDateNoDates(t *testing.T) {
	for _, text := range []string{"", "no calendar content", "Total: $45.00 at 11:26"} {
		_, ok := ExtractDate(text, NewRegexDateDetector(), testNow)
		assert.False(t, ok, "expected no date in %q", text)
	}
}
