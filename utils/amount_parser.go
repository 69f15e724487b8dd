package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Labelled totals: "Total: $45.00", "Amount 1,299.00", "Charge €12,50"
	keywordAmountRegex = regexp.MustCompile(`(?i)(?:total|amount|balance|invoice|charge|payment)\s*:?\s*[$€£]?\s*(\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2}))`)

	// Bare dollar amounts, the common payment-app screenshot form: "$50",
	// "$1,234.56". No label required.
	dollarAmountRegex = regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)

	// Any decimal-looking number at all. Last resort.
	bareAmountRegex = regexp.MustCompile(`\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})`)
)

// ExtractAmount finds the monetary total in recognized receipt text using a
// three-pass strategy: labelled amounts first, then bare $-prefixed amounts,
// then any decimal-looking number. Each pass returns the maximum value it
// matched; a later pass runs only when the earlier ones found nothing
// positive. Individual matches that fail to parse are skipped.
func ExtractAmount(text string) (float64, bool) {
	// Pass 1: keyword-labelled amounts. Receipts list subtotal/tax/total in
	// increasing order, so the maximum labelled value is the best candidate.
	if max, ok := maxAmount(keywordAmountRegex.FindAllStringSubmatch(text, -1), commaAsDecimal); ok && max > 0 {
		return max, true
	}

	// Pass 2: standalone $ amounts, covering P2P app screenshots where the
	// total carries no label at all.
	if max, ok := maxAmount(dollarAmountRegex.FindAllStringSubmatch(text, -1), commaAsThousands); ok && max > 0 {
		return max, true
	}

	// Pass 3: largest decimal-looking number anywhere. May pick up
	// non-monetary numbers; accepted precision/recall tradeoff.
	var max float64
	found := false
	for _, m := range bareAmountRegex.FindAllString(text, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
		if err != nil {
			continue
		}
		if !found || v > max {
			max = v
			found = true
		}
	}
	return max, found
}

const (
	commaAsDecimal   = true
	commaAsThousands = false
)

// maxAmount parses capture group 1 of every match and returns the maximum.
// When commaDecimal is set, commas are treated as decimal points, so a
// thousands-grouped value like "1,234.56" fails to parse and is skipped;
// otherwise commas are stripped as grouping separators.
func maxAmount(matches [][]string, commaDecimal bool) (float64, bool) {
	var max float64
	found := false
	for _, m := range matches {
		if len(m) < 2 {
			continue
		}
		s := m[1]
		if commaDecimal {
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		if !found || v > max {
			max = v
			found = true
		}
	}
	return max, found
}
