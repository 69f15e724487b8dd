package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Phrases that mark a payment-app screenshot line carrying the counterparty.
var paymentAppPhrases = []string{
	"Payment to",
	"Payment between",
	"To:",
	"From:",
	"Cash App",
	"Venmo",
	"PayPal",
	"Zelle",
}

var paymentAppPhrasePatterns = compileFoldedPatterns(paymentAppPhrases)

var (
	bareTimeRegex    = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	bareDollarRegex  = regexp.MustCompile(`^\$[\d,]+\.?\d*$`)
	bareIntegerRegex = regexp.MustCompile(`^\d+$`)
	leadingDigit     = regexp.MustCompile(`^\d`)
)

// ExtractMerchant finds the counterparty name in recognized receipt text.
// Four strategies run in order and the first hit wins: an organization tag
// within the first four lines, a payment-app indicator phrase, the first
// line that looks like a name, and finally the first non-empty line.
func ExtractMerchant(text string, tagger NameTagger) (string, bool) {
	lines := NonEmptyLines(text)
	if len(lines) == 0 {
		return "", false
	}

	// The merchant identity is almost always near the top, so the tagger
	// only sees the leading lines.
	prefix := lines
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	if orgs := tagger.TagOrganizations(strings.Join(prefix, "\n")); len(orgs) > 0 {
		return orgs[0].Text, true
	}

	// Payment-app layouts: "Payment to Alice", "To: Marcus Drummer".
	for _, line := range lines {
		if bareTimeRegex.MatchString(line) || bareDollarRegex.MatchString(line) {
			continue
		}
		for _, pattern := range paymentAppPhrasePatterns {
			loc := pattern.FindStringIndex(line)
			if loc == nil {
				continue
			}
			after := strings.TrimSpace(line[loc[1]:])
			if after != "" && !leadingDigit.MatchString(after) {
				return after, true
			}
		}
	}

	// First line that reads like a name rather than a time, an amount or a
	// bare number.
	for _, line := range lines {
		if bareTimeRegex.MatchString(line) ||
			bareDollarRegex.MatchString(line) ||
			bareIntegerRegex.MatchString(line) {
			continue
		}
		if utf8.RuneCountInString(line) > 1 {
			return line, true
		}
	}

	// Last resort: the first non-empty line, whatever it is.
	return lines[0], true
}
