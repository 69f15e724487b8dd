package utils

import (
	"strings"

	"github.com/receiptstack/receipt-extraction/dto"
)

// knownBanks is scanned in order when no "Payment source" section exists;
// the first listed bank mentioned anywhere in the text wins.
var knownBanks = []string{
	"Bank of America",
	"BofA",
	"Chase",
	"Wells Fargo",
	"Brex",
	"Amex",
	"Capital One",
}

// ExtractP2PHints recovers recipient, purpose and payment-source hints from
// peer-to-peer payment app screenshots. Each sub-field is computed
// independently and may be absent independently.
func ExtractP2PHints(text string) dto.P2PHints {
	lines := SplitLines(text)
	var hints dto.P2PHints

	for _, line := range lines {
		if strings.HasPrefix(strings.ToLower(line), "to:") {
			hints.ToName = strings.TrimSpace(line[len("to:"):])
			break
		}
	}

	for _, line := range lines {
		if strings.HasPrefix(strings.ToLower(line), "for ") {
			hints.Purpose = strings.TrimSpace(line[len("for "):])
			break
		}
	}

	// "Payment source" sections put the funding account on the next line.
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "payment source") {
			if i+1 < len(lines) && lines[i+1] != "" {
				hints.PaymentSource = lines[i+1]
			}
			break
		}
	}

	if hints.PaymentSource == "" {
		lower := strings.ToLower(text)
		for _, bank := range knownBanks {
			if strings.Contains(lower, strings.ToLower(bank)) {
				hints.PaymentSource = bank
				break
			}
		}
	}

	return hints
}
