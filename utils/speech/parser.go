package speech

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/receiptstack/receipt-extraction/dto"
)

// Registry is the read-only card lookup boundary. Every call reads a fresh
// snapshot; the resolver never caches card records, so cards added or
// disabled between transcript updates take effect immediately.
type Registry interface {
	// FindActiveCardByLastFour returns the first active card whose last four
	// digits equal s, or nil when none exists or the owning card is
	// inactive.
	FindActiveCardByLastFour(s string) (*dto.Card, error)

	// ListCandidates returns every active card whose last four digits equal
	// the given token.
	ListCandidates(token string) ([]dto.Card, error)
}

// cardRefPatterns are tried in order; the first one that matches wins. Group
// 1 always captures the four digits.
var cardRefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:ending in|card|using|with)\s+(\d{4})`),
	regexp.MustCompile(`(\d{4})(?:\s|$)`),
	regexp.MustCompile(`(?i)(?:last four|last 4)\s+(\d{4})`),
}

var fourDigitToken = regexp.MustCompile(`\b(\d{4})\b`)

// Resolve locates a 4-digit card reference in a speech transcript and looks
// it up in the registry. The matched span is removed from the memo so it
// reads naturally without the card reference. When no active card carries
// the digits, the digits are still returned with MatchedCard unset — a best
// guess for the UI to confirm, not a failure. A registry error propagates;
// it means the lookup itself is broken, not that nothing was found.
func Resolve(transcript string, registry Registry) (dto.CardMatchResult, error) {
	result := dto.CardMatchResult{
		CleanedMemo: strings.TrimSpace(transcript),
	}

	for _, pattern := range cardRefPatterns {
		loc := pattern.FindStringSubmatchIndex(transcript)
		if loc == nil {
			continue
		}

		result.LastFour = transcript[loc[2]:loc[3]]
		result.CleanedMemo = strings.TrimSpace(transcript[:loc[0]] + transcript[loc[1]:])

		card, err := registry.FindActiveCardByLastFour(result.LastFour)
		if err != nil {
			return dto.CardMatchResult{}, fmt.Errorf("registry lookup for %q: %w", result.LastFour, err)
		}
		result.MatchedCard = card
		break
	}

	return result, nil
}

// FindCandidateCards scans the transcript for every bare 4-digit token and
// returns each active card matching any of them, in order of appearance.
// The same card can appear twice when two tokens reference it; dedup is the
// caller's concern.
func FindCandidateCards(transcript string, registry Registry) ([]dto.Card, error) {
	candidates := make([]dto.Card, 0)
	for _, m := range fourDigitToken.FindAllStringSubmatch(transcript, -1) {
		cards, err := registry.ListCandidates(m[1])
		if err != nil {
			return nil, fmt.Errorf("registry candidates for %q: %w", m[1], err)
		}
		candidates = append(candidates, cards...)
	}
	return candidates, nil
}
