package utils

import (
	"regexp"
	"time"

	"github.com/araddon/dateparse"
)

// DateSpanDetector recognizes calendar-like substrings in free text. The
// default implementation is regex-based; callers with a real NLP date
// detector can supply their own.
type DateSpanDetector interface {
	FindDates(text string) []time.Time
}

// RegexDateDetector finds candidate date spans with a small set of patterns
// and parses them leniently.
type RegexDateDetector struct{}

func NewRegexDateDetector() *RegexDateDetector {
	return &RegexDateDetector{}
}

var dateSpanRegexes = []*regexp.Regexp{
	// 03/14/2023, 3-14-23
	regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
	// 2023-03-14
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
	// March 14, 2023 / Mar 14 2023
	regexp.MustCompile(`(?i)(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}`),
	// 14 March 2023
	regexp.MustCompile(`(?i)\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+\d{4}`),
}

// FindDates returns every parseable date mentioned in the text, grouped by
// the pattern that matched rather than by position. Spans that fail to parse
// are skipped.
func (d *RegexDateDetector) FindDates(text string) []time.Time {
	var dates []time.Time
	for _, re := range dateSpanRegexes {
		for _, span := range re.FindAllString(text, -1) {
			t, err := dateparse.ParseAny(span)
			if err != nil {
				continue
			}
			dates = append(dates, t)
		}
	}
	return dates
}

// ExtractDate picks the transaction date out of recognized receipt text.
// Receipts often carry several dates (issue date, due date, "valid until");
// the transaction date is the most recent one that is not in the future, so
// candidates after now are discarded and the maximum of the rest wins.
func ExtractDate(text string, detector DateSpanDetector, now time.Time) (time.Time, bool) {
	var best time.Time
	found := false
	for _, d := range detector.FindDates(text) {
		if d.After(now) {
			continue
		}
		if !found || d.After(best) {
			best = d
			found = true
		}
	}
	return best, found
}
