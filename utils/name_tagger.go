package utils

import (
	"regexp"
	"sort"
	"strings"
)

// compileFoldedPatterns turns literal phrases into case-insensitive regexes.
// Matching on the original text keeps byte offsets valid even when lowercasing
// would change a rune's encoded length.
func compileFoldedPatterns(phrases []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(phrases))
	for i, phrase := range phrases {
		patterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
	}
	return patterns
}

// TaggedName is one span the tagger classified as an organization name.
type TaggedName struct {
	Text  string
	Start int
	End   int
}

// NameTagger classifies organization names in free text. The default is a
// gazetteer plus suffix heuristics; callers with a real NER model can bind
// their own implementation.
type NameTagger interface {
	TagOrganizations(text string) []TaggedName
}

// GazetteerTagger tags organization names by looking for well-known
// merchants, corporate suffixes and retail trade words.
type GazetteerTagger struct{}

func NewGazetteerTagger() *GazetteerTagger {
	return &GazetteerTagger{}
}

// knownMerchants are matched as case-insensitive substrings anywhere in the
// text. Longer names come before their prefixes so the full span wins.
var knownMerchants = []string{
	"Trader Joe's",
	"Whole Foods Market",
	"Whole Foods",
	"Bed Bath & Beyond",
	"The Home Depot",
	"Home Depot",
	"Best Buy",
	"McDonald's",
	"Wendy's",
	"In-N-Out",
	"7-Eleven",
	"Walmart",
	"Costco",
	"Target",
	"Safeway",
	"Kroger",
	"Walgreens",
	"CVS Pharmacy",
	"Starbucks",
	"Chipotle",
	"Subway",
	"Shell",
	"Chevron",
	"Exxon",
	"Office Depot",
	"Staples",
	"Ikea",
	"Lowe's",
	"Trader Vic's",
	"Panera Bread",
	"Dunkin",
}

// corpSuffixes mark a line as an organization when its trailing token is one
// of these.
var corpSuffixes = map[string]bool{
	"inc":         true,
	"inc.":        true,
	"llc":         true,
	"llc.":        true,
	"ltd":         true,
	"ltd.":        true,
	"corp":        true,
	"corp.":       true,
	"co":          true,
	"co.":         true,
	"company":     true,
	"corporation": true,
	"gmbh":        true,
	"plc":         true,
}

// tradeWords mark a mostly-alphabetic line as a merchant name.
var tradeWords = map[string]bool{
	"market":     true,
	"mart":       true,
	"grocery":    true,
	"grocers":    true,
	"foods":      true,
	"cafe":       true,
	"café":       true,
	"coffee":     true,
	"restaurant": true,
	"diner":      true,
	"pizza":      true,
	"pizzeria":   true,
	"bakery":     true,
	"deli":       true,
	"bar":        true,
	"grill":      true,
	"pharmacy":   true,
	"hardware":   true,
	"liquor":     true,
	"cleaners":   true,
	"salon":      true,
}

var (
	letterRegex           = regexp.MustCompile(`[A-Za-z]`)
	knownMerchantPatterns = compileFoldedPatterns(knownMerchants)
)

// TagOrganizations returns organization spans in order of appearance within
// the text. Gazetteer hits are located exactly; heuristic hits cover the
// whole line that triggered them.
func (g *GazetteerTagger) TagOrganizations(text string) []TaggedName {
	var tags []TaggedName

	for _, pattern := range knownMerchantPatterns {
		loc := pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		tags = append(tags, TaggedName{
			Text:  text[loc[0]:loc[1]],
			Start: loc[0],
			End:   loc[1],
		})
	}

	offset := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if lineLooksLikeOrganization(trimmed) {
			start := offset + strings.Index(line, trimmed)
			tags = append(tags, TaggedName{
				Text:  trimmed,
				Start: start,
				End:   start + len(trimmed),
			})
		}
		offset += len(line) + 1
	}

	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Start < tags[j].Start })
	return tags
}

func lineLooksLikeOrganization(line string) bool {
	if line == "" || !letterRegex.MatchString(line) {
		return false
	}
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}
	if corpSuffixes[fields[len(fields)-1]] {
		return true
	}
	for _, f := range fields {
		if tradeWords[strings.Trim(f, ".,")] {
			return true
		}
	}
	return false
}
