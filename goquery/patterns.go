package goquery

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/edjs/spectacle"
)

// patterns holds the free-text expressions compiled from a vocabulary.
// A nil expression disables its rule.
type patterns struct {
	duration *regexp.Regexp
	ageRange *regexp.Regexp
	price    *regexp.Regexp
	venue    *regexp.Regexp
	dates    *regexp.Regexp
}

func compilePatterns(v spectacle.Vocabulary) patterns {
	var p patterns

	if units := alternation(v.MinuteUnits); units != "" {
		p.duration = regexp.MustCompile(`(?i)(?:^|\D)(\d{1,4})\s*(?:` + units + `)\b`)
	}
	if units := alternation(v.CurrencyUnits); units != "" {
		p.price = regexp.MustCompile(`(?i)(?:^|\D)(\d{1,6})\s*(?:` + units + `)\b`)
	}
	connectors, ageUnits := alternation(v.AgeConnectors), alternation(v.AgeUnits)
	if connectors != "" && ageUnits != "" {
		p.ageRange = regexp.MustCompile(`(?i)(?:^|\D)(\d{1,2})\s*(?:` + connectors + `)\s*(\d{1,2})\s*(?:` + ageUnits + `)\b`)
	}
	if keywords := alternation(v.VenueKeywords); keywords != "" && v.MaxVenueTokens > 0 {
		connector := ""
		if c := alternation(v.VenueConnector); c != "" {
			connector = `(?:(?:` + c + `)[ \t]+){0,2}`
		}
		// Keywords ignore case; name tokens must be capitalized.
		p.venue = regexp.MustCompile(`(?:^|[^\p{L}])((?i:` + keywords + `)(?:[ \t]+` + connector +
			`\p{Lu}[\p{L}'’-]*){1,` + strconv.Itoa(v.MaxVenueTokens) + `})`)
	}
	if months := alternation(v.MonthAbbreviations); months != "" {
		month := `(?:` + months + `)\p{L}{0,6}`
		p.dates = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(` + month + `\s*[-–]\s*` + month + `\s*\d{4})`)
	}
	return p
}

// alternation quotes tokens into a regexp alternation, longest first, so a
// short token never shadows a longer one sharing its prefix.
func alternation(tokens []string) string {
	quoted := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			quoted = append(quoted, regexp.QuoteMeta(t))
		}
	}
	slices.SortStableFunc(quoted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	return strings.Join(quoted, "|")
}

// firstInt returns the first submatch of re in text as an integer.
func firstInt(re *regexp.Regexp, text string) (int, bool) {
	if re == nil {
		return 0, false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// firstSpan returns the first submatch of re in text, trimmed.
func firstSpan(re *regexp.Regexp, text string) (string, bool) {
	if re == nil {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	s := strings.TrimSpace(m[1])
	return s, s != ""
}

func ageRange(re *regexp.Regexp, text string) (string, bool) {
	if re == nil {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return "", false
	}
	return strconv.Itoa(lo) + "-" + strconv.Itoa(hi) + " ans", true
}
