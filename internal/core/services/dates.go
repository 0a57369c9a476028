package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

var (
	// 2025-12-20T06:38:53.990Z, 2021-01-01 10:00:00+02:00, 2021-01-01T10:00
	isoDateTimePattern = regexp.MustCompile(
		`^(\d{4}-\d{2}-\d{2})[T ](\d{2}:\d{2})(:\d{2})?(?:[.,]\d+)?\s*(?:Z|[+-]\d{2}(?::?\d{2})?)?$`)

	isoDateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Newswire timestamps such as "26-FEB-1987 15:01:01.79".
var legacyDateLayouts = []string{
	"2-Jan-2006 15:04:05",
	"2-Jan-2006 15:04",
	"2-Jan-2006",
}

// NormalizeDate converts a caller-supplied date string to canonical form.
// Direct patterns are tried first so suffixes are truncated, never converted;
// a general-purpose parser is the fallback.
func NormalizeDate(raw string) domain.ParsedDate {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.Unparsed()
	}

	if m := isoDateTimePattern.FindStringSubmatch(s); m != nil {
		seconds := m[3]
		if seconds == "" {
			seconds = ":00"
		}
		candidate := m[1] + "T" + m[2] + seconds
		if _, err := time.Parse(domain.CanonicalDateLayout, candidate); err == nil {
			return domain.Parsed(candidate)
		}
		return domain.Unparsed()
	}

	if isoDateOnlyPattern.MatchString(s) {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return domain.Unparsed()
		}
		return domain.Parsed(domain.FormatCanonical(t))
	}

	for _, layout := range legacyDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.Parsed(domain.FormatCanonical(t))
		}
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return domain.Unparsed()
	}
	return domain.Parsed(domain.FormatCanonical(t))
}
