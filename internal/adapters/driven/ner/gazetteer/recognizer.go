// Package gazetteer provides an offline entity recogniser. Places come
// from a YAML list of names; dates are month-name phrases.
package gazetteer

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// Ensure Recognizer implements the interface.
var _ driven.EntityRecognizer = (*Recognizer)(nil)

//go:embed places.yaml
var builtinPlaces []byte

// datePattern matches "March 1987", "3 March 1987", "March 3, 1987",
// "Mar. 3" and bare month names.
var datePattern = regexp.MustCompile(`(?i)\b(?:\d{1,2}\s+)?` +
	`(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|` +
	`sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\b\.?` +
	`(?:\s+\d{1,2}(?:st|nd|rd|th)?\b)?(?:,?\s+\d{4}\b)?`)

// File is the gazetteer file format.
type File struct {
	// Places lists the recognised place names.
	Places []string `yaml:"places"`

	// ExtendBuiltin adds Places to the built-in list instead of replacing it.
	ExtendBuiltin bool `yaml:"extend_builtin"`
}

// Recognizer matches known place names and month-name dates.
type Recognizer struct {
	places *regexp.Regexp
	size   int
}

// New creates a recogniser for the given place names.
// Matching is case-insensitive and on whole words; longer names win.
func New(places []string) *Recognizer {
	names := domain.DedupeNames(places)
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	r := &Recognizer{size: len(names)}
	if len(names) == 0 {
		return r
	}

	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	// The trailing boundary is checked in Recognize: \b would reject
	// names ending in punctuation such as "U.S.".
	r.places = regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)`)
	return r
}

// Builtin returns a recogniser over the embedded place list.
func Builtin() (*Recognizer, error) {
	file, err := parse(builtinPlaces)
	if err != nil {
		return nil, fmt.Errorf("builtin gazetteer: %w", err)
	}
	return New(file.Places), nil
}

// Load reads a gazetteer file. An empty path returns the built-in list.
func Load(path string) (*Recognizer, error) {
	if path == "" {
		return Builtin()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gazetteer: %w", err)
	}
	file, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("gazetteer %s: %w", path, err)
	}

	places := file.Places
	if file.ExtendBuiltin {
		builtin, err := parse(builtinPlaces)
		if err != nil {
			return nil, fmt.Errorf("builtin gazetteer: %w", err)
		}
		places = append(builtin.Places, places...)
	}
	return New(places), nil
}

func parse(data []byte) (File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, err
	}
	return file, nil
}

// Size returns the number of distinct place names.
func (r *Recognizer) Size() int {
	return r.size
}

type match struct {
	start int
	span  domain.EntitySpan
}

// Recognize returns place and date spans in text order. Surface forms
// are returned as they appear in text.
func (r *Recognizer) Recognize(ctx context.Context, text string) ([]domain.EntitySpan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matches []match
	if r.places != nil {
		for _, loc := range r.places.FindAllStringIndex(text, -1) {
			if !wordBoundaryAfter(text, loc[1]) {
				continue
			}
			matches = append(matches, match{loc[0], domain.EntitySpan{Label: domain.LabelPlace, Text: text[loc[0]:loc[1]]}})
		}
	}
	for _, loc := range datePattern.FindAllStringIndex(text, -1) {
		if !plausibleDate(text[loc[0]:loc[1]]) {
			continue
		}
		matches = append(matches, match{loc[0], domain.EntitySpan{Label: domain.LabelDate, Text: text[loc[0]:loc[1]]}})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].start < matches[j].start })
	spans := make([]domain.EntitySpan, len(matches))
	for i, m := range matches {
		spans[i] = m.span
	}
	return spans, nil
}

// wordBoundaryAfter reports whether a match ending at end is not followed
// by a letter or digit.
func wordBoundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	c := text[end]
	return !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9')
}

// plausibleDate rejects bare lowercase month words such as the verb "may".
func plausibleDate(s string) bool {
	if strings.ContainsAny(s, "0123456789") {
		return true
	}
	return s[0] >= 'A' && s[0] <= 'Z'
}
