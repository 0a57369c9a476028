package input

import (
	"strings"
	"unicode"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// Hint prefixes recognised in the query line.
const (
	TimePrefix = "time:"
	GeoPrefix  = "geo:"
)

// ParseQuery splits a query line into free text and hints.
// "time:" and "geo:" take the following word, or a double-quoted
// phrase, with or without a space after the colon; a repeated hint
// replaces the earlier one.
//
//	interest rates time:1987 geo:"New York"
//	interest rates time: 1987
func ParseQuery(line string) domain.QuerySpec {
	var (
		spec  domain.QuerySpec
		words []string
	)

	r := []rune(line)
	for i := 0; i < len(r); {
		if unicode.IsSpace(r[i]) {
			i++
			continue
		}

		start := i
		for i < len(r) && !unicode.IsSpace(r[i]) {
			if r[i] == '"' {
				break
			}
			i++
		}
		word := string(r[start:i])
		lower := strings.ToLower(word)

		var target *string
		switch {
		case lower == TimePrefix:
			target = &spec.TemporalHint
		case lower == GeoPrefix:
			target = &spec.GeoHint
		case strings.HasPrefix(lower, TimePrefix):
			spec.TemporalHint = word[len(TimePrefix):]
			continue
		case strings.HasPrefix(lower, GeoPrefix):
			spec.GeoHint = word[len(GeoPrefix):]
			continue
		}

		if target != nil {
			i = skipToValue(r, i)
		}
		value, next := readValue(r, i)
		i = next
		if target != nil {
			*target = value
			continue
		}
		if w := strings.TrimSpace(word + value); w != "" {
			words = append(words, w)
		}
	}

	spec.Text = strings.Join(words, " ")
	return spec
}

// skipToValue moves past spaces following a bare prefix, unless the next
// word is itself a hint.
func skipToValue(r []rune, i int) int {
	j := i
	for j < len(r) && unicode.IsSpace(r[j]) {
		j++
	}
	rest := strings.ToLower(string(r[j:]))
	if strings.HasPrefix(rest, TimePrefix) || strings.HasPrefix(rest, GeoPrefix) {
		return i
	}
	return j
}

// readValue reads a quoted phrase at i, or the rest of the current word.
func readValue(r []rune, i int) (string, int) {
	if i >= len(r) {
		return "", i
	}
	if r[i] != '"' {
		start := i
		for i < len(r) && !unicode.IsSpace(r[i]) {
			i++
		}
		return string(r[start:i]), i
	}

	i++
	start := i
	for i < len(r) && r[i] != '"' {
		i++
	}
	value := string(r[start:i])
	if i < len(r) {
		i++
	}
	return domain.CollapseSpace(value), i
}
