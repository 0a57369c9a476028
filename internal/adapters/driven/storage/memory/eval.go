package memory

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

const earthRadiusKm = 6371.0

// evaluate reports whether doc matches q and the score it earns.
func evaluate(q driven.Query, doc *domain.Document) (bool, float64) {
	switch q := q.(type) {
	case nil:
		return true, 1
	case *driven.MatchAllQuery:
		return true, boost(q.Boost)
	case *driven.TermQuery:
		for _, v := range keywordValues(doc, q.Field) {
			if v == q.Value {
				return true, boost(q.Boost)
			}
		}
		return false, 0
	case *driven.MatchQuery:
		return matchTerms(doc, q)
	case *driven.MatchPhraseQuery:
		return matchPhrase(textValues(doc, q.Field), q.Text, false, q.Boost)
	case *driven.MatchPhrasePrefixQuery:
		return matchPhrase(textValues(doc, q.Field), q.Text, true, q.Boost)
	case *driven.RangeQuery:
		v := rangeValue(doc, q.Field)
		if v == "" || (q.GTE != "" && v < q.GTE) || (q.LT != "" && v >= q.LT) {
			return false, 0
		}
		return true, boost(q.Boost)
	case *driven.GeoDistanceQuery:
		for _, p := range geoValues(doc, q.Field) {
			if haversineKm(p, q.Point) <= q.DistanceKm {
				return true, boost(q.Boost)
			}
		}
		return false, 0
	case *driven.BoolQuery:
		return evaluateBool(q, doc)
	default:
		return false, 0
	}
}

func evaluateBool(q *driven.BoolQuery, doc *domain.Document) (bool, float64) {
	score := 0.0
	for _, clause := range q.Must {
		ok, s := evaluate(clause, doc)
		if !ok {
			return false, 0
		}
		score += s
	}
	for _, clause := range q.Filter {
		if ok, _ := evaluate(clause, doc); !ok {
			return false, 0
		}
	}

	matched := 0
	for _, clause := range q.Should {
		if ok, s := evaluate(clause, doc); ok {
			matched++
			score += s
		}
	}

	minimum := q.MinimumShouldMatch
	if minimum == 0 && len(q.Must) == 0 && len(q.Filter) == 0 && len(q.Should) > 0 {
		minimum = 1
	}
	if matched < minimum {
		return false, 0
	}
	return true, score * boost(q.Boost)
}

// matchTerms scores the fraction of query terms found in the field.
func matchTerms(doc *domain.Document, q *driven.MatchQuery) (bool, float64) {
	terms := tokenize(q.Text)
	if len(terms) == 0 {
		return false, 0
	}

	var fieldTokens []string
	for _, v := range textValues(doc, q.Field) {
		fieldTokens = append(fieldTokens, tokenize(v)...)
	}

	matched := 0
	for _, term := range terms {
		edits := maxEdits(term, q.Fuzziness)
		for _, tok := range fieldTokens {
			if fuzzyEqual(term, tok, edits, q.PrefixLength) {
				matched++
				break
			}
		}
	}
	if matched == 0 {
		return false, 0
	}
	return true, boost(q.Boost) * float64(matched) / float64(len(terms))
}

// matchPhrase requires the terms in sequence; with prefix the last term
// only needs to start a token.
func matchPhrase(values []string, text string, prefix bool, b float64) (bool, float64) {
	terms := tokenize(text)
	if len(terms) == 0 {
		return false, 0
	}
	for _, v := range values {
		tokens := tokenize(v)
		for start := 0; start+len(terms) <= len(tokens); start++ {
			if phraseAt(tokens[start:], terms, prefix) {
				return true, boost(b)
			}
		}
	}
	return false, 0
}

func phraseAt(tokens, terms []string, prefix bool) bool {
	for i, term := range terms {
		last := i == len(terms)-1
		if last && prefix {
			if !strings.HasPrefix(tokens[i], term) {
				return false
			}
			continue
		}
		if tokens[i] != term {
			return false
		}
	}
	return true
}

func keywordValues(doc *domain.Document, field string) []string {
	switch field {
	case driven.FieldTitleKeyword:
		return []string{doc.Title}
	case driven.FieldGeoreferencesKeyword:
		return doc.Georeferences
	case driven.FieldGeoreferencesNorm:
		out := make([]string, len(doc.Georeferences))
		for i, g := range doc.Georeferences {
			out[i] = domain.NormalizeKey(g)
		}
		return out
	case driven.FieldTemporalKeyword:
		return doc.TemporalExpressions
	case "location_source":
		return []string{string(doc.LocationSource)}
	default:
		return textValues(doc, field)
	}
}

func textValues(doc *domain.Document, field string) []string {
	switch field {
	case driven.FieldTitle, driven.FieldTitleKeyword:
		return []string{doc.Title}
	case driven.FieldContent:
		return []string{doc.Content}
	case driven.FieldGeoreferences, driven.FieldGeoreferencesKeyword:
		return doc.Georeferences
	case driven.FieldTemporalExpressions, driven.FieldTemporalKeyword:
		return doc.TemporalExpressions
	default:
		return nil
	}
}

func rangeValue(doc *domain.Document, field string) string {
	if field == driven.FieldDate {
		return doc.Date
	}
	return ""
}

func geoValues(doc *domain.Document, field string) []domain.GeoPoint {
	switch field {
	case driven.FieldGeopoint:
		if doc.Geopoint != nil {
			return []domain.GeoPoint{*doc.Geopoint}
		}
		return nil
	case "geo_points":
		return doc.GeoPoints
	default:
		return nil
	}
}

func boost(b float64) float64 {
	if b <= 0 {
		return 1
	}
	return b
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// maxEdits mirrors AUTO fuzziness: 0 edits up to 2 characters, 1 up to 5, else 2.
func maxEdits(term, fuzziness string) int {
	if fuzziness != driven.FuzzinessAuto {
		return 0
	}
	switch n := utf8.RuneCountInString(term); {
	case n <= 2:
		return 0
	case n <= 5:
		return 1
	default:
		return 2
	}
}

func fuzzyEqual(term, tok string, edits, prefixLen int) bool {
	if term == tok {
		return true
	}
	if edits == 0 {
		return false
	}
	a, b := []rune(term), []rune(tok)
	if prefixLen > 0 {
		if len(a) < prefixLen || len(b) < prefixLen || string(a[:prefixLen]) != string(b[:prefixLen]) {
			return false
		}
	}
	return editDistance(a, b) <= edits
}

// editDistance is the optimal string alignment distance: insertions,
// deletions, substitutions and adjacent transpositions each cost one.
func editDistance(a, b []rune) int {
	rows := make([][]int, len(a)+1)
	for i := range rows {
		rows[i] = make([]int, len(b)+1)
		rows[i][0] = i
	}
	for j := range rows[0] {
		rows[0][j] = j
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d := min(rows[i-1][j]+1, rows[i][j-1]+1, rows[i-1][j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				d = min(d, rows[i-2][j-2]+1)
			}
			rows[i][j] = d
		}
	}
	return rows[len(a)][len(b)]
}

func haversineKm(p, q domain.GeoPoint) float64 {
	lat1, lat2 := p.Lat*math.Pi/180, q.Lat*math.Pi/180
	dLat := lat2 - lat1
	dLon := (q.Lon - p.Lon) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
