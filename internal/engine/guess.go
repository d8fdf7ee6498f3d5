package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/footygrid/footygrid-backend/internal/entity"
)

// stripDiacritics decomposes to NFD, drops combining marks, and
// recomposes, so "Özil" and "Ozil" normalize identically. Chained
// transformers buffer internally, so each call builds its own.
func stripDiacritics() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// normalizeName lowercases, strips diacritics, and keeps only letters
// and digits. Matching is exact over this form; no fuzzy matching.
func normalizeName(name string) string {
	stripped, _, err := transform.String(stripDiacritics(), name)
	if err != nil {
		stripped = name
	}

	var builder strings.Builder
	for _, r := range strings.ToLower(stripped) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}

	return builder.String()
}

// guessMatcher resolves free-text name guesses to dataset records.
type guessMatcher struct {
	byName map[string]*entity.PlayerRecord
}

func newGuessMatcher(records []entity.PlayerRecord) *guessMatcher {
	matcher := &guessMatcher{byName: make(map[string]*entity.PlayerRecord, len(records))}
	for i := range records {
		normalized := normalizeName(records[i].Name)
		if normalized == "" {
			continue
		}
		// first dataset-order match wins on (unexpected) ties
		if _, exists := matcher.byName[normalized]; !exists {
			matcher.byName[normalized] = &records[i]
		}
	}
	return matcher
}

// Resolve returns the record whose normalized name equals the normalized
// guess, or false when nothing matches.
func (that *guessMatcher) Resolve(name string) (*entity.PlayerRecord, bool) {
	record, ok := that.byName[normalizeName(name)]
	return record, ok
}
