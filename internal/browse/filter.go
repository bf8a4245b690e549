package browse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"bbws/internal/entity"
)

// Predicate decides whether a projected candidate is kept.
type Predicate func(entity.Projection) bool

// BuildPredicate compiles the format and language criteria. Both must hold
// when both are set; with neither set everything is accepted.
func BuildPredicate(c Criteria) Predicate {
	var preds []Predicate
	if c.Format != "" {
		preds = append(preds, formatIs(c.Format))
	}
	if c.Language != "" {
		preds = append(preds, hasLanguage(c.Language))
	}
	return func(p entity.Projection) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

func formatIs(format string) Predicate {
	return func(p entity.Projection) bool {
		return p.EditionFormat != nil && strings.EqualFold(*p.EditionFormat, format)
	}
}

func hasLanguage(language string) Predicate {
	want := normalizeLanguage(language)
	return func(p entity.Projection) bool {
		for _, l := range p.Languages {
			if strings.EqualFold(l, want) {
				return true
			}
		}
		return false
	}
}

// normalizeLanguage applies the stored capitalization: first letter upper
// case, the rest lower case ("eNGLISH" -> "English").
func normalizeLanguage(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
