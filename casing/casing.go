// casing/casing.go
/* Package casing converts property-list keys to the snake_case form the Addigy configuration API
expects. ToSnakeCase works on Unicode letter and digit classes, so keys such as "HTTPServer2Name" or
"ÜberKey" split the same way their ASCII counterparts do. */
package casing

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToSnakeCase converts key to snake_case. Word boundaries are placed:
//   - at every run of characters that are neither letters nor digits, which collapses to one "_"
//   - between a lower-case letter or digit and a following upper-case letter ("someKey")
//   - before the last capital of an upper-case run followed by a lower-case letter ("HTTPServer")
//   - between letters and digits, in both directions ("Server2Name")
//
// The finished string is lower-cased as a whole with the full Unicode mapping, so context rules such
// as the Greek final sigma apply ("ΣΑΣ" becomes "σας"). Leading and trailing separators are kept.
func ToSnakeCase(key string) string {
	runes := []rune(key)

	var b strings.Builder
	b.Grow(len(key) + 4)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if !isWordRune(r) {
			for i+1 < len(runes) && !isWordRune(runes[i+1]) {
				i++
			}
			b.WriteByte('_')
			continue
		}
		if i > 0 && isBoundary(runes, i) {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}

	// A Caser holds state, so each call gets its own.
	return cases.Lower(language.Und).String(b.String())
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isBoundary reports whether a separator belongs between runes[i-1] and runes[i]. Both runes are
// letters or digits when a boundary is possible.
func isBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	if !isWordRune(prev) {
		return false
	}

	switch {
	case unicode.IsLetter(prev) && unicode.IsDigit(cur):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	case (unicode.IsLower(prev) || unicode.IsDigit(prev)) && unicode.IsUpper(cur):
		return true
	case unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		return true
	}
	return false
}

// NormalizeKeys returns a copy of tree with every map key passed through ToSnakeCase. Maps nested
// in maps or slices are rewritten too; values are left untouched. Keys are visited in sorted
// order, so when two keys normalise to the same name the one that sorts last wins.
func NormalizeKeys(tree interface{}) interface{} {
	switch v := tree.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		out := make(map[string]interface{}, len(v))
		for _, key := range keys {
			out[ToSnakeCase(key)] = NormalizeKeys(v[key])
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = NormalizeKeys(item)
		}
		return out
	default:
		return tree
	}
}
