package natal

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//The place name folding is all done in this file so the match rules in
//gazetteer.go stay purely about containment and length.

//Decomposes, strips the combining marks and recomposes, so "São Paulo" and
//"Sao Paulo" fold to the same bytes.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

//foldPlace normalizes free-form location text for gazetteer matching:
//lowercase, trimmed, diacritics removed and inner whitespace collapsed.
func foldPlace(text string) string {
	folded, _, err := transform.String(foldTransformer, text)
	if err != nil {
		//Not valid UTF-8; match on the raw bytes instead of failing the lookup
		folded = text
	}
	folded = strings.ToLower(strings.TrimSpace(folded))
	return strings.Join(strings.Fields(folded), " ")
}
