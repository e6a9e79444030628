package translator

import (
	"strings"

	"github.com/forthlab/stackvm/isa"
)

// stringOpener is the word that introduces a `." ... "` string literal.
const stringOpener = `."`

// rawWords splits source on whitespace, ignoring empty fields. Newlines are
// treated the same as any other whitespace.
func rawWords(source string) []string {
	return strings.Fields(source)
}

// Lex tokenizes source into a Term list. Its head is always a synthetic
// KindEntrypoint term at word number 0. `." text"` is recognized across
// whitespace-split raw words: the opener `."` starts a run that is rejoined
// with single spaces up to (and including) the first following raw word that
// ends in a closing quote (no escape sequences are recognized); that whole
// run becomes a single
// KindString term carrying the quoted text (without the opening `."` or the
// closing `"`).
func Lex(source string) []*Term {
	words := rawWords(source)
	terms := make([]*Term, 0, len(words)+1)
	terms = append(terms, newTerm(0, isa.KindEntrypoint, ""))

	wordNumber := 0
	for idx := 0; idx < len(words); idx++ {
		word := words[idx]
		wordNumber++

		if word == stringOpener {
			parts := make([]string, 0, 4)
			idx++
			for idx < len(words) {
				w := words[idx]
				parts = append(parts, w)
				if strings.HasSuffix(w, `"`) {
					break
				}
				idx++
			}
			content := strings.Join(parts, " ")
			content = strings.TrimSuffix(content, `"`)
			terms = append(terms, newTerm(wordNumber, isa.KindString, content))
			continue
		}

		if kind, ok := isa.WordToTerm(word); ok {
			terms = append(terms, newTerm(wordNumber, kind, word))
			continue
		}
		terms = append(terms, newTerm(wordNumber, isa.KindUnknown, word))
	}
	return terms
}
