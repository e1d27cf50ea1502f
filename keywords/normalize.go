package keywords

import (
	"regexp"
	"strings"
)

// edgeCutset is the punctuation and symbol set stripped from the edges
// of a word or phrase. '+' is deliberately absent so model-code
// suffixes like "9300+" survive normalization. Currency symbols are
// kept so the title filter can still recognize prices.
const edgeCutset = "\"'“”‘’`()[]{}<>«»-–—_*#@&%!?.,:;/\\|~^="

var reWhitespaceRun = regexp.MustCompile(`\s+`)

// Cleanup normalizes a single word or phrase: edge punctuation is
// stripped, internal whitespace runs collapse to single spaces, stray
// double quotes are removed, and a trailing possessive ('s or the
// typographic equivalent) is dropped. The passes repeat until the
// string is stable, so Cleanup(Cleanup(x)) == Cleanup(x). Returns the
// empty string when nothing remains.
func Cleanup(word string) string {
	prev := ""
	for word != prev {
		prev = word
		word = cleanupPass(word)
	}
	return word
}

func cleanupPass(w string) string {
	w = strings.Trim(w, edgeCutset)
	w = reWhitespaceRun.ReplaceAllString(w, " ")
	w = strings.TrimSpace(w)

	// Quote characters anywhere in the word, not only at the edges.
	// Apostrophes stay so the possessive strip below sees them.
	for _, q := range []string{`"`, "“", "”", "«", "»"} {
		w = strings.ReplaceAll(w, q, "")
	}

	for _, suffix := range []string{"'s", "’s"} {
		if strings.HasSuffix(w, suffix) {
			w = strings.TrimSuffix(w, suffix)
			break
		}
	}
	return w
}
