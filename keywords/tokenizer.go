package keywords

import (
	"regexp"
	"strings"
)

var (
	// Separator punctuation is padded with spaces so it tokenizes on
	// its own and never glues onto a neighboring word.
	reSeparator = regexp.MustCompile(`([,;:])`)

	// Sentence-terminal punctuation followed by whitespace or end of
	// text is split off as its own token; later passes re-derive
	// sentence boundaries by scanning for these tokens.
	reTerminal = regexp.MustCompile(`([.!?])(\s+|$)`)

	// A terminal directly preceding a capital letter also closes a
	// sentence ("...world.Next sentence").
	reTerminalCap = regexp.MustCompile(`([.!?])([A-Z])`)
)

// Tokenize splits the session content into ordered tokens. Separator
// and sentence-terminal punctuation become standalone tokens; runs of
// whitespace are collapsed. Tokenize never fails: malformed input
// degrades to an empty token sequence.
func (s *Session) Tokenize() []string {
	return tokenize(s.content)
}

func tokenize(text string) (tokens []string) {
	defer func() {
		if recover() != nil {
			tokens = nil
		}
	}()

	if strings.TrimSpace(text) == "" {
		return nil
	}

	padded := reSeparator.ReplaceAllString(text, " $1 ")
	padded = reTerminalCap.ReplaceAllString(padded, "$1 $2")
	padded = reTerminal.ReplaceAllString(padded, " $1 ")

	for _, f := range strings.Fields(padded) {
		if f = strings.TrimSpace(f); f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// isTerminal reports whether tok is a standalone sentence terminator.
func isTerminal(tok string) bool {
	return tok == "." || tok == "!" || tok == "?"
}
