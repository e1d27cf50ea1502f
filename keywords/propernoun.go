package keywords

import (
	"regexp"
	"strings"
)

// Proper-noun shapes. News and product text signals named entities
// through capitalization and alphanumeric model codes; these patterns
// classify a single token without any grammatical analysis.
var (
	// Shape A: a plain capitalized word ("Microsoft").
	reCapWord = regexp.MustCompile(`^[A-Z][a-z]+$`)

	// Shape B: an internal lowercase-to-uppercase transition
	// ("iPhone", "MacBook", "OpenAI"). The leading letter may be
	// lowercase.
	reInnerCap = regexp.MustCompile(`^[A-Za-z]*[a-z][A-Z][A-Za-z]*$`)

	// Shape C: a capitalized token carrying a digit ("A17", "Mate60").
	reCapDigit = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*[0-9][A-Za-z0-9]*$`)

	// Model-number token: letters then digits with an optional trailing
	// plus ("X90+", "9300+").
	reModelPlus = regexp.MustCompile(`^[A-Za-z]*[0-9]+\+?$`)
)

// candidateShape reports whether tok matches any proper-noun shape.
func candidateShape(tok string) bool {
	return reCapWord.MatchString(tok) || reInnerCap.MatchString(tok) || reCapDigit.MatchString(tok)
}

// strongShape reports whether tok is a proper-noun shape strong enough
// to override sentence-initial suppression: an internal capital run or
// a capitalized token containing a digit. Ordinary sentence-initial
// capitalization does not qualify.
func strongShape(tok string) bool {
	return reInnerCap.MatchString(tok) || reCapDigit.MatchString(tok)
}

// continuesPhrase reports whether tok extends an open proper-noun
// phrase: capitalized, digit-led, a short letter+digit combination, a
// literal or spelled-out plus, or a model-number token. Any punctuation
// token fails every test and closes the phrase.
func continuesPhrase(tok string) bool {
	if tok == "+" || strings.EqualFold(tok, "plus") {
		return true
	}
	c := tok[0]
	if c >= 'A' && c <= 'Z' {
		return true
	}
	if c >= '0' && c <= '9' {
		return true
	}
	return shortAlnum(tok) || reModelPlus.MatchString(tok)
}

// shortAlnum reports whether tok is a short mixed letter-digit
// combination such as "5G" or "a17".
func shortAlnum(tok string) bool {
	if len(tok) > 3 {
		return false
	}
	hasLetter, hasDigit := false, false
	for i := 0; i < len(tok); i++ {
		switch c := tok[i]; {
		case c >= '0' && c <= '9':
			hasDigit = true
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			hasLetter = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}

// splitPlusTokens pre-splits tokens joined by '+' into independent
// words. Literal "+" tokens and model-number trailing-plus tokens are
// left intact; only interior separators split ("Dimensity+Helio").
func splitPlusTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !strings.Contains(tok, "+") || tok == "+" || reModelPlus.MatchString(tok) {
			out = append(out, tok)
			continue
		}
		for _, part := range strings.Split(tok, "+") {
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// FindProperNouns scans the content for proper-noun candidates: single
// tokens matching a proper-noun shape, and greedy multi-token phrases
// accumulated from adjacent capitalized or numeric tokens ("iPhone 14
// Pro Max"). Results are normalized, deduplicated, filtered once more
// against the stop-word set, and merged into the session's accumulated
// keywords. The scan is a single left-to-right pass.
func (s *Session) FindProperNouns() []string {
	tokens := splitPlusTokens(tokenize(s.content))

	var raw []string
	// Sentence-initial suppression starts disarmed: a boundary must be
	// observed before the next token is treated as sentence-leading, so
	// a document-leading name is never suppressed.
	sentenceStart := false

	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		if isTerminal(tok) {
			sentenceStart = true
			i++
			continue
		}
		atStart := sentenceStart
		sentenceStart = false

		if len(tok) < 2 || s.stops.Contains(strings.ToLower(tok)) {
			i++
			continue
		}
		if atStart && !strongShape(tok) {
			i++
			continue
		}
		if !candidateShape(tok) {
			i++
			continue
		}

		// Greedy lookahead: extend the phrase until a token fails every
		// continuation test. Stop words inside the run are elided from
		// the phrase but do not close it.
		phrase := []string{tok}
		j := i + 1
		for j < len(tokens) && continuesPhrase(tokens[j]) {
			if !s.stops.MatchesAnyCase(tokens[j]) {
				phrase = append(phrase, tokens[j])
			}
			j++
		}

		if len(phrase) >= 2 {
			raw = append(raw, strings.Join(phrase, " "))
			i = j
			continue
		}

		raw = append(raw, tok)
		i++
	}

	cleaned := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, w := range raw {
		c := Cleanup(w)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cleaned = append(cleaned, c)
	}

	// Phrases can be assembled from tokens that are individually legal
	// but jointly trivial; run them through the filter once more.
	result := s.filterStopWords(cleaned)
	s.addKeywords(result)
	return result
}
