package keywords

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// StopWordSet is a fixed set of common words excluded from keyword
// results. Membership tests are exact and case-sensitive; callers that
// want case-variant matching use MatchesAnyCase. The set is read-only
// after construction and safe to share across sessions.
type StopWordSet struct {
	words map[string]struct{}
}

// NewStopWordSet builds a set from the given words, lowercased.
func NewStopWordSet(words []string) *StopWordSet {
	set := &StopWordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(strings.ToLower(w))
		if w != "" {
			set.words[w] = struct{}{}
		}
	}
	return set
}

// LoadStopWords reads a stop-word list from a YAML file containing a
// flat sequence of strings.
func LoadStopWords(path string) (*StopWordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stop words: %w", err)
	}

	var words []string
	if err := yaml.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parse stop words: %w", err)
	}

	return NewStopWordSet(words), nil
}

// Contains reports whether w is in the set, matched exactly.
func (s *StopWordSet) Contains(w string) bool {
	_, ok := s.words[w]
	return ok
}

// MatchesAnyCase checks the lowercase, uppercase, and capitalized forms
// of w against the set. All three forms are computed at lookup time
// rather than canonicalizing once; this mirrors the historical filter
// behavior for acronyms.
func (s *StopWordSet) MatchesAnyCase(w string) bool {
	return s.Contains(strings.ToLower(w)) ||
		s.Contains(strings.ToUpper(w)) ||
		s.Contains(capitalize(w))
}

// Len returns the number of words in the set.
func (s *StopWordSet) Len() int {
	return len(s.words)
}

// capitalize returns w with its first letter upper-cased and the rest
// lower-cased.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	runes := []rune(strings.ToLower(w))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// RemoveStopWords filters items against the session's stop-word set.
// Single-word items are dropped when any case variant matches. For
// multi-word items the constituent stop words are elided and the
// survivors rejoined; an item whose words all match is dropped whole.
// Note that phrase-internal stop words are silently removed ("Bank of
// America" becomes "Bank America").
//
// It returns ErrInvalidArgument when items is nil.
func (s *Session) RemoveStopWords(items []string) ([]string, error) {
	if items == nil {
		return nil, fmt.Errorf("items must be a list of words: %w", ErrInvalidArgument)
	}
	return s.filterStopWords(items), nil
}

// filterStopWords is RemoveStopWords without the boundary check, shared
// by the extraction passes.
func (s *Session) filterStopWords(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.Contains(item, " ") {
			var kept []string
			for _, w := range strings.Fields(item) {
				if !s.stops.MatchesAnyCase(w) {
					kept = append(kept, w)
				}
			}
			if len(kept) > 0 {
				out = append(out, strings.Join(kept, " "))
			}
			continue
		}
		if !s.stops.MatchesAnyCase(item) {
			out = append(out, item)
		}
	}
	return out
}
