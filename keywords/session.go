package keywords

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// ErrInvalidArgument is returned when an operation receives input of the
// wrong shape: non-textual content, a nil token list, or a non-positive
// top-N count. It is raised eagerly at the API boundary, never from
// inside the scanning logic.
var ErrInvalidArgument = errors.New("invalid argument")

// defaultTopN is the frequency cutoff used by ExtractKeywords.
const defaultTopN = 7

// Session is one keyword extraction session: a single content+title
// input plus the keywords accumulated by successive extraction calls.
// The accumulated set is append-only: calling extraction methods
// repeatedly on one session yields cumulative, not replaced, results.
//
// A Session is not safe for concurrent use.
type Session struct {
	content      string
	title        string
	stops        *StopWordSet
	subsetFilter bool

	keywords []string
	seen     map[string]struct{}
}

// Option configures a Session.
type Option func(*Session)

// WithTitle supplies the article title used by FindContextFromTitle.
func WithTitle(title string) Option {
	return func(s *Session) { s.title = title }
}

// WithStopWords replaces the default stop-word set.
func WithStopWords(set *StopWordSet) Option {
	return func(s *Session) {
		if set != nil {
			s.stops = set
		}
	}
}

// WithSubsetFiltering makes ExtractKeywords drop standalone words that
// are already covered by a longer multi-word phrase (for example,
// "iPhone" when "iPhone 14 Pro" is present). The default keeps them.
func WithSubsetFiltering() Option {
	return func(s *Session) { s.subsetFilter = true }
}

// NewSession creates an extraction session for the given content.
// It returns ErrInvalidArgument if content is not valid UTF-8 text.
func NewSession(content string, opts ...Option) (*Session, error) {
	if !utf8.ValidString(content) {
		return nil, fmt.Errorf("content is not valid text: %w", ErrInvalidArgument)
	}
	s := &Session{
		content: content,
		stops:   DefaultStopWords(),
		seen:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Keywords returns a copy of the keywords accumulated so far, in
// insertion order.
func (s *Session) Keywords() []string {
	out := make([]string, len(s.keywords))
	copy(out, s.keywords)
	return out
}

// addKeywords merges words into the accumulated set, enforcing the set
// invariants: no empty entries, no digit-only entries, no duplicates.
func (s *Session) addKeywords(words []string) {
	for _, w := range words {
		if w == "" || isNumeric(w) {
			continue
		}
		if _, ok := s.seen[w]; ok {
			continue
		}
		s.seen[w] = struct{}{}
		s.keywords = append(s.keywords, w)
	}
}

// ExtractKeywords runs the full extraction: proper nouns, high-frequency
// terms, and title context, followed by a cleanup pass over the
// accumulated set and a final ordering by descending keyword length.
//
// Unless WithSubsetFiltering was given, single words covered by a longer
// phrase are kept; the removal set is computed but not applied, matching
// the historical behavior of this extractor.
func (s *Session) ExtractKeywords() []string {
	s.FindProperNouns()
	// n >= 1, so the error path is unreachable here.
	_, _ = s.FindHighFrequencyKeywords(defaultTopN)
	s.FindContextFromTitle()

	final := make([]string, 0, len(s.keywords))
	seen := make(map[string]struct{}, len(s.keywords))
	for _, k := range s.keywords {
		c := Cleanup(k)
		if c == "" || isNumeric(c) {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		final = append(final, c)
	}

	sort.SliceStable(final, func(i, j int) bool {
		return len(final[i]) > len(final[j])
	})

	covered := phraseConstituents(final)
	if s.subsetFilter {
		kept := final[:0]
		for _, k := range final {
			if _, ok := covered[k]; ok && !strings.Contains(k, " ") {
				continue
			}
			kept = append(kept, k)
		}
		final = kept
	}

	return final
}

// phraseConstituents collects the single words that appear inside
// multi-word phrases and would therefore be redundant as standalone
// keywords.
func phraseConstituents(kws []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, k := range kws {
		if !strings.Contains(k, " ") {
			continue
		}
		for _, w := range strings.Fields(k) {
			set[w] = struct{}{}
		}
	}
	return set
}

// isNumeric reports whether w consists solely of ASCII digits.
func isNumeric(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < '0' || w[i] > '9' {
			return false
		}
	}
	return true
}

// RemoveStopWords filters items against the default stop-word set using
// a throwaway session.
func RemoveStopWords(items []string) ([]string, error) {
	s, err := NewSession("")
	if err != nil {
		return nil, err
	}
	return s.RemoveStopWords(items)
}

// FindProperNouns extracts proper-noun phrases from content using a
// throwaway session.
func FindProperNouns(content string) ([]string, error) {
	s, err := NewSession(content)
	if err != nil {
		return nil, err
	}
	return s.FindProperNouns(), nil
}

// FindHighFrequencyKeywords counts the top-n non-numeric terms in
// content using a throwaway session.
func FindHighFrequencyKeywords(content string, n int) ([]WordCount, error) {
	s, err := NewSession(content)
	if err != nil {
		return nil, err
	}
	return s.FindHighFrequencyKeywords(n)
}
