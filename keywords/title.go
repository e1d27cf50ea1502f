package keywords

import (
	"regexp"
	"strings"
)

// reAmount matches pure number runs and currency amounts: an optional
// currency symbol, digits with optional thousands separators, and an
// optional decimal part ("1200", "$1,299.99").
var reAmount = regexp.MustCompile(`^[$€£¥₹]?[0-9]{1,3}(,[0-9]{3})*(\.[0-9]+)?$`)

// FindContextFromTitle extracts context terms from the session title:
// whitespace tokens, normalized, with stop words, bare numbers, and
// currency amounts removed. The deduplicated terms are merged into the
// session's accumulated keywords. The second return value is false when
// no title was supplied at session creation.
func (s *Session) FindContextFromTitle() ([]string, bool) {
	if s.title == "" {
		return nil, false
	}

	var candidates []string
	for _, tok := range strings.Fields(s.title) {
		if c := Cleanup(tok); c != "" {
			candidates = append(candidates, c)
		}
	}

	filtered := s.filterStopWords(candidates)

	result := make([]string, 0, len(filtered))
	seen := make(map[string]struct{}, len(filtered))
	for _, w := range filtered {
		if isNumeric(w) || reAmount.MatchString(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		result = append(result, w)
	}

	s.addKeywords(result)
	return result, true
}
