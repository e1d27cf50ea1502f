package keywords

import "sync"

var (
	defaultStopsOnce sync.Once
	defaultStops     *StopWordSet
)

// DefaultStopWords returns the built-in English stop-word set. The set
// is built once and shared; it must not be mutated.
func DefaultStopWords() *StopWordSet {
	defaultStopsOnce.Do(func() {
		defaultStops = NewStopWordSet(defaultStopWords)
	})
	return defaultStops
}

// defaultStopWords is a compact English function-word list plus a few
// high-frequency news-headline fillers. Maintained externally in
// spirit: edit the list, not the matching logic.
var defaultStopWords = []string{
	// Articles and conjunctions
	"a", "an", "the", "and", "but", "or", "nor", "so", "yet", "if",
	"because", "until", "while", "although", "though", "unless",
	// Pronouns
	"i", "me", "my", "mine", "myself", "we", "us", "our", "ours",
	"you", "your", "yours", "he", "him", "his", "she", "her", "hers",
	"it", "its", "itself", "they", "them", "their", "theirs", "who",
	"whom", "whose", "which", "what", "this", "that", "these", "those",
	"anyone", "someone", "everyone", "something", "anything", "nothing",
	// Prepositions
	"of", "in", "on", "at", "by", "for", "from", "to", "with",
	"without", "about", "against", "between", "among", "into",
	"through", "during", "before", "after", "above", "below", "under",
	"over", "up", "down", "out", "off", "onto", "upon", "per",
	// Verbs and auxiliaries
	"is", "am", "are", "was", "were", "be", "been", "being", "do",
	"does", "did", "done", "have", "has", "had", "having", "will",
	"would", "can", "could", "shall", "should", "may", "might", "must",
	"get", "gets", "got", "make", "makes", "made", "say", "says",
	"said", "go", "goes", "went", "come", "comes", "came", "take",
	"takes", "took", "use", "uses", "used", "know", "knows", "knew",
	// Adverbs and qualifiers
	"not", "no", "only", "just", "very", "too", "also", "then",
	"than", "there", "here", "when", "where", "why", "how", "again",
	"once", "now", "ever", "never", "always", "often", "still",
	"already", "even", "much", "many", "more", "most", "less", "least",
	"some", "such", "any", "all", "both", "each", "few", "other",
	"another", "same", "own", "well", "really", "quite", "rather",
	// Headline filler
	"new", "latest", "breaking", "live", "update", "updates",
	"exclusive", "report", "reports", "today", "yesterday", "tomorrow",
	"year", "years", "day", "days", "week", "weeks", "month", "months",
	"time", "times", "way", "ways", "thing", "things", "people", "one",
	"two", "first", "last", "next", "via", "amid", "as",
}
