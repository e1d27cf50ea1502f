// Package keywords extracts candidate keywords from unstructured text:
// proper-noun phrases, high-frequency terms, and title-derived context
// terms, with stop-word filtering and punctuation normalization.
//
// The extraction heuristics are pattern-based, not grammar-aware. There
// is no part-of-speech tagging, no language model, and no stemming
// beyond simple possessive stripping. The package is intended as an
// embeddable analysis routine (tagging articles, for example), not a
// full NLP pipeline.
//
// A Session holds one content+title input and accumulates keywords
// across successive method calls. Sessions are not safe for concurrent
// use; analyze concurrent texts with one Session each. The stop-word
// set is read-only after construction and safe to share.
package keywords
