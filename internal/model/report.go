package model

import (
	"time"

	"github.com/ndubovik/keyscan/keywords"
)

// Report is the complete tagging result for one article.
type Report struct {
	Subject   string     `json:"subject"`              // human-readable subject (from URL slug or file name)
	Source    string     `json:"source"`               // URL or file path that was analyzed
	FetchedAt time.Time  `json:"fetched_at"`           // when the analysis ran
	FetchMeta *FetchMeta `json:"fetch_meta,omitempty"` // HTTP metadata (URL sources only)

	Title string `json:"title,omitempty"` // article title, when one was found or supplied

	ProperNouns  []string             `json:"proper_nouns"`            // named-entity candidates, first-appearance order
	Frequent     []keywords.WordCount `json:"frequent"`                // high-frequency terms with counts
	TitleContext []string             `json:"title_context,omitempty"` // title-derived context terms
	Keywords     []string             `json:"keywords"`                // final merged, deduplicated keyword list

	LLM *TagSummary `json:"llm,omitempty"` // optional LLM blurb, never affects Keywords
}

// FetchMeta contains HTTP metadata from fetching the source.
type FetchMeta struct {
	StatusCode   int               `json:"status_code"`
	ContentType  string            `json:"content_type,omitempty"`
	LastModified string            `json:"last_modified,omitempty"`
	ETag         string            `json:"etag,omitempty"`
	Headers      map[string]string `json:"headers,omitempty"`
}

// TagSummary is the optional LLM-generated topic blurb. It is rendered
// separately and never feeds back into keyword extraction.
type TagSummary struct {
	Enabled   bool     `json:"enabled"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
