package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ndubovik/keyscan/internal/model"
)

// Renderer writes reports as JSON, Markdown, and a stdout summary.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Keywords: %s\n\n", report.Subject)
	fmt.Fprintf(&b, "- **Source**: %s\n", report.Source)
	fmt.Fprintf(&b, "- **Analyzed**: %s\n", report.FetchedAt.Format("2006-01-02 15:04:05 UTC"))
	if report.Title != "" {
		fmt.Fprintf(&b, "- **Title**: %s\n", report.Title)
	}
	b.WriteString("\n")

	b.WriteString("## Keywords\n\n")
	if len(report.Keywords) == 0 {
		b.WriteString("_No keywords found._\n")
	}
	for _, k := range report.Keywords {
		fmt.Fprintf(&b, "- %s\n", k)
	}
	b.WriteString("\n")

	if len(report.ProperNouns) > 0 {
		b.WriteString("## Named Entities\n\n")
		for _, p := range report.ProperNouns {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	if len(report.Frequent) > 0 {
		b.WriteString("## Frequent Terms\n\n")
		b.WriteString("| Term | Count |\n|------|-------|\n")
		for _, wc := range report.Frequent {
			fmt.Fprintf(&b, "| %s | %d |\n", wc.Word, wc.Frequency)
		}
		b.WriteString("\n")
	}

	if len(report.TitleContext) > 0 {
		b.WriteString("## Title Context\n\n")
		for _, t := range report.TitleContext {
			fmt.Fprintf(&b, "- %s\n", t)
		}
		b.WriteString("\n")
	}

	if report.LLM != nil && report.LLM.SummaryMD != "" {
		fmt.Fprintf(&b, "## Topic Summary (%s)\n\n%s\n\n", report.LLM.Model, report.LLM.SummaryMD)
	}

	if r.includeFooter {
		b.WriteString("---\n\n_Generated by keyscan._\n")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderSummary prints a short result summary to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n%s\n", report.Subject)
	fmt.Printf("  Source: %s\n", report.Source)
	if report.Title != "" {
		fmt.Printf("  Title: %s\n", report.Title)
	}
	fmt.Printf("  Keywords (%d): %s\n", len(report.Keywords), strings.Join(report.Keywords, ", "))
	if len(report.Frequent) > 0 {
		terms := make([]string, 0, len(report.Frequent))
		for _, wc := range report.Frequent {
			terms = append(terms, fmt.Sprintf("%s(%d)", wc.Word, wc.Frequency))
		}
		fmt.Printf("  Frequent: %s\n", strings.Join(terms, ", "))
	}
	if report.LLM != nil && report.LLM.SummaryMD != "" {
		fmt.Printf("  Summary: %s\n", report.LLM.SummaryMD)
	}
}
