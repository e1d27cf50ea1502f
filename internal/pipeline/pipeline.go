package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ndubovik/keyscan/internal/cache"
	"github.com/ndubovik/keyscan/internal/extract"
	"github.com/ndubovik/keyscan/internal/llm"
	"github.com/ndubovik/keyscan/internal/model"
	"github.com/ndubovik/keyscan/internal/util"
	"github.com/ndubovik/keyscan/internal/worker"
	"github.com/ndubovik/keyscan/keywords"
)

// Pipeline orchestrates the complete tagging process: fetch, extract,
// keyword analysis, and optional LLM enrichment.
type Pipeline struct {
	fetcher    *Fetcher
	robots     *util.RobotsChecker // nil when robots.txt checking is disabled
	limiter    *worker.Limiter
	store      cache.Cache // nil when caching is disabled
	stops      *keywords.StopWordSet
	summarizer *llm.Summarizer // nil if disabled
	renderer   *Renderer
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	stops := keywords.DefaultStopWords()
	if cfg.Keywords.StopWordsFile != "" {
		loaded, err := keywords.LoadStopWords(cfg.Keywords.StopWordsFile)
		if err != nil {
			return nil, fmt.Errorf("load stop words: %w", err)
		}
		stops = loaded
	}

	var store cache.Cache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("resolve cache dir: %w", err)
			}
			dir = filepath.Join(home, ".keyscan", "cache")
		}
		store = cache.NewLayered(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
	}

	var robots *util.RobotsChecker
	if cfg.HTTP.RespectRobots {
		robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Enabled {
		s, err := llm.NewSummarizer(cfg.LLM)
		if err != nil {
			fmt.Printf("Warning: Failed to initialize LLM summarizer: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		fetcher: NewFetcher(
			cfg.HTTP.Timeout,
			cfg.HTTP.UserAgent,
			cfg.HTTP.MaxBodyBytes,
			cfg.HTTP.InsecureTLS,
			cfg.HTTP.HTTPProxy,
			cfg.HTTP.HTTPSProxy,
		),
		robots:     robots,
		limiter:    worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst),
		store:      store,
		stops:      stops,
		summarizer: summarizer,
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		config:     cfg,
	}, nil
}

// TagURL fetches one URL and generates a complete keyword report.
func (p *Pipeline) TagURL(ctx context.Context, rawURL string) (*model.Report, error) {
	if p.robots != nil {
		allowed, delay, err := p.robots.Allowed(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("blocked by robots.txt: %s", rawURL)
		}
		if delay > 0 {
			fetchSleepFunc(delay)
		}
	}

	if err := p.limiter.Wait(ctx, rawURL); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	var (
		htmlContent string
		meta        *model.FetchMeta
		subject     string
		source      = rawURL
	)

	key := cache.Key(rawURL)
	if p.store != nil {
		if body, ok := p.store.Get(key); ok {
			htmlContent = string(body)
			subject = extractSubject(rawURL)
		}
	}

	if htmlContent == "" {
		result, err := p.fetcher.FetchWithRetry(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("fetch: %w", err)
		}
		htmlContent = result.HTML
		meta = &result.Meta
		subject = result.Subject
		source = result.FinalURL

		if p.store != nil {
			if err := p.store.Set(key, []byte(htmlContent), p.config.Cache.DiskTTL); err != nil {
				fmt.Printf("Warning: Failed to cache %s: %v\n", rawURL, err)
			}
		}
	}

	report, err := p.tagHTML(subject, source, htmlContent)
	if err != nil {
		return nil, err
	}
	report.FetchMeta = meta

	p.enrich(ctx, report)
	return report, nil
}

// TagFile reads a local HTML or text file and generates a report.
func (p *Pipeline) TagFile(path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	subject := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	subject = strings.ReplaceAll(subject, "_", " ")
	subject = strings.ReplaceAll(subject, "-", " ")

	content := string(data)
	if looksLikeHTML(content) {
		return p.tagHTML(subject, path, content)
	}
	return p.TagText(subject, path, "", content)
}

// TagText analyzes already-extracted plain text.
func (p *Pipeline) TagText(subject, source, title, text string) (*model.Report, error) {
	opts := []keywords.Option{keywords.WithStopWords(p.stops)}
	if title != "" {
		opts = append(opts, keywords.WithTitle(title))
	}
	if p.config.Keywords.SubsetFilter {
		opts = append(opts, keywords.WithSubsetFiltering())
	}

	session, err := keywords.NewSession(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	topN := p.config.Keywords.TopN
	if topN < 1 {
		topN = 7
	}

	properNouns := session.FindProperNouns()
	frequent, err := session.FindHighFrequencyKeywords(topN)
	if err != nil {
		return nil, fmt.Errorf("frequency analysis: %w", err)
	}
	titleContext, _ := session.FindContextFromTitle()
	final := session.ExtractKeywords()

	return &model.Report{
		Subject:      subject,
		Source:       source,
		FetchedAt:    time.Now().UTC(),
		Title:        title,
		ProperNouns:  properNouns,
		Frequent:     frequent,
		TitleContext: titleContext,
		Keywords:     final,
	}, nil
}

// tagHTML extracts readable text from an HTML document and analyzes it.
func (p *Pipeline) tagHTML(subject, source, htmlContent string) (*model.Report, error) {
	article, err := extract.FromHTML(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	return p.TagText(subject, source, article.Title, article.Text)
}

// enrich attaches the optional LLM summary. Failures warn, never fail
// the run.
func (p *Pipeline) enrich(ctx context.Context, report *model.Report) {
	if p.summarizer == nil {
		return
	}
	summary, err := p.summarizer.Summarize(ctx, report)
	if err != nil {
		fmt.Printf("Warning: LLM summary generation failed: %v\n", err)
		return
	}
	report.LLM = summary
}

// RenderReport renders the report to the configured outputs.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}

// ClearCache drops all cached fetches.
func (p *Pipeline) ClearCache() error {
	if p.store == nil {
		return nil
	}
	return p.store.Clear()
}

// looksLikeHTML is a cheap sniff for file input.
func looksLikeHTML(content string) bool {
	head := strings.ToLower(content)
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html") || strings.Contains(head, "<body")
}
