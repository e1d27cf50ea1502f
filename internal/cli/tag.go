package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ndubovik/keyscan/internal/model"
	"github.com/ndubovik/keyscan/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON      string
	outMD        string
	titleFlag    string
	topN         int
	timeout      time.Duration
	userAgent    string
	maxBytes     int64
	noCache      bool
	noFooter     bool
	noRobots     bool
	insecureTLS  bool
	httpProxy    string
	httpsProxy   string
	subsetFilter bool
	stopWordsPth string
	llmEnabled   bool
	llmModel     string
)

// tagCmd represents the tag command
var tagCmd = &cobra.Command{
	Use:   "tag <url|file|->",
	Short: "Extract keywords from a URL, local file, or stdin",
	Long: `Tag analyzes one document and extracts its keywords:
- Named entities and multi-word proper-noun phrases
- High-frequency topical terms with counts
- Context words from the title

The input may be a URL, a local HTML or text file, or "-" to read
plain text from stdin.

Example:
  keyscan tag https://en.wikipedia.org/wiki/Go_(programming_language)
  keyscan tag article.html --json report.json --md report.md
  keyscan tag - --title "Apple Event" < notes.txt
  keyscan tag https://example.com --llm`,
	Args: cobra.ExactArgs(1),
	RunE: runTag,
}

func init() {
	rootCmd.AddCommand(tagCmd)

	// Output flags
	tagCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	tagCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Extraction flags
	tagCmd.Flags().StringVar(&titleFlag, "title", "", "override the document title used for context extraction")
	tagCmd.Flags().IntVar(&topN, "top", 7, "requested high-frequency keyword count")
	tagCmd.Flags().BoolVar(&subsetFilter, "subset-filter", false, "drop standalone words covered by a longer phrase")
	tagCmd.Flags().StringVar(&stopWordsPth, "stopwords", "", "YAML file replacing the built-in stop-word list")

	// HTTP flags
	tagCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall tag timeout")
	tagCmd.Flags().StringVar(&userAgent, "ua", "keyscan/0.3 (+https://github.com/ndubovik/keyscan)", "HTTP User-Agent")
	tagCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	tagCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	tagCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	tagCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	tagCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	tagCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	tagCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// LLM flags
	tagCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM topic summary")
	tagCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runTag(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Tagging: %s\n", input)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	var report *model.Report
	switch {
	case input == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		report, err = p.TagText("stdin", "stdin", titleFlag, string(data))
		if err != nil {
			return fmt.Errorf("tag failed: %w", err)
		}
	case strings.HasPrefix(input, "http://"), strings.HasPrefix(input, "https://"):
		report, err = p.TagURL(ctx, input)
		if err != nil {
			return fmt.Errorf("tag failed: %w", err)
		}
	default:
		report, err = p.TagFile(input)
		if err != nil {
			return fmt.Errorf("tag failed: %w", err)
		}
	}

	if titleFlag != "" && report.Title == "" {
		report.Title = titleFlag
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Found %d named entities\n", len(report.ProperNouns))
		fmt.Fprintf(os.Stderr, "✓ Counted %d frequent terms\n", len(report.Frequent))
		fmt.Fprintf(os.Stderr, "✓ Merged %d keywords\n", len(report.Keywords))
		if report.LLM != nil && report.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated topic summary using %s\n", report.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles the effective configuration from flags and the
// environment.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.HTTP.RespectRobots = !noRobots
	cfg.Cache.Enabled = !noCache
	cfg.Keywords.TopN = topN
	cfg.Keywords.SubsetFilter = subsetFilter
	cfg.Keywords.StopWordsFile = stopWordsPth
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Enabled = true
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}
