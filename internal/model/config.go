package model

import "time"

// Config holds the complete keyscan configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Keywords    KeywordsConfig    `yaml:"keywords"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls article fetching.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	RespectRobots bool         `yaml:"respect_robots"`
}

// CacheConfig controls the layered fetch cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// KeywordsConfig controls the extraction engine.
type KeywordsConfig struct {
	// TopN is the requested high-frequency keyword count. The engine
	// returns one extra entry; see keywords.FindHighFrequencyKeywords.
	TopN int `yaml:"top_n"`

	// StopWordsFile optionally replaces the built-in stop-word list
	// with a YAML word list.
	StopWordsFile string `yaml:"stop_words_file"`

	// SubsetFilter drops standalone words already covered by a longer
	// phrase in the final keyword list.
	SubsetFilter bool `yaml:"subset_filter"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	BatchWorkers      int     `yaml:"batch_workers"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// LLMConfig controls the optional tag-summary enrichment. The summary
// is a separate output and never changes the extracted keywords.
type LLMConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Model          string `yaml:"model"`
	APIKey         string `yaml:"-"`
	BaseURL        string `yaml:"base_url"`
	MaxTokens      int    `yaml:"max_tokens"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults, the lowest layer of the
// configuration hierarchy (flags > env > file > defaults).
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       60 * time.Second,
			UserAgent:     "keyscan/0.3 (+https://github.com/ndubovik/keyscan)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // resolved to ~/.keyscan/cache at runtime
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Keywords: KeywordsConfig{
			TopN: 7,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers:      4,
			RequestsPerSecond: 1,
			Burst:             3,
		},
		LLM: LLMConfig{
			Model:          "gpt-4o-mini",
			MaxTokens:      400,
			TimeoutSeconds: 30,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
