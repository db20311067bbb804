package model

import "time"

// Config is the full configuration tree. Everything the analysis depends on
// (corpus cap, request delay, retry budget, citation count, snippet length)
// is a field here, never a literal inside the classifier or fetcher.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http" mapstructure:"http"`
	Fetch    FetchConfig    `yaml:"fetch" mapstructure:"fetch"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Cache    CacheConfig    `yaml:"cache" mapstructure:"cache"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls the HTTP client.
type HTTPConfig struct {
	BaseURL      string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" mapstructure:"https_proxy"`
}

// FetchConfig controls pagination, politeness and retries. MaxItems caps
// each stream; MaxCorpus caps the combined corpus, and zero means the sum
// of the stream caps so one full stream can never crowd out the other.
type FetchConfig struct {
	MaxItems      int           `yaml:"max_items" mapstructure:"max_items"`
	MaxCorpus     int           `yaml:"max_corpus" mapstructure:"max_corpus"`
	PageSize      int           `yaml:"page_size" mapstructure:"page_size"`
	RequestDelay  time.Duration `yaml:"request_delay" mapstructure:"request_delay"`
	RetryBudget   int           `yaml:"retry_budget" mapstructure:"retry_budget"`
	BackoffBase   time.Duration `yaml:"backoff_base" mapstructure:"backoff_base"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// AnalysisConfig controls classification and report sizing.
type AnalysisConfig struct {
	MaxCitations  int `yaml:"max_citations" mapstructure:"max_citations"`
	SnippetLength int `yaml:"snippet_length" mapstructure:"snippet_length"`
	PeakHours     int `yaml:"peak_hours" mapstructure:"peak_hours"`
	TopSubreddits int `yaml:"top_subreddits" mapstructure:"top_subreddits"`
	TopLocations  int `yaml:"top_locations" mapstructure:"top_locations"`
}

// CacheConfig controls the layered page cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// OutputConfig controls report writing.
type OutputConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"`
	JSON    bool   `yaml:"json" mapstructure:"json"`
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults. The request delay is the
// fair-use floor for reddit.com and applies to every request, including the
// first content request after account metadata.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			BaseURL:      "https://www.reddit.com",
			Timeout:      30 * time.Second,
			UserAgent:    "reddit-persona/1.0 (read-only profile analysis)",
			MaxBodyBytes: 4_000_000,
		},
		Fetch: FetchConfig{
			MaxItems:     2000,
			PageSize:     100,
			RequestDelay: 1 * time.Second,
			RetryBudget:  3,
			BackoffBase:  2 * time.Second,
		},
		Analysis: AnalysisConfig{
			MaxCitations:  3,
			SnippetLength: 150,
			PeakHours:     3,
			TopSubreddits: 10,
			TopLocations:  5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Output: OutputConfig{
			Dir:  ".",
			JSON: false,
		},
	}
}
