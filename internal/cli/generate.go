package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/laasya2505/reddit-persona/internal/model"
	"github.com/laasya2505/reddit-persona/internal/persona"
	"github.com/laasya2505/reddit-persona/internal/pipeline"
)

var (
	outPath       string
	outJSON       bool
	timeout       time.Duration
	userAgent     string
	maxItems      int
	pageSize      int
	requestDelay  time.Duration
	retryBudget   int
	noCache       bool
	respectRobots bool
	httpProxy     string
	httpsProxy    string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <username|profile-url>",
	Short: "Generate a persona report for one Reddit user",
	Long: `Generate fetches a user's account metadata, submitted posts and
comments, then:
- Normalizes everything into a single text corpus
- Counts keyword matches per interest and personality category
- Infers age group, gender and mentioned locations, with citations
- Aggregates posting hours, subreddits and average scores
- Writes a plain-text report (or JSON with --json)

Example:
  reddit-persona generate kojied
  reddit-persona generate https://www.reddit.com/user/kojied/
  reddit-persona generate kojied --json --out kojied.json
  reddit-persona generate kojied --max-items 500 --delay 2s`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Output flags
	generateCmd.Flags().StringVar(&outPath, "out", "", "output path (default: <username>_persona.txt)")
	generateCmd.Flags().BoolVar(&outJSON, "json", false, "write JSON instead of the text report")

	// HTTP flags
	generateCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "overall run timeout (a full history at the default delay takes a while)")
	generateCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent override")
	generateCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	generateCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// Fetch flags
	generateCmd.Flags().IntVar(&maxItems, "max-items", 0, "cap on collected posts+comments (0 = config default)")
	generateCmd.Flags().IntVar(&pageSize, "page-size", 0, "listing page size (0 = config default)")
	generateCmd.Flags().DurationVar(&requestDelay, "delay", -1, "minimum delay between requests per stream (-1 = config default)")
	generateCmd.Flags().IntVar(&retryBudget, "retries", -1, "retry budget per request (-1 = config default)")
	generateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	generateCmd.Flags().BoolVar(&respectRobots, "respect-robots", false, "honor robots.txt before each request")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildFetchConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	result, err := p.Generate(ctx, input)
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	path := outPath
	if path == "" {
		name := persona.DefaultFilename(result.Username)
		if outJSON {
			name = result.Username + "_persona.json"
		}
		path = reportPath(cfg, name)
	}

	if outJSON {
		if err := persona.WriteJSON(result, path); err != nil {
			return err
		}
	} else {
		renderer := persona.NewRenderer(cfg.Analysis)
		if err := renderer.WriteText(result, path); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "✓ Persona written: %s\n", path)
	if result.Partial() {
		fmt.Fprintf(os.Stderr, "⚠ Partial data: one or more streams failed mid-fetch; see DATA STREAMS in the report\n")
	}

	return nil
}

// buildFetchConfig overlays the shared generate/batch flags onto the
// loaded configuration.
func buildFetchConfig() (*model.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy

	if maxItems > 0 {
		cfg.Fetch.MaxItems = maxItems
	}
	if pageSize > 0 {
		cfg.Fetch.PageSize = pageSize
	}
	if requestDelay >= 0 {
		cfg.Fetch.RequestDelay = requestDelay
	}
	if retryBudget >= 0 {
		cfg.Fetch.RetryBudget = retryBudget
	}
	if respectRobots {
		cfg.Fetch.RespectRobots = true
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	cfg.Output.Verbose = verbose

	if cfg.Output.Dir != "" && cfg.Output.Dir != "." {
		if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	return cfg, nil
}

// reportPath places a report file inside the configured output directory.
func reportPath(cfg *model.Config, name string) string {
	if cfg.Output.Dir == "" {
		return name
	}
	return filepath.Join(cfg.Output.Dir, name)
}
