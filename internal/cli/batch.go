package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/laasya2505/reddit-persona/internal/persona"
	"github.com/laasya2505/reddit-persona/internal/pipeline"
	"github.com/laasya2505/reddit-persona/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Generate personas for multiple users from a file",
	Long: `Batch processes multiple usernames concurrently:
- Read usernames or profile URLs from input file (one per line)
- Generate personas in parallel with configurable worker count
- All workers share one rate limiter, so the aggregate request
  rate toward Reddit stays polite regardless of concurrency
- Write one report per user into the output directory

Example:
  reddit-persona batch users.txt
  reddit-persona batch users.txt --concurrency 4 --output-dir ./reports
  reddit-persona batch users.txt --json --timeout 30m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./persona-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")

	// Shared with the generate command
	batchCmd.Flags().BoolVar(&outJSON, "json", false, "write JSON instead of text reports")
	batchCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent override")
	batchCmd.Flags().IntVar(&maxItems, "max-items", 0, "cap on collected posts+comments per user (0 = config default)")
	batchCmd.Flags().DurationVar(&requestDelay, "delay", -1, "minimum delay between requests per stream (-1 = config default)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	batchCmd.Flags().BoolVar(&respectRobots, "respect-robots", false, "honor robots.txt before each request")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildFetchConfig()
	if err != nil {
		return err
	}
	cfg.Output.Dir = outputDir

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// One pipeline for the whole batch: the fetch client and its limiter
	// are shared by every worker.
	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "⚙️  Processing %s with %d workers...\n", file, concurrency)

	results, err := worker.ProcessFile(ctx, p, file, concurrency)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := persona.NewRenderer(cfg.Analysis)
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Username, result.Err)
			continue
		}

		name := persona.DefaultFilename(result.Persona.Username)
		if outJSON {
			name = result.Persona.Username + "_persona.json"
		}
		path := reportPath(cfg, name)

		if outJSON {
			err = persona.WriteJSON(result.Persona, path)
		} else {
			err = renderer.WriteText(result.Persona, path)
		}
		if err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Username, err)
			continue
		}

		successCount++
		status := ""
		if result.Persona.Partial() {
			status = " (partial data)"
		}
		fmt.Fprintf(os.Stderr, "✓ %s → %s%s\n", result.Username, path, status)
	}

	fmt.Fprintf(os.Stderr, "\nBatch complete: %d ok, %d failed, output in %s\n",
		successCount, failureCount, outputDir)

	if failureCount > 0 && successCount == 0 {
		return fmt.Errorf("all %d users failed", failureCount)
	}
	return nil
}
