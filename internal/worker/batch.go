package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// ProcessFile reads usernames from a file (one per line, "u/" prefixes and
// profile URLs accepted verbatim, "#" comments and blanks skipped,
// duplicates collapsed) and generates personas with the given concurrency.
func ProcessFile(ctx context.Context, gen Generator, path string, concurrency int) ([]Result, error) {
	usernames, err := ReadUsernames(path)
	if err != nil {
		return nil, err
	}
	return NewPool(gen, concurrency).Run(ctx, usernames), nil
}

// ReadUsernames loads the deduplicated username list from a file.
func ReadUsernames(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var usernames []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			usernames = append(usernames, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return usernames, nil
}
