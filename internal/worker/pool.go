// Package worker runs persona generation for many usernames with bounded
// concurrency. The fetch client's shared limiter keeps aggregate request
// rate polite no matter how many workers run.
package worker

import (
	"context"
	"sync"

	"github.com/laasya2505/reddit-persona/internal/model"
)

// Generator produces a persona for one username. Satisfied by
// pipeline.Pipeline.
type Generator interface {
	Generate(ctx context.Context, username string) (*model.Persona, error)
}

// Result is the outcome of one username.
type Result struct {
	Username string
	Persona  *model.Persona
	Err      error
}

// Pool executes persona jobs across a fixed number of workers.
type Pool struct {
	gen     Generator
	workers int
}

// NewPool creates a pool. Fewer than one worker means one.
func NewPool(gen Generator, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{gen: gen, workers: workers}
}

// Run processes all usernames and returns one result per input, in input
// order. It blocks until every job has finished or the context is
// cancelled; cancelled jobs carry the context error.
func (p *Pool) Run(ctx context.Context, usernames []string) []Result {
	results := make([]Result, len(usernames))

	type job struct {
		idx      int
		username string
	}
	jobs := make(chan job)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := ctx.Err(); err != nil {
					results[j.idx] = Result{Username: j.username, Err: err}
					continue
				}
				persona, err := p.gen.Generate(ctx, j.username)
				results[j.idx] = Result{Username: j.username, Persona: persona, Err: err}
			}
		}()
	}

	for i, username := range usernames {
		jobs <- job{idx: i, username: username}
	}
	close(jobs)
	wg.Wait()

	return results
}
