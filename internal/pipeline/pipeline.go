// Package pipeline wires the run together: account metadata, the two
// content streams, normalization, classification, aggregation, assembly.
package pipeline

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/laasya2505/reddit-persona/internal/activity"
	"github.com/laasya2505/reddit-persona/internal/classify"
	"github.com/laasya2505/reddit-persona/internal/fetch"
	"github.com/laasya2505/reddit-persona/internal/model"
	"github.com/laasya2505/reddit-persona/internal/normalize"
	"github.com/laasya2505/reddit-persona/internal/persona"
	"github.com/laasya2505/reddit-persona/internal/taxonomy"
)

// Pipeline holds the shared client, the immutable taxonomies and the run
// configuration.
type Pipeline struct {
	client *fetch.Client
	tax    *taxonomy.Taxonomy
	cfg    *model.Config
}

// New builds a pipeline, loading the embedded taxonomies once.
func New(cfg *model.Config) (*Pipeline, error) {
	tax, err := taxonomy.Default()
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		client: fetch.NewClient(cfg),
		tax:    tax,
		cfg:    cfg,
	}, nil
}

// Generate produces a persona for the given username or profile URL.
//
// Account-level failures (not found, suspended) abort before any content
// request is issued. Stream-level failures degrade: the items collected
// before the failure stay in the corpus and the stream is flagged partial.
func (p *Pipeline) Generate(ctx context.Context, input string) (*model.Persona, error) {
	username, err := fetch.ParseUsername(input)
	if err != nil {
		return nil, err
	}

	account, err := p.client.Account(ctx, username)
	if err != nil {
		return nil, err
	}
	slog.Info("account fetched", "user", account.Username, "karma", account.TotalKarma)

	// The two streams run in parallel; each draws from its own delay
	// bucket and carries its own retry budget. Their errors are
	// non-fatal, so the group only propagates context cancellation.
	var (
		posts, comments       []fetch.RawItem
		postsErr, commentsErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		posts, postsErr = p.client.Stream(gctx, username, model.KindPost, p.cfg.Fetch.MaxItems)
		return nil
	})
	g.Go(func() error {
		comments, commentsErr = p.client.Stream(gctx, username, model.KindComment, p.cfg.Fetch.MaxItems)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Single assembly step after both streams return; the corpus is never
	// written concurrently. The corpus cap covers both full streams unless
	// configured lower, in which case the stream whose units were dropped
	// is flagged partial.
	limit := p.cfg.Fetch.MaxCorpus
	if limit <= 0 {
		limit = 2 * p.cfg.Fetch.MaxItems
	}
	corpus := model.NewCorpus(limit)

	postUnits := normalize.Units(posts, model.KindPost)
	commentUnits := normalize.Units(comments, model.KindComment)
	postsTruncated := corpus.AddAll(postUnits) < len(postUnits) && corpus.Full()
	commentsTruncated := corpus.AddAll(commentUnits) < len(commentUnits) && corpus.Full()
	slog.Info("corpus assembled",
		"posts", len(posts), "comments", len(comments), "units", corpus.Len())

	if corpus.Len() == 0 {
		return nil, &model.EmptyCorpusError{Username: username}
	}

	streams := []model.StreamReport{
		streamReport(model.StreamSubmissions, len(posts), postsErr, postsTruncated),
		streamReport(model.StreamComments, len(comments), commentsErr, commentsTruncated),
	}

	units := corpus.Units()
	opts := classify.OptionsFrom(p.cfg.Analysis)
	interests := classify.Classify(units, p.tax.Interests, opts)
	personality := classify.Classify(units, p.tax.Personality, opts)
	demographics := classify.InferDemographics(units, p.tax, opts)
	summary := activity.Aggregate(units)

	return persona.Assemble(account, summary, interests, personality, demographics, streams), nil
}

func streamReport(stream string, collected int, err error, truncated bool) model.StreamReport {
	report := model.StreamReport{
		Stream:    stream,
		Collected: collected,
	}
	if err != nil {
		report.Partial = true
		report.Error = err.Error()
		slog.Warn("stream degraded to partial data", "stream", stream, "collected", collected, "err", err)
	}
	if truncated {
		report.Partial = true
		if report.Error == "" {
			report.Error = "corpus cap reached"
		}
		slog.Warn("stream truncated at corpus cap", "stream", stream, "collected", collected)
	}
	return report
}
