package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/laasya2505/reddit-persona/internal/model"
)

// Account fetches account metadata. A missing account is NotFoundError, a
// suspended or blocked one SuspendedError; both abort the whole run.
func (c *Client) Account(ctx context.Context, username string) (model.AccountInfo, error) {
	var env aboutEnvelope
	err := c.getJSON(ctx, "account", aboutURL(c.baseURL, username), &env)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) {
			switch se.code {
			case http.StatusNotFound:
				return model.AccountInfo{}, &model.NotFoundError{Username: username}
			case http.StatusForbidden:
				return model.AccountInfo{}, &model.SuspendedError{Username: username}
			}
		}
		return model.AccountInfo{}, fmt.Errorf("account metadata: %w", err)
	}

	if env.Data.IsSuspended {
		return model.AccountInfo{}, &model.SuspendedError{Username: username}
	}
	if env.Data.Name == "" {
		return model.AccountInfo{}, &model.NotFoundError{Username: username}
	}

	return model.AccountInfo{
		Username:     env.Data.Name,
		CreatedAt:    time.Unix(int64(env.Data.CreatedUTC), 0).UTC(),
		PostKarma:    env.Data.LinkKarma,
		CommentKarma: env.Data.CommentKarma,
		TotalKarma:   env.Data.TotalKarma,
		Verified:     env.Data.Verified,
		IsGold:       env.Data.IsGold,
		IsMod:        env.Data.IsMod,
	}, nil
}

// Stream pages through one content listing until the cursor runs out, the
// item cap is reached, or a page yields nothing new (a defensive stop
// against cursor loops). Items are deduplicated by fullname across pages.
//
// A mid-pagination failure returns the items collected so far together with
// a FetchError; callers keep the partial data and flag the stream.
func (c *Client) Stream(ctx context.Context, username string, kind model.ContentKind, limit int) ([]RawItem, error) {
	stream := model.StreamComments
	if kind == model.KindPost {
		stream = model.StreamSubmissions
	}

	var (
		items []RawItem
		seen  = make(map[string]struct{})
		after string
	)

	for limit <= 0 || len(items) < limit {
		var env listingEnvelope
		url := listingURL(c.baseURL, username, kind, c.pageSize, after)
		if err := c.getJSON(ctx, stream, url, &env); err != nil {
			return items, &model.FetchError{Stream: stream, Err: err}
		}

		fresh := 0
		for _, child := range env.Data.Children {
			item := child.Data
			id := item.Name
			if id == "" {
				id = item.ID
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			items = append(items, item)
			fresh++
			if limit > 0 && len(items) >= limit {
				break
			}
		}

		// Pages may overlap with the previous one; a page with zero new
		// items means the cursor is looping.
		if fresh == 0 {
			break
		}

		after = env.Data.After
		if after == "" {
			break
		}
	}

	return items, nil
}
