// Package fetch downloads remote text assets over HTTP.
package fetch

import (
	"context"
	"io"
	"net/http"

	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/logging"
)

// Fetcher retrieves a URL's body as text
type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches over HTTP with caching disabled on the request.
// The zero value uses http.DefaultClient, which follows redirects and,
// like the rest of the bootstrap, has no timeout.
type HTTPFetcher struct {
	Client *http.Client
}

// Get performs a GET against url and returns the full response body.
// A non-2xx status is an error: the body would be an error page, and
// writing one to ~/.antigen.zsh helps nobody.
func (f *HTTPFetcher) Get(ctx context.Context, url string) (string, error) {
	logger := logging.GetLogger("fetch")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFetch, "invalid request for %s", url)
	}
	req.Header.Set("Cache-Control", "no-cache")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	logger.Debug().Str("url", url).Msg("Fetching remote asset")

	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFetch, "failed to fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Newf(errors.ErrFetch, "unexpected status %s fetching %s", resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFetch, "failed to read body of %s", url)
	}

	logger.Debug().Str("url", url).Int("bytes", len(body)).Msg("Fetched remote asset")
	return string(body), nil
}
