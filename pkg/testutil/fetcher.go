package testutil

import "context"

// FakeFetcher implements fetch.Fetcher with a canned body
type FakeFetcher struct {
	Body string
	Err  error

	// URLs records every URL requested, in order
	URLs []string
}

// Get records the URL and returns the canned body or error
func (f *FakeFetcher) Get(_ context.Context, url string) (string, error) {
	f.URLs = append(f.URLs, url)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Body, nil
}
