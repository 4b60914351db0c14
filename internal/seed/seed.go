// Package seed acquires the session's initial task records. A seed source
// is either a local JSON file or an HTTP URL holding a JSON array of
// loosely-typed task objects. When the source is unreachable or empty the
// caller falls back to [Generate], a fixed-seed synthetic generator, so a
// session always starts with data.
package seed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hmartin/tasktally/internal/errors"
)

// DefaultCount is the size of the synthetic fallback set.
const DefaultCount = 50

// fetchTimeout bounds the one HTTP request a session can make.
const fetchTimeout = 10 * time.Second

// maxBody caps how much of a seed response is read.
const maxBody = 8 << 20 // 8 MiB

// Fetch retrieves the raw seed payload from path. Paths starting with
// http:// or https:// are fetched over the network; anything else is read
// from the local filesystem. Failures come back as a *errors.SeedError
// carrying the source for the UI banner.
func Fetch(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.NewSeedError("no seed source configured", errors.ErrSeedUnavailable)
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return fetchURL(ctx, path)
	}
	return fetchFile(path)
}

func fetchFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewSeedError("failed to read seed file", err).WithSource(path)
	}
	return data, nil
}

func fetchURL(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewSeedError("failed to build seed request", err).WithSource(url)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.NewSeedError("seed request failed", err).WithSource(url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewSeedError(
			fmt.Sprintf("seed request returned %s", resp.Status),
			errors.ErrSeedUnavailable,
		).WithSource(url).WithStatusCode(resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, errors.NewSeedError("failed to read seed response", err).WithSource(url)
	}
	return data, nil
}
