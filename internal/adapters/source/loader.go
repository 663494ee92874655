// Package source implements the lockfile source loader for filesystem paths
// and file/http/https URLs.
package source

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lockcmp/internal/core/domain"
	"go.trai.ch/lockcmp/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	httpClientTimeout = 30 * time.Second

	// maxErrorBody bounds how much of a failed response is echoed back in
	// the error message.
	maxErrorBody = 512
)

// Loader implements ports.LockfileSource. Fetching is a single blocking call
// per location with no retry or recovery; any failure aborts the run.
type Loader struct {
	parser     ports.LockfileParser
	httpClient *http.Client
}

// NewLoader creates a Loader that parses fetched lockfile text with parser.
func NewLoader(parser ports.LockfileParser) *Loader {
	return newLoaderWithClient(parser, &http.Client{Timeout: httpClientTimeout})
}

// newLoaderWithClient creates a Loader with a custom http client (used for testing).
func newLoaderWithClient(parser ports.LockfileParser, client *http.Client) *Loader {
	return &Loader{
		parser:     parser,
		httpClient: client,
	}
}

// Load resolves location, fetches the lockfile text, and returns the parsed
// graph with its source location and content fingerprint stamped.
func (l *Loader) Load(ctx context.Context, location string) (*domain.Lockfile, error) {
	data, err := l.fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	lf, err := l.parser.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "source", location)
	}
	lf.Source = location
	lf.Fingerprint = xxhash.Sum64(data)
	return lf, nil
}

// fetch dispatches on the location's URL scheme. A location that does not
// parse as an absolute URL is treated as a plain filesystem path.
func (l *Loader) fetch(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" {
		return readFile(location)
	}

	switch u.Scheme {
	case "file":
		return readFile(u.Path)
	case "http", "https":
		return l.fetchHTTP(ctx, location)
	default:
		return nil, zerr.With(zerr.With(domain.ErrUnsupportedScheme, "scheme", u.Scheme), "source", location)
	}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceUnavailable.Error()), "source", path)
	}
	return data, nil
}

func (l *Loader) fetchHTTP(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceUnavailable.Error()), "source", location)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceUnavailable.Error()), "source", location)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		failure := zerr.With(domain.ErrSourceUnavailable, "source", location)
		failure = zerr.With(failure, "status", resp.Status)
		failure = zerr.With(failure, "body", string(snippet))
		return nil, failure
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceUnavailable.Error()), "source", location)
	}
	return data, nil
}
