package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DefaultBaseURL is where puzzle inputs are fetched from.
const DefaultBaseURL = "https://adventofcode.com"

// ErrNoSession is returned when an input has to be fetched but no session
// cookie is available.
var ErrNoSession = errors.New("no adventofcode.com session")

// Fetcher resolves puzzle inputs from a local cache, downloading them from
// adventofcode.com on a miss.
type Fetcher struct {
	// CacheDir is the directory inputs are cached in, as
	// <CacheDir>/<year>/<day>.input.
	CacheDir string
	// SessionFile holds the value of the "session" cookie.
	SessionFile string
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// Client defaults to http.DefaultClient.
	Client *http.Client
	Log    *zap.Logger
}

func (f *Fetcher) logger() *zap.Logger {
	if f.Log == nil {
		return zap.NewNop()
	}
	return f.Log
}

// CachePath returns the path the input for year/day is cached at.
func (f *Fetcher) CachePath(year, day int) string {
	return filepath.Join(f.CacheDir, fmt.Sprint(year), fmt.Sprintf("%d.input", day))
}

// Input returns the puzzle input for year/day.
func (f *Fetcher) Input(ctx context.Context, year, day int) ([]byte, error) {
	url := fmt.Sprintf("%s/%d/day/%d/input", Or(f.BaseURL, DefaultBaseURL), year, day)
	return f.fileOrFetch(ctx, f.CachePath(year, day), url)
}

func (f *Fetcher) session() (string, error) {
	if f.SessionFile == "" {
		return "", ErrNoSession
	}
	b, err := os.ReadFile(f.SessionFile)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s does not exist", ErrNoSession, f.SessionFile)
	}
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrNoSession, f.SessionFile)
	}
	return s, nil
}

func (f *Fetcher) fileOrFetch(ctx context.Context, filename, url string) ([]byte, error) {
	if b, err := os.ReadFile(filename); err == nil {
		f.logger().Debug("input cache hit", zap.String("path", filename))
		return b, nil
	}

	body, err := f.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	f.logger().Info("cached input", zap.String("path", filename), zap.Int("bytes", len(body)))
	return body, nil
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	session, err := f.session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})

	f.logger().Debug("fetching", zap.String("url", url))
	res, err := Or(f.Client, http.DefaultClient).Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
