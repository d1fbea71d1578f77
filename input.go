package aoc

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
)

// inputPath is where the input of day is read from and cached to.
func (r *runner) inputPath(day int) string {
	if r.opts.input != "" {
		return r.opts.input
	}
	return filepath.Join(r.cfg.InputDir, strconv.Itoa(r.year), fmt.Sprintf("%d.input", day))
}

func (r *runner) loadInput(day int) ([]byte, error) {
	path := r.inputPath(day)
	if r.opts.input != "" {
		return os.ReadFile(path)
	}
	return r.fileOrFetch(path, fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", r.year, day))
}

func (r *runner) fileOrFetch(filename, url string) ([]byte, error) {
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	}

	r.log.Info("fetching input", zap.String("url", url))
	body, err := r.fetch(url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	r.log.Debug("cached input", zap.String("path", filename), zap.Int("bytes", len(body)))
	return body, nil
}

func (r *runner) httpFetch(url string) ([]byte, error) {
	session, err := r.cfg.SessionToken()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
