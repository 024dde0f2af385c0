package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/chaos-recipe-filter/internal/models"
)

// Remote stores the filter behind an HTTP endpoint (GET to read, PUT to write)
type Remote struct {
	client  *http.Client
	url     string
	token   string
	retries int
}

// errNotFound marks a 404 so it is not retried
var errNotFound = errors.New("filter not found")

// NewRemote creates a remote storage from config
func NewRemote(cfg models.StorageConfig) *Remote {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	retries := cfg.Retries
	if retries == 0 {
		retries = 3
	}

	return &Remote{
		client: &http.Client{
			Timeout: timeout,
		},
		url:     cfg.URL,
		token:   cfg.Token,
		retries: retries,
	}
}

// Read downloads the filter. A 404 means no filter is available.
func (r *Remote) Read(ctx context.Context) (string, bool, error) {
	var doc string
	err := r.retry(ctx, func() error {
		var err error
		doc, err = r.doGet(ctx)
		return err
	})
	if err == errNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc, true, nil
}

// Write uploads the whole filter
func (r *Remote) Write(ctx context.Context, doc string) error {
	return r.retry(ctx, func() error {
		return r.doPut(ctx, doc)
	})
}

// retry runs fn up to r.retries times with linear backoff
func (r *Remote) retry(ctx context.Context, fn func() error) error {
	var lastErr error

	for i := 0; i < r.retries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(i) * time.Second):
			}
		}

		err := fn()
		if err == nil || err == errNotFound {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("failed after %d retries: %w", r.retries, lastErr)
}

func (r *Remote) doGet(ctx context.Context) (string, error) {
	req, err := r.newRequest(ctx, http.MethodGet, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Remote) doPut(ctx context.Context, doc string) error {
	req, err := r.newRequest(ctx, http.MethodPut, strings.NewReader(doc))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	return nil
}

func (r *Remote) newRequest(ctx context.Context, method string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, r.url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "chaos-recipe-filter/1.0")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	return req, nil
}
