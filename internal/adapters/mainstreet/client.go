package mainstreet

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"littlemaestros/internal/domain"
)

// The remote server rejects requests that do not look like a browser.
const (
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	acceptLang   = "en-US,en;q=0.5"
)

type httpPageFetcher struct {
	client *http.Client
	url    string
}

// NewHTTPFetcher returns a PageFetcher that fetches the MainStreet booking
// page at url with browser-like headers.
func NewHTTPFetcher(client *http.Client, url string) domain.PageFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpPageFetcher{client: client, url: url}
}

func (f *httpPageFetcher) get(ctx context.Context) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLang)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mainstreet page: %w", err)
	}
	return resp, nil
}

func (f *httpPageFetcher) Fetch(ctx context.Context) (string, error) {
	resp, err := f.get(ctx)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("mainstreet returned status: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read mainstreet response: %w", err)
	}
	return string(body), nil
}

func (f *httpPageFetcher) Probe(ctx context.Context) (int, string, string, error) {
	resp, err := f.get(ctx)
	if err != nil {
		return 0, "", "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, resp.Header.Get("Content-Type"), "", fmt.Errorf("failed to read mainstreet response: %w", err)
	}
	return resp.StatusCode, resp.Header.Get("Content-Type"), string(body), nil
}
