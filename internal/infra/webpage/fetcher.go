// Package webpage fetches web pages and reduces them to readable text.
package webpage

import (
	"context"
	"net/http"
	"strings"
	"time"

	"fitflow/internal/domain/service"
	"fitflow/internal/errors"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (compatible; fitflow-recipe-importer/1.0)"

// fetcher implements service.PageFetcher with a plain HTTP client and goquery.
type fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a page fetcher.
func NewFetcher() service.PageFetcher {
	return &fetcher{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchText downloads the URL and returns its cleaned textual content.
func (f *fetcher) FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch page")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("unexpected status fetching page: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse page")
	}

	// Remove noise to save model tokens
	doc.Find("script, style, nav, footer, iframe, ads, .ads, #ads").Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})

	text := strings.TrimSpace(doc.Find("body").Text())
	if text == "" {
		return "", errors.New("page has no readable content")
	}

	return text, nil
}
