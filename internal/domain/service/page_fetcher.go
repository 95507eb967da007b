package service

import "context"

// PageFetcher retrieves a web page and reduces it to the readable text the
// recipe importer feeds to the extraction prompt.
type PageFetcher interface {
	// FetchText downloads the URL and returns its cleaned textual content.
	FetchText(ctx context.Context, url string) (string, error)
}
