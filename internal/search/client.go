// Package search finds news coverage for a claim through Google
// Programmable Search.
package search

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/newsguard/newsguard/internal/config"
)

// Client wraps the Custom Search API for headline queries
type Client struct {
	service *customsearch.Service
	cseID   string
}

// NewClient builds a search client from the app configuration. When no
// credentials are configured the client is created disabled and every
// search returns an error.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if !cfg.SearchEnabled() {
		logrus.Warn("Google search credentials not configured, search is disabled")
		return &Client{}, nil
	}

	service, err := customsearch.NewService(ctx, option.WithAPIKey(cfg.GoogleAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	return &Client{service: service, cseID: cfg.GoogleCSEID}, nil
}

// Enabled reports whether search credentials are configured
func (c *Client) Enabled() bool {
	return c != nil && c.service != nil
}

// Search runs the query and returns result URLs, most relevant first
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("search is not configured")
	}

	resp, err := c.service.Cse.List().Q(query).Cx(c.cseID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	urls := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Link != "" {
			urls = append(urls, item.Link)
		}
	}

	logrus.Debugf("Search for %q returned %d results", query, len(urls))
	return urls, nil
}
