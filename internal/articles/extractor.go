// Package articles fetches news pages and extracts their readable content
// along with source transparency data.
package articles

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/newsguard/newsguard/internal/models"
	"github.com/newsguard/newsguard/internal/sourcetrust"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Extractor downloads article pages and pulls out the pieces the app needs
type Extractor struct {
	client *resty.Client
}

// NewExtractor creates an extractor with a browser-like user agent, which
// many news sites require
func NewExtractor() *Extractor {
	return &Extractor{
		client: resty.New().
			SetTimeout(15 * time.Second).
			SetHeader("User-Agent", userAgent),
	}
}

// Extract downloads the page at the given URL and returns its title, main
// text, preview image and source annotation
func (e *Extractor) Extract(ctx context.Context, pageURL string) (*models.Article, error) {
	resp, err := e.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("fetching %s returned status %d", pageURL, resp.StatusCode())
	}
	if len(resp.Body()) == 0 {
		return nil, fmt.Errorf("fetching %s returned an empty body", pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pageURL, err)
	}

	content := extractText(doc)

	description := ""
	if content != "" {
		runes := []rune(content)
		if len(runes) > 300 {
			description = string(runes[:300]) + "..."
		} else {
			description = content + "..."
		}
	}

	source := sourceDomain(pageURL)
	imageURL, _ := doc.Find(`meta[property="og:image"]`).First().Attr("content")

	return &models.Article{
		URL:         pageURL,
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Content:     content,
		Description: description,
		Source:      source,
		ImageURL:    imageURL,
		SourceInfo:  sourcetrust.Info(source),
	}, nil
}

// ExtractTop extracts up to limit articles from the URL list, skipping pages
// that fail to download or parse
func (e *Extractor) ExtractTop(ctx context.Context, urls []string, limit int) []models.Article {
	if len(urls) > limit {
		urls = urls[:limit]
	}

	articles := make([]models.Article, 0, len(urls))
	for _, u := range urls {
		article, err := e.Extract(ctx, u)
		if err != nil {
			logrus.Errorf("Skipping article: %v", err)
			continue
		}
		articles = append(articles, *article)
	}
	return articles
}

// extractText pulls the readable paragraphs out of a page, preferring the
// article element when the page has one
func extractText(doc *goquery.Document) string {
	doc.Find("script, style, noscript, nav, header, footer, aside, form").Remove()

	scope := doc.Selection
	if article := doc.Find("article"); article.Length() > 0 {
		scope = article
	}

	var paragraphs []string
	scope.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return strings.Join(paragraphs, "\n")
}

// sourceDomain reduces a URL to its host without the www prefix
func sourceDomain(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
