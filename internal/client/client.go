// Package client is a typed client for the backend routes, plus the flow
// controllers that mirror how the web UI drives them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/newsguard/newsguard/internal/models"
)

// Client issues requests against the backend API
type Client struct {
	base string
	http *resty.Client
}

// APIError is a non-success response from the backend. Message carries the
// server-supplied error text when the response had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// New creates a client for the backend at baseURL
func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: resty.New().SetTimeout(60 * time.Second),
	}
}

// VerifyText submits a text passage for verification
func (c *Client) VerifyText(ctx context.Context, text string) (*models.VerificationResult, error) {
	var result models.VerificationResult
	if err := c.postJSON(ctx, "/verify_text", models.VerifyTextRequest{Text: text}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DetectLanguage asks the backend which language a text is written in
func (c *Client) DetectLanguage(ctx context.Context, text string) (*models.LanguageInfo, error) {
	var info models.LanguageInfo
	if err := c.postJSON(ctx, "/detect_language", models.VerifyTextRequest{Text: text}, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// DetectImage uploads an image for AI-generation detection
func (c *Client) DetectImage(ctx context.Context, filename string, data []byte) (*models.ImageAnalysisResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("image", filename, bytes.NewReader(data)).
		Post(c.base + "/detect_image")
	if err != nil {
		return nil, fmt.Errorf("request to /detect_image failed: %w", err)
	}

	var result models.ImageAnalysisResult
	if err := decodeResponse(resp, "/detect_image", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AnalyzeAuthenticity compares a news text against verified article contents
func (c *Client) AnalyzeAuthenticity(ctx context.Context, originalNews string, articles []models.ArticleContent) (*models.AuthenticityResult, error) {
	req := models.AuthenticityRequest{
		OriginalNews:     originalNews,
		VerifiedArticles: articles,
	}

	var result models.AuthenticityResult
	if err := c.postJSON(ctx, "/analyze_authenticity", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(c.base + path)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	return decodeResponse(resp, path, out)
}

func decodeResponse(resp *resty.Response, path string, out any) error {
	if resp.StatusCode() != 200 {
		return apiError(resp)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func apiError(resp *resty.Response) error {
	message := fmt.Sprintf("request failed with status %d", resp.StatusCode())

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Error != "" {
		message = payload.Error
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: message}
}
