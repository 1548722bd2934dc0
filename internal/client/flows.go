package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/newsguard/newsguard/internal/models"
	"github.com/newsguard/newsguard/internal/view"
)

const (
	minTextLength = 20
	maxImageSize  = 10 << 20
)

// Validation failures are reported before any request is sent; the flow's
// state is left unchanged.
var (
	ErrTextTooShort    = errors.New("please enter at least 20 characters of news text")
	ErrNoSelection     = errors.New("please select an image first")
	ErrUnsupportedType = errors.New("invalid file type, please upload an image (PNG, JPG, JPEG, GIF, WEBP)")
	ErrImageTooLarge   = errors.New("image must be 10MB or smaller")
	ErrBusy            = errors.New("a request is already in progress")
)

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/gif":  true,
	"image/webp": true,
}

// gate serializes submissions within one flow. A busy flow rejects re-entry
// but never blocks the other flows.
type gate struct {
	mu   sync.Mutex
	busy bool
}

func (g *gate) begin() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return ErrBusy
	}
	g.busy = true
	return nil
}

func (g *gate) end() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}

// Busy reports whether a submission is in flight
func (g *gate) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

// TextFlow drives the text verification cycle
type TextFlow struct {
	api *Client
	gate
}

// NewTextFlow creates a text verification flow
func NewTextFlow(api *Client) *TextFlow {
	return &TextFlow{api: api}
}

// Submit validates the text, verifies it and projects the result. The busy
// state is cleared on every exit path.
func (f *TextFlow) Submit(ctx context.Context, text string) (*view.TextResultView, error) {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minTextLength {
		return nil, ErrTextTooShort
	}

	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	result, err := f.api.VerifyText(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	v := view.TextResult(result)
	return &v, nil
}

// Selection is a validated image pick. It is a plain value owned by the
// caller and handed to Analyze explicitly, so there is no shared selection
// variable to race on.
type Selection struct {
	Filename string
	MIMEType string
	Data     []byte
}

// NewSelection validates a picked file against the type allow-list and size
// limit. On failure no value is produced, so the caller's previous selection
// stays as it was.
func NewSelection(filename, mimeType string, data []byte) (Selection, error) {
	if !allowedImageTypes[strings.ToLower(mimeType)] {
		return Selection{}, ErrUnsupportedType
	}
	if len(data) > maxImageSize {
		return Selection{}, ErrImageTooLarge
	}
	return Selection{Filename: filename, MIMEType: mimeType, Data: data}, nil
}

// ImageFlow drives the image detection cycle
type ImageFlow struct {
	api *Client
	gate
}

// NewImageFlow creates an image detection flow
func NewImageFlow(api *Client) *ImageFlow {
	return &ImageFlow{api: api}
}

// Analyze uploads the selected image and projects the detection result
func (f *ImageFlow) Analyze(ctx context.Context, sel Selection) (*view.ImageResultView, error) {
	if len(sel.Data) == 0 {
		return nil, ErrNoSelection
	}

	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	result, err := f.api.DetectImage(ctx, sel.Filename, sel.Data)
	if err != nil {
		return nil, err
	}

	v := view.ImageResult(result)
	return &v, nil
}

// AuthenticityFlow drives the comparison against verified articles
type AuthenticityFlow struct {
	api *Client
	gate
}

// NewAuthenticityFlow creates an authenticity comparison flow
func NewAuthenticityFlow(api *Client) *AuthenticityFlow {
	return &AuthenticityFlow{api: api}
}

// Compare submits the original text with the article contents currently on
// screen and projects the comparison result
func (f *AuthenticityFlow) Compare(ctx context.Context, originalNews string, contents []string) (*view.AuthenticityView, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	articles := make([]models.ArticleContent, 0, len(contents))
	for _, content := range contents {
		articles = append(articles, models.ArticleContent{Content: content})
	}

	result, err := f.api.AnalyzeAuthenticity(ctx, originalNews, articles)
	if err != nil {
		return nil, err
	}

	v := view.Authenticity(result)
	return &v, nil
}
