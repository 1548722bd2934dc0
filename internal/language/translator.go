package language

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const defaultTranslateURL = "https://translate.googleapis.com/translate_a/single"

// Translator converts text between supported languages using the public
// Google translate endpoint
type Translator struct {
	client  *resty.Client
	baseURL string
}

// NewTranslator creates a translator with default settings
func NewTranslator() *Translator {
	return &Translator{
		client:  resty.New().SetTimeout(30 * time.Second),
		baseURL: defaultTranslateURL,
	}
}

// Translate converts text from the source language to the target language.
// On any failure the original text is returned so the caller can continue
// with untranslated content.
func (t *Translator) Translate(ctx context.Context, text, source, target string) string {
	if text == "" || source == target {
		return text
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     source,
			"tl":     target,
			"dt":     "t",
			"q":      text,
		}).
		Get(t.baseURL)
	if err != nil {
		logrus.Errorf("Translation request failed: %v", err)
		return text
	}

	if resp.StatusCode() != 200 {
		logrus.Errorf("Translation endpoint returned status %d", resp.StatusCode())
		return text
	}

	translated, err := parseTranslation(resp.Body())
	if err != nil {
		logrus.Errorf("Failed to parse translation response: %v", err)
		return text
	}

	logrus.Debugf("Translated %d chars from %s to %s", len(text), source, target)
	return translated
}

// parseTranslation walks the nested array payload of the translate endpoint.
// The response looks like [[["translated","original",...],...],...] with one
// inner array per sentence.
func parseTranslation(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode translation payload: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("translation payload is empty")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("failed to decode translation segments: %w", err)
	}

	var out strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(segment[0], &part); err != nil {
			continue
		}
		out.WriteString(part)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("translation payload contained no text segments")
	}
	return out.String(), nil
}
