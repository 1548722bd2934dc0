package imagecheck

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const defaultSightEngineURL = "https://api.sightengine.com/1.0/check.json"

// SightEngineClient calls the SightEngine genai model to score how likely an
// image is to be AI-generated
type SightEngineClient struct {
	client    *resty.Client
	apiUser   string
	apiSecret string
	baseURL   string
}

type sightEngineResponse struct {
	Status string `json:"status"`
	Type   struct {
		AIGenerated float64 `json:"ai_generated"`
	} `json:"type"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewSightEngineClient creates a client with the given API credentials.
// Empty credentials produce a disabled client.
func NewSightEngineClient(apiUser, apiSecret string) *SightEngineClient {
	return &SightEngineClient{
		client:    resty.New().SetTimeout(30 * time.Second),
		apiUser:   apiUser,
		apiSecret: apiSecret,
		baseURL:   defaultSightEngineURL,
	}
}

// Enabled reports whether API credentials are configured
func (c *SightEngineClient) Enabled() bool {
	return c.apiUser != "" && c.apiSecret != ""
}

// Check submits the image and returns the AI-generation score between 0 and 1.
// The second return value is false when the API could not be used and the
// caller should fall back to local analysis.
func (c *SightEngineClient) Check(ctx context.Context, data []byte) (float64, bool) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("media", "image.jpg", bytes.NewReader(data)).
		SetFormData(map[string]string{
			"models":     "genai",
			"api_user":   c.apiUser,
			"api_secret": c.apiSecret,
		}).
		Post(c.baseURL)
	if err != nil {
		logrus.Errorf("SightEngine request failed: %v", err)
		return 0, false
	}

	switch resp.StatusCode() {
	case 200:
	case 401:
		logrus.Errorf("SightEngine rejected the API credentials")
		return 0, false
	case 402:
		logrus.Errorf("SightEngine account is out of API credits")
		return 0, false
	case 429:
		logrus.Errorf("SightEngine rate limit reached")
		return 0, false
	default:
		logrus.Errorf("SightEngine returned unexpected status %d", resp.StatusCode())
		return 0, false
	}

	var result sightEngineResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		logrus.Errorf("Failed to parse SightEngine response: %v", err)
		return 0, false
	}
	if result.Status != "success" {
		logrus.Errorf("SightEngine analysis failed: %s", result.Error.Message)
		return 0, false
	}

	logrus.Debugf("SightEngine AI-generation score: %.4f", result.Type.AIGenerated)
	return result.Type.AIGenerated, true
}
