package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/newsguard/newsguard/internal/models"
)

const headlinesPrompt = `You are a professional news analyst.
Please extract 3 concise headlines from the following news article.
Make sure that each headline is clear and concise, focusing on the main facts and events, places, people, organizations and dates.

I have this news article:

%s

Please provide a response in pure JSON format:
{
    "news_headline": [
        "news_headline_1",
        "news_headline_2",
        "news_headline_3"
    ]
}`

// ExtractHeadlines distills a news passage into up to three searchable headlines
func (s *Service) ExtractHeadlines(ctx context.Context, text string) (*models.HeadlineSet, error) {
	content, err := s.provider.Complete(ctx, "", fmt.Sprintf(headlinesPrompt, text))
	if err != nil {
		return nil, fmt.Errorf("headline extraction failed: %w", err)
	}

	jsonStr, err := extractJSON(content)
	if err != nil {
		return nil, fmt.Errorf("headline completion had no JSON: %w", err)
	}

	var set models.HeadlineSet
	if err := json.Unmarshal([]byte(jsonStr), &set); err != nil {
		return nil, fmt.Errorf("failed to decode headline JSON: %w", err)
	}

	if len(set.NewsHeadline) == 0 {
		return nil, fmt.Errorf("completion contained no headlines")
	}
	if len(set.NewsHeadline) > 3 {
		set.NewsHeadline = set.NewsHeadline[:3]
	}

	return &set, nil
}
