package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsguard/newsguard/internal/config"
)

func TestNewClient_Disabled(t *testing.T) {
	client, err := NewClient(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.False(t, client.Enabled())

	_, err = client.Search(context.Background(), "anything")
	assert.EqualError(t, err, "search is not configured")
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "election results fact check", r.URL.Query().Get("q"))
		assert.Equal(t, "test-cse", r.URL.Query().Get("cx"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"link": "https://www.bbc.com/news/articles/one"},
				{"link": "https://www.reuters.com/world/two"},
				{"link": ""}
			]
		}`))
	}))
	defer server.Close()

	cfg := &config.Config{GoogleAPIKey: "test-key", GoogleCSEID: "test-cse"}
	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)
	require.True(t, client.Enabled())
	client.service.BasePath = server.URL + "/"

	urls, err := client.Search(context.Background(), "election results fact check")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://www.bbc.com/news/articles/one",
		"https://www.reuters.com/world/two",
	}, urls)
}

func TestClient_SearchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	cfg := &config.Config{GoogleAPIKey: "test-key", GoogleCSEID: "test-cse"}
	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)
	client.service.BasePath = server.URL + "/"

	_, err = client.Search(context.Background(), "anything")
	assert.Error(t, err)
}
