package articles

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
	<title>  Flood Warnings Issued Across the Region </title>
	<meta property="og:image" content="https://cdn.example.com/flood.jpg">
</head>
<body>
	<nav><p>Home | Politics | Sport</p></nav>
	<article>
		<p>Heavy rainfall has triggered flood warnings in several districts.</p>
		<p>Officials urged residents to avoid riverbanks until water levels recede.</p>
	</article>
	<footer><p>Subscribe to our newsletter</p></footer>
	<script>console.log("tracker");</script>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	extractor := NewExtractor()
	article, err := extractor.Extract(context.Background(), server.URL+"/news/flood-warnings")
	require.NoError(t, err)

	assert.Equal(t, "Flood Warnings Issued Across the Region", article.Title)
	assert.Contains(t, article.Content, "Heavy rainfall has triggered flood warnings")
	assert.Contains(t, article.Content, "Officials urged residents")
	assert.NotContains(t, article.Content, "Subscribe to our newsletter")
	assert.NotContains(t, article.Content, "Home | Politics")
	assert.Equal(t, "https://cdn.example.com/flood.jpg", article.ImageURL)
	assert.True(t, strings.HasSuffix(article.Description, "..."))
	assert.Equal(t, "Unknown Source", article.SourceInfo.Name)
}

func TestExtractor_ExtractErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := NewExtractor().Extract(context.Background(), server.URL)
		assert.Error(t, err)
	})

	t.Run("empty body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()

		_, err := NewExtractor().Extract(context.Background(), server.URL)
		assert.Error(t, err)
	})

	t.Run("unreachable host", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := NewExtractor().Extract(context.Background(), server.URL)
		assert.Error(t, err)
	})
}

func TestExtractor_ExtractTop(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	extractor := NewExtractor()

	t.Run("skips failures and respects the limit", func(t *testing.T) {
		urls := []string{good.URL + "/a", bad.URL + "/b", good.URL + "/c", good.URL + "/never-reached"}
		articles := extractor.ExtractTop(context.Background(), urls, 3)

		require.Len(t, articles, 2)
		assert.Equal(t, good.URL+"/a", articles[0].URL)
		assert.Equal(t, good.URL+"/c", articles[1].URL)
	})

	t.Run("empty url list", func(t *testing.T) {
		assert.Empty(t, extractor.ExtractTop(context.Background(), nil, 3))
	})
}

func TestExtractText_LongContentDescription(t *testing.T) {
	long := strings.Repeat("word ", 120)
	page := `<html><head><title>t</title></head><body><article><p>` + long + `</p></article></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	article, err := NewExtractor().Extract(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Len(t, []rune(article.Description), 303)
	assert.True(t, strings.HasSuffix(article.Description, "..."))
}

func TestSourceDomain(t *testing.T) {
	assert.Equal(t, "bbc.com", sourceDomain("https://www.bbc.com/news/articles/x"))
	assert.Equal(t, "thehindu.com", sourceDomain("https://thehindu.com/news/national/story.ece"))
	assert.Equal(t, "127.0.0.1", sourceDomain("http://127.0.0.1:8080/page"))
}
