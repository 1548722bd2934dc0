package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsguard/newsguard/internal/view"
)

const validText = "a long enough news passage for the verifier to accept"

func verifyHandler(calls *atomic.Int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		w.Write([]byte(`{"credibility_score": 60, "verdict": "Needs Verification", "summary": "s", "claims": [], "red_flags": [], "recommendations": []}`))
	}
}

func TestTextFlow_Submit(t *testing.T) {
	t.Run("short input sends no request", func(t *testing.T) {
		var calls atomic.Int64
		server := httptest.NewServer(verifyHandler(&calls))
		defer server.Close()

		flow := NewTextFlow(New(server.URL))
		_, err := flow.Submit(context.Background(), "  too short  ")

		assert.ErrorIs(t, err, ErrTextTooShort)
		assert.Equal(t, int64(0), calls.Load())
		assert.False(t, flow.Busy())
	})

	t.Run("length is counted in characters not bytes", func(t *testing.T) {
		var calls atomic.Int64
		server := httptest.NewServer(verifyHandler(&calls))
		defer server.Close()

		flow := NewTextFlow(New(server.URL))
		// 19 Devanagari characters occupy 57 bytes but still fail validation
		_, err := flow.Submit(context.Background(), strings.Repeat("न", 19))

		assert.ErrorIs(t, err, ErrTextTooShort)
		assert.Equal(t, int64(0), calls.Load())
	})

	t.Run("successful submit projects the view", func(t *testing.T) {
		server := httptest.NewServer(verifyHandler(nil))
		defer server.Close()

		flow := NewTextFlow(New(server.URL))
		v, err := flow.Submit(context.Background(), validText)
		require.NoError(t, err)

		assert.Equal(t, view.BadgeNeutral, v.Badge.Kind)
		assert.Equal(t, 60, v.Score)
		assert.Equal(t, []string{view.DefaultRecommendation}, v.Recommendations)
		assert.False(t, flow.Busy())
	})

	t.Run("busy clears after a failed call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "verification backend down"}`))
		}))
		defer server.Close()

		flow := NewTextFlow(New(server.URL))
		_, err := flow.Submit(context.Background(), validText)

		assert.EqualError(t, err, "verification backend down")
		assert.False(t, flow.Busy())
	})

	t.Run("second submit while one is pending is rejected", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
			verifyHandler(nil)(w, r)
		}))
		defer server.Close()

		flow := NewTextFlow(New(server.URL))

		done := make(chan error, 1)
		go func() {
			_, err := flow.Submit(context.Background(), validText)
			done <- err
		}()

		require.Eventually(t, flow.Busy, time.Second, 5*time.Millisecond)

		_, err := flow.Submit(context.Background(), validText)
		assert.ErrorIs(t, err, ErrBusy)

		close(release)
		require.NoError(t, <-done)
		assert.False(t, flow.Busy())
	})
}

func TestNewSelection(t *testing.T) {
	t.Run("accepts allowed types", func(t *testing.T) {
		for _, mime := range []string{"image/png", "image/jpeg", "image/jpg", "image/gif", "image/webp", "IMAGE/PNG"} {
			sel, err := NewSelection("pic", mime, []byte("data"))
			require.NoError(t, err, mime)
			assert.Equal(t, []byte("data"), sel.Data)
		}
	})

	t.Run("rejects other types", func(t *testing.T) {
		_, err := NewSelection("doc.pdf", "application/pdf", []byte("data"))
		assert.ErrorIs(t, err, ErrUnsupportedType)

		_, err = NewSelection("clip.mp4", "video/mp4", []byte("data"))
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		_, err := NewSelection("big.png", "image/png", make([]byte, maxImageSize+1))
		assert.ErrorIs(t, err, ErrImageTooLarge)
	})

	t.Run("a failed pick leaves the previous selection usable", func(t *testing.T) {
		previous, err := NewSelection("ok.png", "image/png", []byte("good"))
		require.NoError(t, err)

		_, err = NewSelection("bad.pdf", "application/pdf", []byte("bad"))
		require.Error(t, err)

		assert.Equal(t, "ok.png", previous.Filename)
		assert.Equal(t, []byte("good"), previous.Data)
	})
}

func TestImageFlow_Analyze(t *testing.T) {
	detectResponse := `{
		"is_ai_generated": false,
		"confidence": 70,
		"status": "Real",
		"reasons": [],
		"artifacts": [],
		"artifacts_detected": false,
		"detection_method": "SightEngine AI"
	}`

	t.Run("missing selection sends no request", func(t *testing.T) {
		var calls atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		flow := NewImageFlow(New(server.URL))
		_, err := flow.Analyze(context.Background(), Selection{})

		assert.ErrorIs(t, err, ErrNoSelection)
		assert.Equal(t, int64(0), calls.Load())
	})

	t.Run("successful analysis projects the view", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(detectResponse))
		}))
		defer server.Close()

		sel, err := NewSelection("photo.png", "image/png", []byte("image data"))
		require.NoError(t, err)

		flow := NewImageFlow(New(server.URL))
		v, err := flow.Analyze(context.Background(), sel)
		require.NoError(t, err)

		assert.Equal(t, view.BadgePositive, v.Badge.Kind)
		assert.Equal(t, []string{view.ReasonsPlaceholder}, v.Reasons)
		assert.True(t, v.ArtifactsEmpty)
		assert.False(t, flow.Busy())
	})

	t.Run("busy clears after a failed call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "Failed to process image"}`))
		}))
		defer server.Close()

		sel, err := NewSelection("photo.png", "image/png", []byte("image data"))
		require.NoError(t, err)

		flow := NewImageFlow(New(server.URL))
		_, err = flow.Analyze(context.Background(), sel)

		assert.EqualError(t, err, "Failed to process image")
		assert.False(t, flow.Busy())
	})
}

func TestAuthenticityFlow_Compare(t *testing.T) {
	t.Run("successful comparison projects the view", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"authenticity_score": 55,
				"key_findings": ["partial match"],
				"differences": ["dates differ"],
				"supporting_evidence": [],
				"score_breakdown": {"factual_accuracy": 20, "source_consistency": 15, "detail_accuracy": 12, "context_accuracy": 8},
				"claims_analysis": [],
				"bias_detection": {"detected": true, "type": "sensational", "indicators": ["loaded words"]},
				"emotional_manipulation": {"detected": false, "tactics": [], "examples": []},
				"sensational_tone": {"detected": false, "score": 0, "indicators": []}
			}`))
		}))
		defer server.Close()

		flow := NewAuthenticityFlow(New(server.URL))
		v, err := flow.Compare(context.Background(), "original text", []string{"article one", "article two"})
		require.NoError(t, err)

		assert.Equal(t, 55, v.Score)
		assert.True(t, v.ShowBias)
		assert.Equal(t, "sensational", v.Bias.Type)
		assert.False(t, v.ShowManipulation)
		assert.False(t, flow.Busy())
	})

	t.Run("busy clears after a failed call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		flow := NewAuthenticityFlow(New(server.URL))
		_, err := flow.Compare(context.Background(), "original", []string{"content"})

		assert.Error(t, err)
		assert.False(t, flow.Busy())
	})
}

func TestLanguageWatcher(t *testing.T) {
	langHandler := func(calls *atomic.Int64, lastText *atomic.Value) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			if lastText != nil {
				var req struct {
					Text string `json:"text"`
				}
				_ = json.NewDecoder(r.Body).Decode(&req)
				lastText.Store(req.Text)
			}
			w.Write([]byte(`{"language_code": "mr", "language_name": "Marathi", "supported": true}`))
		}
	}

	t.Run("rapid inputs collapse into one lookup of the last text", func(t *testing.T) {
		var calls atomic.Int64
		var lastText atomic.Value
		server := httptest.NewServer(langHandler(&calls, &lastText))
		defer server.Close()

		updates := make(chan string, 4)
		watcher := NewLanguageWatcher(New(server.URL), func(name string) { updates <- name })
		watcher.interval = 20 * time.Millisecond

		watcher.Input("ही पहिली ओळ आहे")
		watcher.Input("ही दुसरी ओळ आहे")
		watcher.Input("ही शेवटची ओळ आहे")

		select {
		case name := <-updates:
			assert.Equal(t, "Marathi", name)
		case <-time.After(time.Second):
			t.Fatal("expected a language update")
		}

		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, int64(1), calls.Load())
		assert.Equal(t, "ही शेवटची ओळ आहे", lastText.Load())
	})

	t.Run("short input cancels the pending lookup", func(t *testing.T) {
		var calls atomic.Int64
		server := httptest.NewServer(langHandler(&calls, nil))
		defer server.Close()

		watcher := NewLanguageWatcher(New(server.URL), func(string) {})
		watcher.interval = 20 * time.Millisecond

		watcher.Input("a long enough passage of text")
		watcher.Input("short")

		time.Sleep(80 * time.Millisecond)
		assert.Equal(t, int64(0), calls.Load())
	})

	t.Run("failures degrade to unknown", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		updates := make(chan string, 1)
		watcher := NewLanguageWatcher(New(server.URL), func(name string) { updates <- name })
		watcher.interval = 20 * time.Millisecond

		watcher.Input("a long enough passage of text")

		select {
		case name := <-updates:
			assert.Equal(t, "Unknown", name)
		case <-time.After(time.Second):
			t.Fatal("expected a degraded update")
		}
	})

	t.Run("stop cancels the pending lookup", func(t *testing.T) {
		var calls atomic.Int64
		server := httptest.NewServer(langHandler(&calls, nil))
		defer server.Close()

		watcher := NewLanguageWatcher(New(server.URL), func(string) {})
		watcher.interval = 20 * time.Millisecond

		watcher.Input("a long enough passage of text")
		watcher.Stop()

		time.Sleep(80 * time.Millisecond)
		assert.Equal(t, int64(0), calls.Load())
	})
}
