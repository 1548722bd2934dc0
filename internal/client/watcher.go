package client

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	debounceInterval = 500 * time.Millisecond
	minWatchLength   = 10
)

// LanguageWatcher debounces language detection while the user types. Every
// input resets the single pending timer, so only the last text within the
// window is looked up, and lookups that resolve after newer input are
// dropped instead of overwriting the label.
type LanguageWatcher struct {
	api      *Client
	onUpdate func(name string)
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewLanguageWatcher creates a watcher that calls onUpdate with the detected
// language name
func NewLanguageWatcher(api *Client, onUpdate func(name string)) *LanguageWatcher {
	return &LanguageWatcher{
		api:      api,
		onUpdate: onUpdate,
		interval: debounceInterval,
	}
}

// Input registers the current text. Texts shorter than the watch threshold
// cancel any pending lookup without scheduling a new one.
func (w *LanguageWatcher) Input(text string) {
	trimmed := strings.TrimSpace(text)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++

	if utf8.RuneCountInString(trimmed) < minWatchLength {
		return
	}

	gen := w.gen
	w.timer = time.AfterFunc(w.interval, func() {
		w.detect(gen, trimmed)
	})
}

// Stop cancels any pending lookup and invalidates in-flight ones
func (w *LanguageWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++
}

// detect runs the lookup and reports the result unless newer input arrived
// while it was in flight. Failures degrade to an Unknown label.
func (w *LanguageWatcher) detect(gen uint64, text string) {
	name := "Unknown"
	if info, err := w.api.DetectLanguage(context.Background(), text); err == nil && info.Name != "" {
		name = info.Name
	}

	w.mu.Lock()
	stale := gen != w.gen
	w.mu.Unlock()
	if stale {
		return
	}

	w.onUpdate(name)
}
