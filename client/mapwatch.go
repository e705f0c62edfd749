package client

import (
	"context"
	"net/url"
	"sync"
	"time"

	"homefinder/internal/search"
)

const defaultDebounce = 300 * time.Millisecond

// MapWatcher turns a stream of viewport changes into map queries. Pan and
// zoom events arrive far faster than the API should be hit, so updates are
// debounced, and a generation counter drops responses that were overtaken
// by a newer viewport before they arrived.
type MapWatcher struct {
	client   *Client
	debounce time.Duration
	filters  url.Values
	onResult func(*MapResult, error)

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
}

// NewMapWatcher creates a watcher delivering results to onResult. The
// callback runs on the fetch goroutine and never concurrently for results
// of the same generation.
func NewMapWatcher(c *Client, onResult func(*MapResult, error)) *MapWatcher {
	return &MapWatcher{
		client:   c,
		debounce: defaultDebounce,
		onResult: onResult,
	}
}

// SetDebounce overrides the debounce interval. Tests shorten it.
func (w *MapWatcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// SetFilters sets extra query parameters sent with every viewport fetch.
func (w *MapWatcher) SetFilters(filters url.Values) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.filters = filters
}

// Update registers a new viewport. The fetch fires once the viewport has
// been stable for the debounce interval; intermediate viewports are never
// queried.
func (w *MapWatcher) Update(ctx context.Context, bounds search.Bounds) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.gen++
	gen := w.gen
	filters := w.filters

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.fetch(ctx, gen, bounds, filters)
	})
}

// Stop cancels any pending fetch.
func (w *MapWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++
}

func (w *MapWatcher) fetch(ctx context.Context, gen uint64, bounds search.Bounds, filters url.Values) {
	if w.stale(gen) {
		return
	}
	result, err := w.client.MapSearch(ctx, bounds, filters)
	// A newer viewport may have fired while this request was in flight.
	if w.stale(gen) {
		return
	}
	w.onResult(result, err)
}

func (w *MapWatcher) stale(gen uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return gen != w.gen
}
