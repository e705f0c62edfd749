package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"homefinder/internal/models"
	"homefinder/internal/search"
)

func newFakeAPI(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, New(srv.URL)
}

func TestSearchProperties(t *testing.T) {
	_, c := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/properties" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("city") != "Ottawa" {
			t.Errorf("city = %q", r.URL.Query().Get("city"))
		}
		json.NewEncoder(w).Encode(search.Page{
			Data:       []models.Property{{ID: "p1"}},
			Total:      1,
			Page:       1,
			Limit:      12,
			TotalPages: 1,
		})
	})

	page, err := c.SearchProperties(context.Background(), url.Values{"city": {"Ottawa"}})
	if err != nil {
		t.Fatalf("SearchProperties() error = %v", err)
	}
	if page.Total != 1 || page.Data[0].ID != "p1" {
		t.Errorf("page = %+v", page)
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	_, c := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid min_price"})
	})

	_, err := c.SearchProperties(context.Background(), nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "Invalid min_price" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestMapSearchSendsBounds(t *testing.T) {
	_, c := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("north") != "46" || q.Get("west") != "-76.5" {
			t.Errorf("bounds query = %v", q)
		}
		json.NewEncoder(w).Encode(MapResult{Data: []models.Property{{ID: "p1"}}, Total: 1})
	})

	result, err := c.MapSearch(context.Background(), search.Bounds{North: 46, South: 45, East: -75, West: -76.5}, nil)
	if err != nil {
		t.Fatalf("MapSearch() error = %v", err)
	}
	if result.Total != 1 {
		t.Errorf("total = %d", result.Total)
	}
}

func TestMapWatcherDebounces(t *testing.T) {
	var calls atomic.Int64
	_, c := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(MapResult{})
	})

	var mu sync.Mutex
	var results int
	w := NewMapWatcher(c, func(*MapResult, error) {
		mu.Lock()
		results++
		mu.Unlock()
	})
	w.SetDebounce(30 * time.Millisecond)

	// A burst of viewport updates collapses into one fetch.
	for i := 0; i < 10; i++ {
		w.Update(context.Background(), search.Bounds{North: float64(46 + i)})
		time.Sleep(2 * time.Millisecond)
	}
	time.Sleep(150 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("API calls = %d, want 1", got)
	}
	mu.Lock()
	defer mu.Unlock()
	if results != 1 {
		t.Errorf("delivered results = %d, want 1", results)
	}
}

func TestMapWatcherDropsStaleResponses(t *testing.T) {
	release := make(chan struct{})
	var firstRequest atomic.Bool
	_, c := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		// The first request stalls until a newer viewport has fired.
		if firstRequest.CompareAndSwap(false, true) {
			<-release
		}
		json.NewEncoder(w).Encode(MapResult{Total: 1})
	})

	var mu sync.Mutex
	var deliveries int
	w := NewMapWatcher(c, func(*MapResult, error) {
		mu.Lock()
		deliveries++
		mu.Unlock()
	})
	w.SetDebounce(5 * time.Millisecond)

	w.Update(context.Background(), search.Bounds{North: 46})
	time.Sleep(30 * time.Millisecond) // first fetch is now in flight, blocked

	w.Update(context.Background(), search.Bounds{North: 47})
	close(release)
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if deliveries != 1 {
		t.Errorf("deliveries = %d, want 1 (stale response dropped)", deliveries)
	}
}

func TestMapWatcherStop(t *testing.T) {
	var calls atomic.Int64
	_, c := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(MapResult{})
	})

	w := NewMapWatcher(c, func(*MapResult, error) {})
	w.SetDebounce(20 * time.Millisecond)
	w.Update(context.Background(), search.Bounds{North: 46})
	w.Stop()
	time.Sleep(60 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("API calls after Stop = %d, want 0", got)
	}
}
