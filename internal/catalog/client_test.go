package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchByHandleSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/crew-shirt.js" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(flatDocument))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, time.Second, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	product, err := client.FetchByHandle(context.Background(), "crew-shirt")
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}
	if product.Title != "Crew Shirt" {
		t.Fatalf("unexpected title %q", product.Title)
	}
}

func TestFetchByHandleNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, time.Second, nil)
	_, err := client.FetchByHandle(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchByHandleMalformedBodyIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title": ""}`))
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, time.Second, nil)
	_, err := client.FetchByHandle(context.Background(), "broken")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for malformed document, got %v", err)
	}
}

func TestFetchByHandleTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client, _ := NewClient(server.URL, time.Second, nil)
	_, err := client.FetchByHandle(context.Background(), "crew-shirt")
	if !IsTransport(err) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestFetchByHandleEmptyHandle(t *testing.T) {
	client, _ := NewClient("https://shop.example.com", time.Second, nil)
	_, err := client.FetchByHandle(context.Background(), "  ")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty handle, got %v", err)
	}
}

type fakeCache struct {
	entries map[string]string
	sets    int
}

var errCacheMiss = errors.New("miss")

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if v, ok := f.entries[key]; ok {
		return v, nil
	}
	return "", errCacheMiss
}

func (f *fakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.entries[key] = value.(string)
	f.sets++
	return nil
}

func (f *fakeCache) ProductKey(handle string) string {
	return "product:" + handle
}

func TestFetchByHandleReadThroughCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(flatDocument))
	}))
	defer server.Close()

	store := &fakeCache{entries: map[string]string{}}
	client, _ := NewClient(server.URL, time.Second, nil,
		WithCache(store, 5*time.Minute, func(err error) bool { return errors.Is(err, errCacheMiss) }))

	for i := 0; i < 3; i++ {
		if _, err := client.FetchByHandle(context.Background(), "crew-shirt"); err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}

	if hits != 1 {
		t.Fatalf("expected a single upstream hit, got %d", hits)
	}
	if store.sets != 1 {
		t.Fatalf("expected a single cache write, got %d", store.sets)
	}
}

func TestFetchByHandleCorruptCacheFallsThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(flatDocument))
	}))
	defer server.Close()

	store := &fakeCache{entries: map[string]string{"product:crew-shirt": "not json"}}
	client, _ := NewClient(server.URL, time.Second, nil,
		WithCache(store, 5*time.Minute, func(err error) bool { return errors.Is(err, errCacheMiss) }))

	product, err := client.FetchByHandle(context.Background(), "crew-shirt")
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}
	if product.Title != "Crew Shirt" {
		t.Fatalf("unexpected title %q", product.Title)
	}
}
