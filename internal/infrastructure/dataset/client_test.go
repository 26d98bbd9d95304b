package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	crerr "github.com/cockroachdb/errors"
)

const sampleCSV = "Player,Draft_Yr\nMichael Jordan,1984\n"

func TestFetchRaw_PrefersCacheFile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("network must not be hit when the cache file exists")
	}))
	defer server.Close()

	cachePath := filepath.Join(t.TempDir(), "nba.data")
	if err := os.WriteFile(cachePath, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write cache: %v", err)
	}

	client := NewClient(ClientConfig{URL: server.URL, CachePath: cachePath})
	raw, err := client.FetchRaw(context.Background())
	if err != nil {
		t.Fatalf("fetch raw: %v", err)
	}
	if raw != sampleCSV {
		t.Fatalf("unexpected body: %q", raw)
	}
}

func TestFetchRaw_FallsBackToNetwork(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		URL:       server.URL,
		CachePath: filepath.Join(t.TempDir(), "missing.data"),
	})
	raw, err := client.FetchRaw(context.Background())
	if err != nil {
		t.Fatalf("fetch raw: %v", err)
	}
	if raw != sampleCSV {
		t.Fatalf("unexpected body: %q", raw)
	}
}

func TestFetchRaw_NonOKStatusIsUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{URL: server.URL})
	_, err := client.FetchRaw(context.Background())
	if err == nil {
		t.Fatalf("expected error for non-200 status")
	}
	if !crerr.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFetchRaw_NoCacheNoNetwork(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(ClientConfig{
		URL:       server.URL,
		CachePath: filepath.Join(t.TempDir(), "missing.data"),
	})
	_, err := client.FetchRaw(context.Background())
	if !crerr.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
