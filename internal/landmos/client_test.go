package landmos

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stations/data_by_stat_code" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("stat_code"); got != "CMUA" {
			t.Errorf("expected stat_code=CMUA, got %q", got)
		}
		if got := r.URL.Query().Get("start_date"); got != "2024-01-01" {
			t.Errorf("expected start_date forwarded, got %q", got)
		}
		w.Write([]byte(`[{"timestamp":"t1","de":0.1}]`))
	}))
	defer srv.Close()

	c := NewClient(log.Default(), srv.URL, time.Second)
	ds, err := c.Fetch(context.Background(), Query{StatCode: "CMUA", StartDate: "2024-01-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(ds.Records))
	}
}

func TestFetchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "station not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(log.Default(), srv.URL, time.Second)
	_, err := c.Fetch(context.Background(), Query{StatCode: "NOPE"})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", upstream.Status)
	}
}

func TestFetchUpstreamErrorDetailTruncatesRuneSafe(t *testing.T) {
	long := strings.Repeat("สถานีผิดพลาด", 40) // 480 characters, 3 bytes each
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(long))
	}))
	defer srv.Close()

	c := NewClient(log.Default(), srv.URL, time.Second)
	_, err := c.Fetch(context.Background(), Query{StatCode: "CMUA"})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if !utf8.ValidString(upstream.Detail) {
		t.Error("truncated detail must be valid UTF-8")
	}
	if want := string([]rune(long)[:300]); upstream.Detail != want {
		t.Errorf("expected 300 characters of detail, got %d", utf8.RuneCountInString(upstream.Detail))
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(log.Default(), srv.URL, 20*time.Millisecond)
	_, err := c.Fetch(context.Background(), Query{StatCode: "CMUA"})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestFetchUnreachable(t *testing.T) {
	// Reserve a port and close the listener so the address refuses connections.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c := NewClient(log.Default(), addr, time.Second)
	_, err := c.Fetch(context.Background(), Query{StatCode: "CMUA"})
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
}
