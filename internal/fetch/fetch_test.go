package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestBytesWithTimeout_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != DefaultUserAgent {
			t.Errorf("User-Agent = %q; want %q", got, DefaultUserAgent)
		}
		w.Write([]byte("hello body"))
	}))
	defer srv.Close()

	data, err := BytesWithTimeout(context.Background(), srv.URL, 5*time.Second, 0)
	if err != nil {
		t.Fatalf("BytesWithTimeout: %v", err)
	}
	if string(data) != "hello body" {
		t.Errorf("body = %q", data)
	}
}

func TestBytesWithTimeout_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := BytesWithTimeout(context.Background(), srv.URL, 5*time.Second, 0)
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("attendu ErrStatus, obtenu %v", err)
	}
}

func TestBytesWithTimeout_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer srv.Close()

	_, err := BytesWithTimeout(context.Background(), srv.URL, 5*time.Second, 10)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("attendu ErrTooLarge, obtenu %v", err)
	}
}

func TestBytesWithTimeout_InvalidURL(t *testing.T) {
	if _, err := BytesWithTimeout(context.Background(), "not a url", 0, 0); err == nil {
		t.Fatal("URL invalide acceptée")
	}
}

func TestJSONInto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"2026.01.01","name":"release"}`))
	}))
	defer srv.Close()

	var dst struct {
		TagName string `json:"tag_name"`
	}
	if err := JSONInto(context.Background(), srv.URL, 5*time.Second, 0, &dst); err != nil {
		t.Fatalf("JSONInto: %v", err)
	}
	if dst.TagName != "2026.01.01" {
		t.Errorf("TagName = %q", dst.TagName)
	}
}

func TestJSONInto_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"field":"` + strings.Repeat("a", 200) + `"}`))
	}))
	defer srv.Close()

	var dst map[string]string
	err := JSONInto(context.Background(), srv.URL, 5*time.Second, 50, &dst)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("attendu ErrTooLarge, obtenu %v", err)
	}
}
