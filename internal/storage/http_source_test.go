package storage

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestHTTPSource_FetchBytes(t *testing.T) {
	payload := []byte("fake-image-bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer server.Close()

	source := NewHTTPSource(5*time.Second, 1024)
	data, err := source.FetchBytes(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchBytes failed: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("Expected %q, got %q", payload, data)
	}
}

func TestHTTPSource_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source := NewHTTPSource(5*time.Second, 1024)
	if _, err := source.FetchBytes(context.Background(), server.URL); err == nil {
		t.Fatal("Expected error for 404 response")
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("Expected exactly 1 request for a 4xx response, got %d", n)
	}
}

func TestHTTPSource_ServerErrorRetried(t *testing.T) {
	var calls int32
	payload := []byte("eventually-ok")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write(payload)
	}))
	defer server.Close()

	source := NewHTTPSource(5*time.Second, 1024)
	data, err := source.FetchBytes(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchBytes failed after retries: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("Expected %q, got %q", payload, data)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("Expected 3 attempts, got %d", n)
	}
}

func TestHTTPSource_OversizedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(bytes.Repeat([]byte{0xAB}, 2048))
	}))
	defer server.Close()

	source := NewHTTPSource(5*time.Second, 1024)
	_, err := source.FetchBytes(context.Background(), server.URL)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("Expected ErrTooLarge, got %v", err)
	}
}

func TestHTTPSource_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := NewHTTPSource(5*time.Second, 1024)
	if _, err := source.FetchBytes(ctx, server.URL); err == nil {
		t.Error("Expected error with cancelled context")
	}
}
