package common

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDefaultRetryConfig_SingleAttempt(t *testing.T) {
	config := DefaultRetryConfig()

	if config.RetryMax != 0 {
		t.Errorf("Expected RetryMax 0, got %d", config.RetryMax)
	}
	if config.CheckRetry == nil {
		t.Error("Expected CheckRetry to be set")
	}
}

func TestWithMaxRetries(t *testing.T) {
	if got := DefaultRetryConfig().WithMaxRetries(3).RetryMax; got != 3 {
		t.Errorf("Expected RetryMax 3, got %d", got)
	}
	if got := DefaultRetryConfig().WithMaxRetries(-1).RetryMax; got != 0 {
		t.Errorf("Expected negative retries to clamp to 0, got %d", got)
	}
}

func TestNewRetryableClient_Retries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	config := DefaultRetryConfig().WithMaxRetries(1)
	config.RetryWaitMin = time.Millisecond
	config.RetryWaitMax = time.Millisecond

	resp, err := NewRetryableClient(config).StandardClient().Get(server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("Expected 2 calls, got %d", got)
	}
}

func TestNewRetryableClient_NoRetryByDefault(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	resp, err := NewRetryableClient(DefaultRetryConfig()).StandardClient().Get(server.URL)
	if err != nil {
		t.Fatalf("Expected the final response to be passed through, got %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", resp.StatusCode)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("Expected a single call, got %d", got)
	}
}
