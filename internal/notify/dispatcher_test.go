package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// flakyFunction fails the first failures requests with a 500, then
// accepts everything. It records each decoded payload it sees.
func flakyFunction(t *testing.T, failures int) (*httptest.Server, *[]Payload) {
	t.Helper()
	var seen []Payload
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p Payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("Bad payload: %v", err)
		}
		seen = append(seen, p)
		calls++
		if calls <= failures {
			http.Error(w, "smtp upstream unavailable", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func testDispatcher(url string) (*Dispatcher, *[]time.Duration) {
	d := NewDispatcher(url)
	var slept []time.Duration
	d.sleep = func(delay time.Duration) { slept = append(slept, delay) }
	return d, &slept
}

func TestDispatchSucceedsFirstAttempt(t *testing.T) {
	srv, seen := flakyFunction(t, 0)
	d, slept := testDispatcher(srv.URL)

	err := d.Dispatch(context.Background(), Payload{FormType: "quote", FullName: "Jane"})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if len(*seen) != 1 {
		t.Errorf("Expected 1 delivery attempt, got %d", len(*seen))
	}
	if len(*slept) != 0 {
		t.Errorf("Should not sleep when the first attempt succeeds, slept %v", *slept)
	}
}

func TestDispatchRecoversOnThirdAttempt(t *testing.T) {
	srv, seen := flakyFunction(t, 2)
	d, slept := testDispatcher(srv.URL)

	err := d.Dispatch(context.Background(), Payload{FormType: "contact", Subject: "Storage"})
	if err != nil {
		t.Fatalf("Dispatch should succeed on attempt 3: %v", err)
	}
	if len(*seen) != 3 {
		t.Errorf("Expected 3 delivery attempts, got %d", len(*seen))
	}
	// Linear backoff: 1s after attempt 1, 2s after attempt 2
	want := []time.Duration{time.Second, 2 * time.Second}
	if len(*slept) != len(want) {
		t.Fatalf("Expected sleeps %v, got %v", want, *slept)
	}
	for i, delay := range want {
		if (*slept)[i] != delay {
			t.Errorf("Sleep %d: expected %v, got %v", i, delay, (*slept)[i])
		}
	}
	if (*seen)[2].Subject != "Storage" {
		t.Errorf("Payload should be identical across retries")
	}
}

func TestDispatchGivesUpAfterThreeAttempts(t *testing.T) {
	srv, seen := flakyFunction(t, 10)
	d, slept := testDispatcher(srv.URL)

	err := d.Dispatch(context.Background(), Payload{FormType: "quote"})
	if err == nil {
		t.Fatal("Dispatch should report failure after exhausting retries")
	}
	if len(*seen) != 3 {
		t.Errorf("Expected exactly 3 attempts, got %d", len(*seen))
	}
	if len(*slept) != 2 {
		t.Errorf("Expected 2 sleeps, got %d", len(*slept))
	}
}

func TestDispatchTransportErrorRetries(t *testing.T) {
	// Point at a closed server so every attempt fails at the transport level.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	d, slept := testDispatcher(url)
	if err := d.Dispatch(context.Background(), Payload{}); err == nil {
		t.Fatal("Dispatch to unreachable endpoint should fail")
	}
	if len(*slept) != 2 {
		t.Errorf("Expected 2 sleeps before giving up, got %d", len(*slept))
	}
}
