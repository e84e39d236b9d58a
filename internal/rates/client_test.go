package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
)

func rateServer(t *testing.T, rate30, rate15 string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/rates/"+series30Year, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"series":"` + series30Year + `","ratePercent":` + rate30 + `}`))
	})
	mux.HandleFunc("/rates/"+series15Year, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"series":"` + series15Year + `","ratePercent":` + rate15 + `}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClientFetch(t *testing.T) {
	server := rateServer(t, "6.875", "6.125")
	client := NewClient(nil, WithBaseURL(server.URL), WithAPIKey("test-key"))

	quote := client.Fetch(context.Background())

	if quote.Estimated {
		t.Errorf("Estimated = true, expected a live quote")
	}
	if quote.Rate30Year != 6.875 {
		t.Errorf("Rate30Year = %.3f, expected 6.875", quote.Rate30Year)
	}
	if quote.Rate15Year != 6.125 {
		t.Errorf("Rate15Year = %.3f, expected 6.125", quote.Rate15Year)
	}
	if quote.AsOf.IsZero() {
		t.Errorf("AsOf is zero, expected a timestamp")
	}
}

func TestClientFetchNoKeyFallsBack(t *testing.T) {
	server := rateServer(t, "6.875", "6.125")
	client := NewClient(nil, WithBaseURL(server.URL), WithAPIKey(""))

	quote := client.Fetch(context.Background())

	if !quote.Estimated {
		t.Errorf("Estimated = false, expected fallback without an API key")
	}
	if quote.Rate30Year != constants.FallbackRate30Year {
		t.Errorf("Rate30Year = %.2f, expected fallback %.2f", quote.Rate30Year, constants.FallbackRate30Year)
	}
}

func TestClientFetchServerErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	client := NewClient(nil, WithBaseURL(server.URL), WithAPIKey("test-key"))

	quote := client.Fetch(context.Background())

	if !quote.Estimated {
		t.Errorf("Estimated = false, expected fallback on server error")
	}
}

func TestClientFetchMalformedBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()
	client := NewClient(nil, WithBaseURL(server.URL), WithAPIKey("test-key"))

	quote := client.Fetch(context.Background())

	if !quote.Estimated {
		t.Errorf("Estimated = false, expected fallback on malformed body")
	}
}

func TestClientCurrentUsesCache(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/rates/", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"series":"any","ratePercent":6.5}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(nil,
		WithBaseURL(server.URL),
		WithAPIKey("test-key"),
		WithCache(NewMemoryCache(), time.Minute),
	)

	first := client.Current(context.Background())
	second := client.Current(context.Background())

	if calls != 2 {
		t.Errorf("API calls = %d, expected 2 (one per series, once)", calls)
	}
	if second != first {
		t.Errorf("second quote %+v differs from cached %+v", second, first)
	}
}

func TestClientCurrentDoesNotCacheFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cache := NewMemoryCache()
	client := NewClient(nil,
		WithBaseURL(server.URL),
		WithAPIKey("test-key"),
		WithCache(cache, time.Minute),
	)

	quote := client.Current(context.Background())
	if !quote.Estimated {
		t.Fatalf("Estimated = false, expected fallback")
	}
	if _, ok := cache.Get(context.Background(), cacheKey); ok {
		t.Errorf("fallback quote was cached; only live quotes should be")
	}
}
