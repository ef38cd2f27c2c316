package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

type rejectCounter struct {
	mu     sync.Mutex
	scopes map[string]int
}

func (c *rejectCounter) RateLimited(scope string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scopes[scope]++
}

func TestIPRateLimiter_PerAddressBuckets(t *testing.T) {
	limiter := NewIPRateLimiter("auth", 10, 20)

	a := limiter.GetLimiter("192.168.1.1")
	if a != limiter.GetLimiter("192.168.1.1") {
		t.Error("Expected same bucket for same address")
	}
	if a == limiter.GetLimiter("192.168.1.2") {
		t.Error("Expected separate bucket per address")
	}
}

func TestIPRateLimiter_Burst(t *testing.T) {
	tests := []struct {
		name    string
		burst   int
		allowed int
	}{
		{"burst of one", 1, 1},
		{"burst of two", 2, 2},
		{"sign-in burst", 5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			limiter := NewIPRateLimiter("auth", 1, tc.burst)
			got := 0
			for i := 0; i < tc.burst+3; i++ {
				if limiter.Allow("10.0.0.1") {
					got++
				}
			}
			if got != tc.allowed {
				t.Errorf("Expected %d allowed, got %d", tc.allowed, got)
			}
		})
	}
}

func TestIPRateLimiter_Refill(t *testing.T) {
	limiter := NewIPRateLimiter("ws", rate.Limit(10), 1)

	limiter.Allow("10.0.0.1")
	if limiter.Allow("10.0.0.1") {
		t.Error("Immediate second request should be denied")
	}

	time.Sleep(150 * time.Millisecond)

	if !limiter.Allow("10.0.0.1") {
		t.Error("Request after refill should be allowed")
	}
}

func TestIPRateLimiter_ObserverGetsScope(t *testing.T) {
	counter := &rejectCounter{scopes: map[string]int{}}
	limiter := NewIPRateLimiter("ws", 1, 1)
	limiter.SetObserver(counter)

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.1")

	if counter.scopes["ws"] != 2 {
		t.Errorf("Expected 2 rejections under ws, got %v", counter.scopes)
	}
}

func TestIPRateLimiter_Concurrency(t *testing.T) {
	limiter := NewIPRateLimiter("auth", 100, 100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter.Allow("192.168.1.1")
		}()
	}
	wg.Wait()

	if got := len(limiter.limiters); got != 1 {
		t.Errorf("Expected 1 tracked address, got %d", got)
	}
}

func TestRateLimit_RetryAfter(t *testing.T) {
	tests := []struct {
		limit    rate.Limit
		expected string
	}{
		{2, "1"},
		{0.25, "4"},
	}

	for _, tc := range tests {
		limiter := NewIPRateLimiter("auth", tc.limit, 1)
		handler := RateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		req := httptest.NewRequest(http.MethodPost, "/auth/signin", nil)
		req.RemoteAddr = "192.168.1.1:12345"

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("First request should pass, got %d", w.Code)
		}

		w = httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("Second request should be rate limited, got %d", w.Code)
		}
		if got := w.Header().Get("Retry-After"); got != tc.expected {
			t.Errorf("Retry-After = %q, expected %q", got, tc.expected)
		}
	}
}

func TestRateLimitFunc_SharesBucketAcrossPorts(t *testing.T) {
	limiter := NewIPRateLimiter("auth", 1, 1)
	rateLimited := RateLimitFunc(limiter, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	req.RemoteAddr = "192.168.1.2:12345"
	w := httptest.NewRecorder()
	rateLimited(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("First request should be OK, got %d", w.Code)
	}

	req.RemoteAddr = "192.168.1.2:54321"
	w = httptest.NewRecorder()
	rateLimited(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Same host on another port should share the bucket, got %d", w.Code)
	}
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{"forwarded single", map[string]string{"X-Forwarded-For": "1.2.3.4"}, "192.168.1.1:12345", "1.2.3.4"},
		{"forwarded chain keeps first hop", map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"}, "192.168.1.1:12345", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": "5.6.7.8"}, "192.168.1.1:12345", "5.6.7.8"},
		{"remote host only", nil, "192.168.1.1:12345", "192.168.1.1"},
		{"remote without port", nil, "192.168.1.1", "192.168.1.1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tc.remote

			if ip := getIP(req); ip != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, ip)
			}
		})
	}
}
