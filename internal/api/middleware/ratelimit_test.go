package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type stubCounter struct {
	counts map[string]int64
	err    error
}

func (s *stubCounter) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.counts[key]++
	return s.counts[key], nil
}

func limitedHandler(t *testing.T, counter HitCounter, limit int64) (echo.HandlerFunc, *echo.Echo) {
	t.Helper()
	e := echo.New()
	mw := RateLimit(counter, limit, time.Minute)
	return mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}), e
}

func TestRateLimit_UnderLimit(t *testing.T) {
	counter := &stubCounter{counts: make(map[string]int64)}
	handler, e := limitedHandler(t, counter, 3)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		rec := httptest.NewRecorder()
		if err := handler(e.NewContext(req, rec)); err != nil {
			t.Fatalf("request %d rejected: %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}
}

func TestRateLimit_OverLimit(t *testing.T) {
	counter := &stubCounter{counts: make(map[string]int64)}
	handler, e := limitedHandler(t, counter, 2)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		rec := httptest.NewRecorder()
		_ = handler(e.NewContext(req, rec))
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := handler(c)
	if err == nil {
		t.Fatal("expected rejection over limit")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
}

func TestRateLimit_FailsOpenOnStoreError(t *testing.T) {
	counter := &stubCounter{err: errors.New("redis down")}
	handler, e := limitedHandler(t, counter, 1)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("limiter must fail open, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
