package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkpress/blog-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrPostNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrInvalidPost, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: title is required", domain.ErrInvalidPost), http.StatusUnprocessableEntity},
		{domain.ErrSlugTaken, http.StatusUnprocessableEntity},
		{domain.ErrSlugConflict, http.StatusInternalServerError},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{errors.New("something broke"), http.StatusInternalServerError},
		{echo.NewHTTPError(http.StatusTooManyRequests, "too many requests"), http.StatusTooManyRequests},
	}

	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handle(tc.err, c)

		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Errorf("%v: invalid error envelope: %v", tc.err, err)
			continue
		}
		if body["error"] == "" {
			t.Errorf("%v: empty error message", tc.err)
		}
	}
}

func TestHTTPErrorHandler_GenericErrorHidesDetail(t *testing.T) {
	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handle(errors.New("pq: secret connection string leaked"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail must not leak, got %q", body["error"])
	}
}
