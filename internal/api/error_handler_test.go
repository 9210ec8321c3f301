package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hazellab/catalog-api/internal/core/domain"
)

func invoke(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound},
		{"category not found", domain.ErrCategoryNotFound, http.StatusNotFound},
		{"cart item not found", domain.ErrCartItemNotFound, http.StatusNotFound},
		{"blog post not found", domain.ErrBlogPostNotFound, http.StatusNotFound},
		{"duplicate account", domain.ErrAccountExists, http.StatusConflict},
		{"password required", domain.ErrPasswordRequired, http.StatusBadRequest},
		{"national id required", domain.ErrNationalIDRequired, http.StatusBadRequest},
		{"email domain", domain.ErrEmailDomain, http.StatusBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest},
		{"inactive", domain.ErrAccountInactive, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := invoke(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}

			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["error"] != tc.err.Error() {
				t.Fatalf("expected message %q, got %q", tc.err.Error(), resp["error"])
			}
		})
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec := invoke(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	rec := invoke(t, errors.New("mongo timeout"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); !json.Valid([]byte(body)) || body == "" {
		t.Fatalf("unexpected body: %q", body)
	}
	// The real cause stays in the logs, not the response.
	if rec.Body.String() != "{\"error\":\"internal server error\"}\n" {
		t.Fatalf("leaked internal detail: %s", rec.Body.String())
	}
}
