package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hazellab/catalog-api/internal/core/domain"
	"github.com/hazellab/catalog-api/internal/core/ports"
)

type stubAccountService struct {
	authenticateFn func(ctx context.Context, email, password string) (*domain.Account, error)
}

func (s *stubAccountService) Create(context.Context, ports.AccountInput) (*domain.Account, error) {
	panic("not implemented")
}

func (s *stubAccountService) GetByID(context.Context, string) (*domain.Account, error) {
	panic("not implemented")
}

func (s *stubAccountService) Update(context.Context, string, ports.AccountInput) (*domain.Account, error) {
	panic("not implemented")
}

func (s *stubAccountService) Delete(context.Context, string) error {
	panic("not implemented")
}

func (s *stubAccountService) List(context.Context) ([]*domain.Account, error) {
	panic("not implemented")
}

func (s *stubAccountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	return s.authenticateFn(ctx, email, password)
}

func (s *stubAccountService) SearchByUsername(context.Context, string) ([]*domain.Account, error) {
	panic("not implemented")
}

func (s *stubAccountService) FindByRole(context.Context, string) ([]*domain.Account, error) {
	panic("not implemented")
}

func (s *stubAccountService) FindByStatus(context.Context, string) ([]*domain.Account, error) {
	panic("not implemented")
}

func postLogin(t *testing.T, handler *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler.Login(c)
	return rec
}

func TestAuthHandler_Login_AdminSuccess(t *testing.T) {
	stub := &stubAccountService{
		authenticateFn: func(ctx context.Context, email, password string) (*domain.Account, error) {
			if email != "marco@duoc.cl" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.Account{
				ID:           "acc-1",
				Username:     "marco",
				Email:        email,
				Role:         domain.RoleAdmin,
				Status:       domain.StatusActive,
				PasswordHash: "$2a$10$digest",
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	rec := postLogin(t, handler, `{"email":"marco@duoc.cl","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	account, ok := resp["account"].(map[string]any)
	if !ok || account["username"] != "marco" || account["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected account payload: %+v", account)
	}
	if strings.Contains(rec.Body.String(), "digest") {
		t.Fatalf("password digest leaked in response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_ClientRoleRejected(t *testing.T) {
	stub := &stubAccountService{
		authenticateFn: func(ctx context.Context, email, password string) (*domain.Account, error) {
			return &domain.Account{Username: "carla", Role: domain.RoleClient, Status: domain.StatusActive}, nil
		},
	}
	handler := NewAuthHandler(stub)

	rec := postLogin(t, handler, `{"email":"carla@gmail.com","password":"secret"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "admin access only") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAccountService{
		authenticateFn: func(ctx context.Context, email, password string) (*domain.Account, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	rec := postLogin(t, handler, `{"email":"marco@duoc.cl","password":"bad"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Inactive(t *testing.T) {
	stub := &stubAccountService{
		authenticateFn: func(ctx context.Context, email, password string) (*domain.Account, error) {
			return nil, domain.ErrAccountInactive
		},
	}
	handler := NewAuthHandler(stub)

	rec := postLogin(t, handler, `{"email":"marco@duoc.cl","password":"secret"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_AccountNotFound(t *testing.T) {
	stub := &stubAccountService{
		authenticateFn: func(ctx context.Context, email, password string) (*domain.Account, error) {
			return nil, domain.ErrAccountNotFound
		},
	}
	handler := NewAuthHandler(stub)

	rec := postLogin(t, handler, `{"email":"ghost@gmail.com","password":"secret"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAccountService{
		authenticateFn: func(ctx context.Context, email, password string) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	rec := postLogin(t, handler, "{")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
