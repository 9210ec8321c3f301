package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hazellab/catalog-api/internal/api/metrics"
	"github.com/hazellab/catalog-api/internal/core/domain"
	"github.com/hazellab/catalog-api/internal/core/ports"
)

// AuthHandler handles the staff login endpoint. Login is a credential check
// for the back-office UI; no session or token is issued.
type AuthHandler struct {
	accountService ports.AccountService
}

func NewAuthHandler(accountService ports.AccountService) *AuthHandler {
	return &AuthHandler{accountService: accountService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string          `json:"message"`
	Account *domain.Account `json:"account"`
}

// Login verifies credentials for a back-office user.
//
// Only admin and super_admin accounts may log in here; a valid credential
// pair on a client account is rejected the same way an invalid one is.
//
// @Summary      Staff login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	account, err := h.accountService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusBadRequest
		result := "error"
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			status = http.StatusNotFound
			result = "not_found"
		case errors.Is(err, domain.ErrInvalidCredentials):
			result = "invalid_credentials"
		case errors.Is(err, domain.ErrAccountInactive):
			result = "inactive"
		}
		metrics.LoginsTotal.WithLabelValues(result).Inc()
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	if !account.IsAdmin() {
		metrics.LoginsTotal.WithLabelValues("forbidden").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "admin access only"})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Message: "login successful", Account: account})
}
