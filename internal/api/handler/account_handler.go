package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hazellab/catalog-api/internal/api/metrics"
	"github.com/hazellab/catalog-api/internal/core/ports"
)

// AccountHandler handles HTTP requests for the account lifecycle.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

type accountRequest struct {
	Username   string    `json:"username"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	NationalID string    `json:"national_id"`
	Password   string    `json:"password"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	BirthDate  string    `json:"birth_date"`
	Region     string    `json:"region"`
	Commune    string    `json:"commune"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r accountRequest) toInput() ports.AccountInput {
	return ports.AccountInput{
		Username:   r.Username,
		LastName:   r.LastName,
		Email:      r.Email,
		NationalID: r.NationalID,
		Password:   r.Password,
		Role:       r.Role,
		Status:     r.Status,
		BirthDate:  r.BirthDate,
		Region:     r.Region,
		Commune:    r.Commune,
		Address:    r.Address,
		CreatedAt:  r.CreatedAt,
	}
}

// Create registers a new account.
//
// @Summary      Register a new account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      accountRequest  true  "Account details"
// @Success      201   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	account, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.AccountsCreatedTotal.WithLabelValues(account.Role).Inc()
	return c.JSON(http.StatusCreated, account)
}

// List returns every account.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {array}  domain.Account
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// Get returns a single account by id.
//
// @Summary      Get an account
// @Tags         accounts
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.Account
// @Failure      404  {object}  map[string]string
// @Router       /api/accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	account, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Update replaces an account's profile.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Account id"
// @Param        body  body      accountRequest  true  "New profile"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/accounts/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	account, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Delete removes an account.
//
// @Summary      Delete an account
// @Tags         accounts
// @Param        id  path  string  true  "Account id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/accounts/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Search finds accounts whose username contains the given fragment.
//
// @Summary      Search accounts by username
// @Tags         accounts
// @Produce      json
// @Param        username  query    string  true  "Username fragment"
// @Success      200       {array}  domain.Account
// @Router       /api/accounts/search [get]
func (h *AccountHandler) Search(c echo.Context) error {
	accounts, err := h.service.SearchByUsername(c.Request().Context(), c.QueryParam("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// ByRole returns the accounts holding the given role.
//
// @Summary      List accounts by role
// @Tags         accounts
// @Produce      json
// @Param        role  path     string  true  "Role (cliente, admin, super_admin)"
// @Success      200   {array}  domain.Account
// @Router       /api/accounts/role/{role} [get]
func (h *AccountHandler) ByRole(c echo.Context) error {
	accounts, err := h.service.FindByRole(c.Request().Context(), c.Param("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// ByStatus returns the accounts in the given status.
//
// @Summary      List accounts by status
// @Tags         accounts
// @Produce      json
// @Param        status  path     string  true  "Status (activo, inactivo)"
// @Success      200     {array}  domain.Account
// @Router       /api/accounts/status/{status} [get]
func (h *AccountHandler) ByStatus(c echo.Context) error {
	accounts, err := h.service.FindByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}
