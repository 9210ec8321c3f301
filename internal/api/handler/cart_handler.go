package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hazellab/catalog-api/internal/core/ports"
)

type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type cartItemRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

type quantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// Create adds a line to an account's cart.
//
// @Summary      Add a cart item
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      cartItemRequest  true  "Cart line"
// @Success      201   {object}  domain.CartItem
// @Failure      400   {object}  map[string]string
// @Router       /api/cart-items [post]
func (h *CartHandler) Create(c echo.Context) error {
	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	item, err := h.service.Create(c.Request().Context(), req.AccountID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// List returns every cart line across accounts.
//
// @Summary      List cart items
// @Tags         cart
// @Produce      json
// @Success      200  {array}  domain.CartItem
// @Router       /api/cart-items [get]
func (h *CartHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get returns a single cart line by id.
//
// @Summary      Get a cart item
// @Tags         cart
// @Produce      json
// @Param        id   path      string  true  "Cart item id"
// @Success      200  {object}  domain.CartItem
// @Failure      404  {object}  map[string]string
// @Router       /api/cart-items/{id} [get]
func (h *CartHandler) Get(c echo.Context) error {
	item, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// ByAccount returns the cart lines belonging to one account.
//
// @Summary      List an account's cart
// @Tags         cart
// @Produce      json
// @Param        accountID  path     string  true  "Account id"
// @Success      200        {array}  domain.CartItem
// @Router       /api/cart-items/account/{accountID} [get]
func (h *CartHandler) ByAccount(c echo.Context) error {
	items, err := h.service.ListByAccount(c.Request().Context(), c.Param("accountID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateQuantity changes the quantity of an existing cart line. The
// account/product pairing is fixed at creation.
//
// @Summary      Update a cart item quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Cart item id"
// @Param        body  body      quantityRequest  true  "New quantity"
// @Success      200   {object}  domain.CartItem
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/cart-items/{id} [patch]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req quantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	item, err := h.service.UpdateQuantity(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes a cart line.
//
// @Summary      Delete a cart item
// @Tags         cart
// @Param        id  path  string  true  "Cart item id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/cart-items/{id} [delete]
func (h *CartHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
