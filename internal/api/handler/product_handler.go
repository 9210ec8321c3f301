package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hazellab/catalog-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog products.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create adds a product to the catalog.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// List returns products, optionally filtered by the name/category/active
// query parameters. Filters combine: name+category and name+active narrow
// the search, a bare parameter filters on its own.
//
// @Summary      List or search products
// @Tags         products
// @Produce      json
// @Param        name      query    string  false  "Name fragment (case-insensitive)"
// @Param        category  query    string  false  "Category id"
// @Param        active    query    bool    false  "Active flag"
// @Success      200       {array}  domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.QueryParam("name")
	category := c.QueryParam("category")
	activeParam := c.QueryParam("active")

	switch {
	case name != "" && category != "":
		products, err := h.service.SearchByNameAndCategory(ctx, name, category)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, products)
	case name != "" && activeParam != "":
		active, err := strconv.ParseBool(activeParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "active must be a boolean"})
		}
		products, err := h.service.SearchByNameAndActive(ctx, name, active)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, products)
	case name != "":
		products, err := h.service.SearchByName(ctx, name)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, products)
	case category != "":
		products, err := h.service.FindByCategory(ctx, category)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, products)
	case activeParam != "":
		active, err := strconv.ParseBool(activeParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "active must be a boolean"})
		}
		products, err := h.service.FindByActive(ctx, active)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, products)
	}

	products, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Featured returns the products flagged for the storefront landing page.
//
// @Summary      List featured products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /api/products/featured [get]
func (h *ProductHandler) Featured(c echo.Context) error {
	products, err := h.service.Featured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// LowStock returns products whose stock fell below the restock threshold.
//
// @Summary      List low-stock products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) LowStock(c echo.Context) error {
	products, err := h.service.LowStock(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns a single product by id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update replaces a product's editable fields.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "New product details"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Deactivate pulls a product from the storefront without deleting it.
//
// @Summary      Deactivate a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id}/deactivate [patch]
func (h *ProductHandler) Deactivate(c echo.Context) error {
	product, err := h.service.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// UpdateImage swaps a product's image without touching the rest of the record.
//
// @Summary      Update a product image
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Product id"
// @Param        body  body      imageRequest  true  "New image URL"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/products/{id}/image [patch]
func (h *ProductHandler) UpdateImage(c echo.Context) error {
	var req imageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.service.UpdateImage(c.Request().Context(), c.Param("id"), req.Image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product from the catalog.
//
// @Summary      Delete a product
// @Tags         products
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
