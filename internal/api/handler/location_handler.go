package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hazellab/catalog-api/internal/core/domain"
)

// LocationHandler serves the static Chilean region and commune lookups the
// storefront address forms depend on.
type LocationHandler struct{}

func NewLocationHandler() *LocationHandler {
	return &LocationHandler{}
}

// RegionCommunes returns the full region to communes mapping.
//
// @Summary      List regions with their communes
// @Tags         locations
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/locations/regions-communes [get]
func (h *LocationHandler) RegionCommunes(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.RegionCommunes())
}

// Regions returns the region names in display order.
//
// @Summary      List regions
// @Tags         locations
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/locations/regions [get]
func (h *LocationHandler) Regions(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Regions())
}

// Communes returns the communes of one region. Unknown regions yield an
// empty list rather than a 404, matching what the address form expects.
//
// @Summary      List communes of a region
// @Tags         locations
// @Produce      json
// @Param        region  path     string  true  "Region name"
// @Success      200     {array}  string
// @Router       /api/locations/communes/{region} [get]
func (h *LocationHandler) Communes(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.CommunesFor(c.Param("region")))
}
