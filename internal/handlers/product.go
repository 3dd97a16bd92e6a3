package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/satellitegroup/printshop/internal/catalog"
)

type ProductHandler struct {
	Catalog *catalog.Catalog
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	if cat := c.QueryParam("category"); cat != "" {
		return c.JSON(http.StatusOK, h.Catalog.ByCategory(cat))
	}
	return c.JSON(http.StatusOK, h.Catalog.All())
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	slug := c.Param("slug")
	p, ok := h.Catalog.BySlug(slug)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, p)
}
