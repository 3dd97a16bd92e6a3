package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/satellitegroup/printshop/internal/cart"
	"github.com/satellitegroup/printshop/internal/catalog"
	"github.com/satellitegroup/printshop/internal/models"
	"github.com/satellitegroup/printshop/internal/mykafka"
	"github.com/satellitegroup/printshop/internal/service/token"
)

type CartHandler struct {
	Repo     *cart.Repo
	Catalog  *catalog.Catalog
	Producer *mykafka.Producer
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := token.UserID(c)
	if err != nil {
		return err
	}

	items, err := h.Repo.Get(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load cart, try again")
	}

	// drop lines whose product left the catalog
	kept := items[:0]
	for _, it := range items {
		if _, ok := h.Catalog.ByID(it.ProductID); ok {
			kept = append(kept, it)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"items": kept})
}

// ReplaceCart is the whole-cart sync: the client's line list becomes
// the server copy. Line ids are recomputed server-side so a tampered
// id cannot split a merged line.
func (h *CartHandler) ReplaceCart(c echo.Context) error {
	userID, err := token.UserID(c)
	if err != nil {
		return err
	}

	var req struct {
		Items []models.CartItem `json:"items"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid items")
	}

	merged := cart.Cart{}
	for _, it := range req.Items {
		if it.ProductID == "" || it.Quantity < 1 {
			continue
		}
		if _, ok := h.Catalog.ByID(it.ProductID); !ok {
			continue
		}
		merged.Add(it.ProductID, it.Quantity, it.SelectedOptions, it.UnitPrice, it.DesignFile)
	}

	if err := h.Repo.Replace(c.Request().Context(), userID, merged.Lines); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not sync cart, try again")
	}

	publish(c, h.Producer, "cart_events", fmt.Sprint(userID), map[string]any{
		"type":   "cart_synced",
		"userID": userID,
		"lines":  len(merged.Lines),
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
