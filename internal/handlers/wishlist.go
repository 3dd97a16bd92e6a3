package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/satellitegroup/printshop/internal/mykafka"
	"github.com/satellitegroup/printshop/internal/service/token"
	"github.com/satellitegroup/printshop/internal/wishlist"
)

type WishlistHandler struct {
	Repo     *wishlist.Repo
	Producer *mykafka.Producer
}

func (h *WishlistHandler) Get(c echo.Context) error {
	userID, err := token.UserID(c)
	if err != nil {
		return err
	}

	ids, err := h.Repo.List(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load wishlist, try again")
	}
	return c.JSON(http.StatusOK, echo.Map{"product_ids": ids})
}

func (h *WishlistHandler) Toggle(c echo.Context) error {
	userID, err := token.UserID(c)
	if err != nil {
		return err
	}

	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := c.Bind(&req); err != nil || req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product id required")
	}

	action, err := h.Repo.Toggle(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not update wishlist, try again")
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(userID), map[string]any{
		"type":      "wishlist_toggled",
		"userID":    userID,
		"productID": req.ProductID,
		"action":    action,
	})

	return c.JSON(http.StatusOK, echo.Map{"action": action, "product_id": req.ProductID})
}
