package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/satellitegroup/printshop/internal/models"
	"github.com/satellitegroup/printshop/internal/mykafka"
	"github.com/satellitegroup/printshop/internal/orders"
	"github.com/satellitegroup/printshop/internal/util"
)

// AdminHandler serves the back office. Routes mount behind the admin
// middleware; role checks are done before these run.
type AdminHandler struct {
	DB       *gorm.DB
	Svc      *orders.Service
	Producer *mykafka.Producer
}

type adminOrder struct {
	models.Order
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	list, err := h.Svc.ListAll(c.Request().Context(), size, from)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load orders, try again")
	}

	out := make([]adminOrder, 0, len(list))
	for _, o := range list {
		row := adminOrder{Order: o}
		if o.UserID != 0 {
			var u models.User
			if err := h.DB.WithContext(c.Request().Context()).First(&u, o.UserID).Error; err == nil {
				row.CustomerEmail = u.Email
				row.CustomerName = u.FullName
			}
		}
		out = append(out, row)
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": out})
}

// UpdateStatus applies pending→confirmed|cancelled. Repeating the
// current status answers 200, matching a retried confirm click.
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateStatus(c.Request().Context(), uint(id), orders.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, orders.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		case errors.Is(err, orders.ErrConflict):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not update order, try again")
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(order.UserID), map[string]any{
		"type":         "order_status_changed",
		"orderID":      order.ID,
		"order_number": order.OrderNumber,
		"status":       order.Status,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"order": echo.Map{
			"id":           order.ID,
			"order_number": order.OrderNumber,
			"status":       order.Status,
		},
	})
}

func (h *AdminHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	var totalOrders, pending, confirmed int64
	if err := h.DB.WithContext(ctx).Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load stats, try again")
	}
	if err := h.DB.WithContext(ctx).Model(&models.Order{}).Where("status = ?", "pending").Count(&pending).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load stats, try again")
	}
	if err := h.DB.WithContext(ctx).Model(&models.Order{}).Where("status = ?", "confirmed").Count(&confirmed).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load stats, try again")
	}

	var revenue int64
	if err := h.DB.WithContext(ctx).Model(&models.Order{}).
		Where("status = ?", "confirmed").
		Select("COALESCE(SUM(total), 0)").Scan(&revenue).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load stats, try again")
	}

	var users int64
	if err := h.DB.WithContext(ctx).Model(&models.User{}).Count(&users).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load stats, try again")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"orders":    totalOrders,
		"pending":   pending,
		"confirmed": confirmed,
		"revenue":   revenue,
		"users":     users,
	})
}
