package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/satellitegroup/printshop/internal/cart"
	"github.com/satellitegroup/printshop/internal/checkout"
	"github.com/satellitegroup/printshop/internal/models"
	"github.com/satellitegroup/printshop/internal/mykafka"
	"github.com/satellitegroup/printshop/internal/orders"
	"github.com/satellitegroup/printshop/internal/payment"
	"github.com/satellitegroup/printshop/internal/service/token"
	"github.com/satellitegroup/printshop/internal/util"
)

type OrderHandler struct {
	Svc      *orders.Service
	CartRepo *cart.Repo
	Gateway  payment.Gateway
	Producer *mykafka.Producer
}

type createOrderRequest struct {
	OrderNumber     string                 `json:"order_number"`
	Items           []models.OrderItem     `json:"items"`
	Subtotal        int64                  `json:"subtotal"`
	DeliveryFee     int64                  `json:"delivery_fee"`
	Total           int64                  `json:"total"`
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
	DeliveryOption  models.DeliveryOption  `json:"delivery_option"`
	PaymentMethod   string                 `json:"payment_method"`
}

// CreateOrder persists a checkout submission. The cart is cleared only
// after the order row exists; a failed persist leaves it intact so the
// user retries without rebuilding the form.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, err := token.UserID(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := checkout.ValidateAddress(req.ShippingAddress); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	opt, ok := checkout.DeliveryOptionByID(req.DeliveryOption.ID)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown delivery option")
	}

	switch req.PaymentMethod {
	case checkout.MethodCard:
		// Card orders arrive after the gateway callback; the reference
		// is the order number and must verify before a row is written.
		paid, err := h.Gateway.Verify(c.Request().Context(), req.OrderNumber)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadGateway, "payment verification failed, try again")
		}
		if !paid {
			return echo.NewHTTPError(http.StatusPaymentRequired, "payment not completed")
		}
	case checkout.MethodTransfer, checkout.MethodDelivery:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown payment method")
	}

	order := &models.Order{
		OrderNumber:     req.OrderNumber,
		UserID:          userID,
		Status:          string(orders.StatusPending),
		Items:           req.Items,
		Subtotal:        req.Subtotal,
		DeliveryFee:     opt.Price,
		Total:           req.Total,
		ShippingAddress: req.ShippingAddress,
		DeliveryOption:  opt,
		PaymentMethod:   req.PaymentMethod,
	}

	created, err := h.Svc.Create(c.Request().Context(), order)
	if err != nil {
		if errors.Is(err, orders.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not save order, try again")
	}

	// best-effort: the server cart mirrors the now-converted cart
	if err := h.CartRepo.Replace(c.Request().Context(), userID, nil); err != nil {
		c.Logger().Warnf("cart clear after order failed: %v", err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(userID), map[string]any{
		"type":         "order_created",
		"userID":       userID,
		"orderID":      created.ID,
		"order_number": created.OrderNumber,
		"total":        created.Total,
		"method":       created.PaymentMethod,
	})

	return c.JSON(http.StatusCreated, echo.Map{"order": created})
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	userID, err := token.UserID(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	list, err := h.Svc.ListByUser(c.Request().Context(), userID, size, from)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load orders, try again")
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": list})
}

// Track is public: anyone holding the order number can see the status.
func (h *OrderHandler) Track(c echo.Context) error {
	number := c.Param("number")
	order, err := h.Svc.Track(c.Request().Context(), number)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load order, try again")
	}
	return c.JSON(http.StatusOK, echo.Map{"order": order})
}
