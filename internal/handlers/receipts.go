package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/satellitegroup/printshop/internal/mykafka"
	"github.com/satellitegroup/printshop/internal/orders"
	"github.com/satellitegroup/printshop/internal/service/token"
	"github.com/satellitegroup/printshop/internal/storage"
)

type ReceiptHandler struct {
	Svc      *orders.Service
	Uploads  storage.Uploads
	Producer *mykafka.Producer
}

// Upload attaches a transfer receipt image to an order. Status is left
// alone; an admin confirms separately after reconciling the payment.
func (h *ReceiptHandler) Upload(c echo.Context) error {
	userID, err := token.UserID(c)
	if err != nil {
		return err
	}

	number := c.FormValue("order_number")
	if number == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "order number required")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file required")
	}

	contentType := file.Header.Get("Content-Type")
	if err := storage.ValidateReceipt(contentType, file.Size); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read file")
	}
	defer src.Close()

	url, err := h.Uploads.Save(c.Request().Context(), "receipts", file.Filename, contentType, file.Size, src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "upload failed, try again")
	}

	order, err := h.Svc.AttachReceipt(c.Request().Context(), number, url, time.Now())
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not record receipt, try again")
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(userID), map[string]any{
		"type":         "receipt_uploaded",
		"userID":       userID,
		"order_number": number,
	})

	return c.JSON(http.StatusOK, echo.Map{"url": order.ReceiptURL, "success": true})
}

func (h *ReceiptHandler) Status(c echo.Context) error {
	number := c.Param("number")
	order, err := h.Svc.Track(c.Request().Context(), number)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			return c.JSON(http.StatusOK, echo.Map{"uploaded": false})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not check receipt, try again")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"uploaded":    order.ReceiptURL != "",
		"url":         order.ReceiptURL,
		"uploaded_at": order.ReceiptUploadedAt,
	})
}
