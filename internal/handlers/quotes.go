package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/satellitegroup/printshop/internal/logging"
	"github.com/satellitegroup/printshop/internal/models"
	"github.com/satellitegroup/printshop/internal/mykafka"
	"github.com/satellitegroup/printshop/internal/quotes"
	"github.com/satellitegroup/printshop/internal/storage"
	"github.com/satellitegroup/printshop/internal/util"
)

type QuoteHandler struct {
	Repo     *quotes.Repo
	Uploads  storage.Uploads
	Producer *mykafka.Producer
}

// Create takes the public quote form as multipart. The design file is
// optional and best-effort: a failed upload is logged and the request
// is saved without it rather than bounced back to the customer.
func (h *QuoteHandler) Create(c echo.Context) error {
	req := models.QuoteRequest{
		FullName:     strings.TrimSpace(c.FormValue("full_name")),
		Email:        strings.TrimSpace(c.FormValue("email")),
		Phone:        strings.TrimSpace(c.FormValue("phone")),
		Company:      strings.TrimSpace(c.FormValue("company")),
		Service:      strings.TrimSpace(c.FormValue("service")),
		Quantity:     strings.TrimSpace(c.FormValue("quantity")),
		Deadline:     strings.TrimSpace(c.FormValue("deadline")),
		DesignStatus: c.FormValue("design_status"),
		Message:      strings.TrimSpace(c.FormValue("message")),
	}

	if req.FullName == "" || req.Email == "" || req.Phone == "" || req.Service == "" || req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "full name, email, phone, service and message are required")
	}
	if !quotes.ValidDesignStatus(req.DesignStatus) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid design status")
	}

	if file, err := c.FormFile("file"); err == nil && file.Size > 0 {
		if err := storage.ValidateDesign(file.Filename, file.Size); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		src, err := file.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "could not read file")
		}
		defer src.Close()

		url, err := h.Uploads.Save(c.Request().Context(), "quote-files", file.Filename, file.Header.Get("Content-Type"), file.Size, src)
		if err != nil {
			logging.FromContext(c.Request().Context()).Warn("quote file upload failed", "error", err)
		} else {
			req.FileURL = url
		}
	}

	created, err := h.Repo.Create(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not submit quote request, try again")
	}

	publish(c, h.Producer, "quote_events", fmt.Sprint(created.ID), map[string]any{
		"type":    "quote_requested",
		"quoteID": created.ID,
		"service": created.Service,
		"email":   created.Email,
	})

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "quote": created})
}

func (h *QuoteHandler) ListAll(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	list, err := h.Repo.ListAll(c.Request().Context(), size, from)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load quote requests, try again")
	}
	return c.JSON(http.StatusOK, echo.Map{"quotes": list})
}
