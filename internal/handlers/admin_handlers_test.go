package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/satellitegroup/printshop/internal/models"
	"github.com/satellitegroup/printshop/internal/mykafka"
	"github.com/satellitegroup/printshop/internal/orders"
)

func newAdminHandler(t *testing.T) (*AdminHandler, *gorm.DB) {
	db := initTestDB(t)
	return &AdminHandler{
		DB:       db,
		Svc:      &orders.Service{Repo: &orders.GormRepo{DB: db}},
		Producer: &mykafka.Producer{},
	}, db
}

func seedOrder(t *testing.T, h *AdminHandler, number string, userID uint) *models.Order {
	t.Helper()
	created, err := h.Svc.Create(context.Background(), &models.Order{
		OrderNumber: number,
		UserID:      userID,
		Items: []models.OrderItem{
			{ProductID: "3", ProductName: "Flex Banner", Quantity: 1, UnitPrice: 18000},
		},
		Subtotal:    18000,
		DeliveryFee: 2500,
		Total:       20500,
		ShippingAddress: models.ShippingAddress{
			FullName: "Ada Obi", Email: "ada@example.com", Phone: "080",
			Address: "12 Nnebisi Road", City: "Asaba", State: "Delta",
		},
		DeliveryOption: models.DeliveryOption{ID: "standard", Price: 2500},
		PaymentMethod:  "transfer",
	})
	require.NoError(t, err)
	return created
}

func TestAdminUpdateStatus_Confirm(t *testing.T) {
	t.Parallel()

	h, db := newAdminHandler(t)
	created := seedOrder(t, h, "SG-ADMIN1", 7)

	rec, c := doJSON(t, http.MethodPatch, "/api/v1/admin/orders/1", map[string]string{"status": "confirmed"}, 1)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(created.ID))
	require.NoError(t, h.UpdateStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.Order
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, "confirmed", stored.Status)
}

func TestAdminUpdateStatus_ConflictAndNotFound(t *testing.T) {
	t.Parallel()

	h, _ := newAdminHandler(t)
	created := seedOrder(t, h, "SG-ADMIN2", 7)

	_, c := doJSON(t, http.MethodPatch, "/", map[string]string{"status": "cancelled"}, 1)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(created.ID))
	require.NoError(t, h.UpdateStatus(c))

	// cancelled is terminal
	_, c = doJSON(t, http.MethodPatch, "/", map[string]string{"status": "confirmed"}, 1)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(created.ID))
	err := h.UpdateStatus(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, httpCode(t, err))

	_, c = doJSON(t, http.MethodPatch, "/", map[string]string{"status": "confirmed"}, 1)
	c.SetParamNames("id")
	c.SetParamValues("9999")
	err = h.UpdateStatus(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestAdminUpdateStatus_BadInput(t *testing.T) {
	t.Parallel()

	h, _ := newAdminHandler(t)
	created := seedOrder(t, h, "SG-ADMIN3", 7)

	_, c := doJSON(t, http.MethodPatch, "/", map[string]string{"status": "paid"}, 1)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(created.ID))
	err := h.UpdateStatus(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))

	_, c = doJSON(t, http.MethodPatch, "/", map[string]string{"status": "confirmed"}, 1)
	c.SetParamNames("id")
	c.SetParamValues("not-a-number")
	err = h.UpdateStatus(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestAdminListOrders_IncludesCustomer(t *testing.T) {
	t.Parallel()

	h, db := newAdminHandler(t)
	require.NoError(t, db.Create(&models.User{
		ID: 7, Email: "ada@example.com", PasswordHash: "x", FullName: "Ada Obi", Role: "user",
	}).Error)
	seedOrder(t, h, "SG-ADMIN4", 7)
	seedOrder(t, h, "SG-ADMIN5", 0)

	rec, c := doJSON(t, http.MethodGet, "/api/v1/admin/orders", nil, 1)
	require.NoError(t, h.ListOrders(c))

	var resp struct {
		Orders []adminOrder `json:"orders"`
	}
	decodeJSON(t, rec, &resp)
	require.Len(t, resp.Orders, 2)

	byNumber := map[string]adminOrder{}
	for _, o := range resp.Orders {
		byNumber[o.OrderNumber] = o
	}
	assert.Equal(t, "ada@example.com", byNumber["SG-ADMIN4"].CustomerEmail)
	assert.Empty(t, byNumber["SG-ADMIN5"].CustomerEmail)
}

func TestAdminStats(t *testing.T) {
	t.Parallel()

	h, db := newAdminHandler(t)
	require.NoError(t, db.Create(&models.User{Email: "ada@example.com", PasswordHash: "x", Role: "user"}).Error)

	a := seedOrder(t, h, "SG-STATS1", 7)
	seedOrder(t, h, "SG-STATS2", 7)
	_, err := h.Svc.UpdateStatus(context.Background(), a.ID, orders.StatusConfirmed)
	require.NoError(t, err)

	rec, c := doJSON(t, http.MethodGet, "/api/v1/admin/stats", nil, 1)
	require.NoError(t, h.Stats(c))

	var resp map[string]int64
	decodeJSON(t, rec, &resp)
	assert.EqualValues(t, 2, resp["orders"])
	assert.EqualValues(t, 1, resp["pending"])
	assert.EqualValues(t, 1, resp["confirmed"])
	assert.EqualValues(t, 20500, resp["revenue"], "only confirmed orders count as revenue")
	assert.EqualValues(t, 1, resp["users"])
}

func TestAdminStats_QueryFailure(t *testing.T) {
	t.Parallel()

	h, db := newAdminHandler(t)
	seedOrder(t, h, "SG-STATS3", 7)

	// the users count hits a missing table; the payload must not
	// render it as zero
	require.NoError(t, db.Exec("DROP TABLE users").Error)

	_, c := doJSON(t, http.MethodGet, "/api/v1/admin/stats", nil, 1)
	err := h.Stats(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, httpCode(t, err))
}
