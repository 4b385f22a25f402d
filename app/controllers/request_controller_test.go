package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/app/routes"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/auth"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/database"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/router"
)

func setupAPI(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Customer{}, &models.Product{},
		&models.Order{}, &models.OrderItem{}, &models.Activity{},
		&models.Blog{}, &models.GalleryItem{},
	))
	database.DB = db

	r := router.New()
	routes.RegisterAPI(r)
	return r.Handler(), db
}

func orderBody() map[string]interface{} {
	return map[string]interface{}{
		"customerName": "Efua Owusu",
		"businessName": "Owusu Ventures",
		"email":        "efua@example.com",
		"phone":        "+233209999999",
		"location":     "Takoradi",
		"address":      "8 Harbour Rd",
		"businessType": "Retail",
		"totalAmount":  9.0,
		"items": []map[string]interface{}{
			{"productId": 1, "quantity": 2, "price": 4.5, "amount": 9.0},
		},
	}
}

func postJSON(handler http.Handler, path, token string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestGuestCanSubmitOrder(t *testing.T) {
	handler, db := setupAPI(t)

	w := postJSON(handler, "/api/requests", "", orderBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Contains(t, body.Message, "Efua Owusu")

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.Nil(t, order.CreatedByID)
}

func TestOrderSubmissionValidationFailureKeepsEnvelope(t *testing.T) {
	handler, db := setupAPI(t)

	bad := orderBody()
	bad["totalAmount"] = 99.0 // does not match the item amounts
	w := postJSON(handler, "/api/requests", "", bad)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.NotEmpty(t, body.Message)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestOrderListRequiresAuth(t *testing.T) {
	handler, _ := setupAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStatusUpdateForbiddenForUnlistedRole(t *testing.T) {
	handler, db := setupAPI(t)

	require.Equal(t, http.StatusOK, postJSON(handler, "/api/requests", "", orderBody()).Code)
	var order models.Order
	require.NoError(t, db.First(&order).Error)

	token, err := auth.GenerateToken(7, "VIEWER")
	require.NoError(t, err)

	raw, _ := json.Marshal(map[string]string{"status": models.StatusShipped})
	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/requests/%d/status", order.ID), bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var unchanged models.Order
	require.NoError(t, db.First(&unchanged, order.ID).Error)
	assert.Equal(t, models.StatusReceived, unchanged.Status)
}

func TestStaffCanExportOrderCSV(t *testing.T) {
	handler, db := setupAPI(t)

	require.Equal(t, http.StatusOK, postJSON(handler, "/api/requests", "", orderBody()).Code)
	var order models.Order
	require.NoError(t, db.First(&order).Error)

	token, err := auth.GenerateToken(1, "STAFF")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/requests/%d/export", order.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Efua Owusu")
}

func TestCatalogEndpointIsPublic(t *testing.T) {
	handler, db := setupAPI(t)

	require.NoError(t, db.Create(&models.Product{
		Name: "Classic Cola", Size: "330ml", WholesalePrice: 0.55, RetailPrice: 0.90,
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Classic Cola")
	assert.Contains(t, w.Body.String(), "wholesalePrice")
}
