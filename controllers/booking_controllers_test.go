package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/ranahan-restaurant/controllers"
	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/services"
	"gorm.io/gorm"
)

func setupBookingRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	tables := services.NewTableRegistry(db, nil)
	manager := services.NewBookingManager(db, tables, services.NewUserDirectory(db), nil)
	bookingCtrl := controllers.NewBookingController(manager)
	router.POST("/api/bookings", bookingCtrl.CreateBooking)
	router.GET("/api/bookings/byUser/:userId", bookingCtrl.GetBookingsByUser)
	router.PUT("/api/bookings/:id", bookingCtrl.UpdateBooking)
	router.DELETE("/api/bookings/:id", bookingCtrl.CancelBooking)
	return router
}

func createBooking(t *testing.T, router *gin.Engine, body map[string]interface{}) uint {
	t.Helper()
	w := performRequest(router, http.MethodPost, "/api/bookings", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp map[string]interface{}
	decode(t, w, &resp)
	return uint(resp["id"].(float64))
}

func TestCreateBookingEndpoint(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, db, "T1", models.TableAvailable)
	router := setupBookingRouter(db)

	id := createBooking(t, router, map[string]interface{}{
		"userId":  1,
		"tableId": table.ID,
		"date":    "2024-01-01",
		"time":    "18:00",
		"people":  4,
		"comment": "near the window",
	})
	assert.NotZero(t, id)
	assert.Equal(t, models.TableReserved, tableStatus(t, db, table.ID))

	// meja sudah Reserved
	w := performRequest(router, http.MethodPost, "/api/bookings", map[string]interface{}{
		"userId": "1", "tableId": fmt.Sprint(table.ID), "date": "2024-01-02", "time": "19:00", "people": 2,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Table is not available", errorMessage(t, w))
}

func TestCreateBookingEndpointErrors(t *testing.T) {
	db := setupTestDB(t)
	router := setupBookingRouter(db)

	w := performRequest(router, http.MethodPost, "/api/bookings", map[string]interface{}{
		"userId": 1, "date": "2024-01-01", "time": "18:00", "people": 4,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", errorMessage(t, w))

	w = performRequest(router, http.MethodPost, "/api/bookings", "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", errorMessage(t, w))

	w = performRequest(router, http.MethodPost, "/api/bookings", map[string]interface{}{
		"userId": 1, "tableId": 404, "date": "2024-01-01", "time": "18:00", "people": 4,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Table not found", errorMessage(t, w))

	var n int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestGetBookingsByUserEndpoint(t *testing.T) {
	db := setupTestDB(t)
	t1 := seedTable(t, db, "T1", models.TableAvailable)
	t2 := seedTable(t, db, "T2", models.TableAvailable)
	router := setupBookingRouter(db)

	first := createBooking(t, router, map[string]interface{}{
		"userId": 7, "tableId": t1.ID, "date": "2024-01-01", "time": "18:00", "people": 4,
	})
	second := createBooking(t, router, map[string]interface{}{
		"userId": 7, "tableId": t2.ID, "date": "2024-01-03", "time": "12:00", "people": 2, "comment": "lunch",
	})

	w := performRequest(router, http.MethodGet, "/api/bookings/byUser/7", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	decode(t, w, &list)
	require.Len(t, list, 2)
	assert.Equal(t, float64(second), list[0]["id"])
	assert.Equal(t, float64(first), list[1]["id"])
	assert.Equal(t, "Reserved", list[0]["status"])
	assert.Equal(t, "lunch", list[0]["comment"])
	assert.Equal(t, float64(t2.ID), list[0]["tableId"])
	assert.Equal(t, float64(2), list[0]["people"])
	assert.Equal(t, "2024-01-03", list[0]["date"])
	assert.Equal(t, "12:00", list[0]["time"])

	w = performRequest(router, http.MethodGet, "/api/bookings/byUser/nobody", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestUpdateBookingEndpoint(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, db, "T1", models.TableAvailable)
	router := setupBookingRouter(db)

	id := createBooking(t, router, map[string]interface{}{
		"userId": 3, "tableId": table.ID, "date": "2024-01-01", "time": "18:00", "people": 4,
	})
	url := fmt.Sprintf("/api/bookings/%d", id)

	w := performRequest(router, http.MethodPut, url, map[string]interface{}{"userId": 3, "people": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing fields: time, people", errorMessage(t, w))

	w = performRequest(router, http.MethodPut, "/api/bookings/999", map[string]interface{}{"time": "19:00", "people": 5})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", errorMessage(t, w))

	w = performRequest(router, http.MethodPut, url, map[string]interface{}{"userId": 4, "time": "19:00", "people": 5})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden: not your booking", errorMessage(t, w))

	w = performRequest(router, http.MethodPut, url, map[string]interface{}{"userId": 3, "time": "19:00", "people": 5, "comment": "late"})
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	decode(t, w, &resp)
	assert.Equal(t, float64(1), resp["updated"])

	var b models.Booking
	require.NoError(t, db.First(&b, id).Error)
	assert.Equal(t, "19:00", b.Time)
	assert.Equal(t, 5, b.People)
	assert.Equal(t, "late", b.Comment)
	assert.Equal(t, models.TableReserved, tableStatus(t, db, table.ID))
}

func TestCancelBookingEndpoint(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, db, "T1", models.TableAvailable)
	router := setupBookingRouter(db)

	id := createBooking(t, router, map[string]interface{}{
		"userId": 1, "tableId": table.ID, "date": "2024-01-01", "time": "18:00", "people": 4,
	})
	url := fmt.Sprintf("/api/bookings/%d", id)

	w := performRequest(router, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, models.TableAvailable, tableStatus(t, db, table.ID))

	w = performRequest(router, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", errorMessage(t, w))

	w = performRequest(router, http.MethodDelete, "/api/bookings/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingEndpointsAcceptNumericStrings(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, db, "T1", models.TableAvailable)
	router := setupBookingRouter(db)

	id := createBooking(t, router, map[string]interface{}{
		"userId": 1, "tableId": table.ID, "date": "2024-01-01", "time": "18:00", "people": "4",
	})
	var b models.Booking
	require.NoError(t, db.First(&b, id).Error)
	assert.Equal(t, 4, b.People)

	w := performRequest(router, http.MethodPut, fmt.Sprintf("/api/bookings/%d", id), map[string]interface{}{
		"time": "19:00", "people": "3",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, db.First(&b, id).Error)
	assert.Equal(t, 3, b.People)
	assert.Equal(t, "19:00", b.Time)

	// string kosong atau bukan angka tetap dianggap tidak ada
	w = performRequest(router, http.MethodPost, "/api/bookings", map[string]interface{}{
		"userId": 1, "tableId": table.ID, "date": "2024-01-01", "time": "18:00", "people": "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", errorMessage(t, w))

	w = performRequest(router, http.MethodPut, fmt.Sprintf("/api/bookings/%d", id), map[string]interface{}{
		"time": "19:00", "people": "lots",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing fields: time, people", errorMessage(t, w))
}

func TestUpdateBookingWithoutCommentClearsIt(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, db, "T1", models.TableAvailable)
	router := setupBookingRouter(db)

	id := createBooking(t, router, map[string]interface{}{
		"userId": 1, "tableId": table.ID, "date": "2024-01-01", "time": "18:00", "people": 2, "comment": "window",
	})

	w := performRequest(router, http.MethodPut, fmt.Sprintf("/api/bookings/%d", id), map[string]interface{}{
		"time": "19:00", "people": 2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var b models.Booking
	require.NoError(t, db.First(&b, id).Error)
	assert.Equal(t, "19:00", b.Time)
	assert.Equal(t, "", b.Comment)
}
