package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/ranahan-restaurant/controllers"
	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/services"
	"gorm.io/gorm"
)

func setupMenuRouter(db *gorm.DB, cache *services.MenuCache) *gin.Engine {
	router := gin.New()
	menuCtrl := controllers.NewMenuController(db, cache)
	router.GET("/api/menu", menuCtrl.GetAllMenus)
	router.GET("/api/menu/:id", menuCtrl.GetMenuByID)
	router.POST("/api/menu", menuCtrl.CreateMenu)
	router.PUT("/api/menu/:id", menuCtrl.UpdateMenu)
	router.DELETE("/api/menu/:id", menuCtrl.DeleteMenu)
	return router
}

func TestMenuCRUD(t *testing.T) {
	db := setupTestDB(t)
	router := setupMenuRouter(db, nil)

	w := performRequest(router, http.MethodPost, "/api/menu", map[string]interface{}{
		"englishName": "Pad Thai", "desc": "noodles", "type": "Main", "price": 120, "image": "padthai.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created map[string]interface{}
	decode(t, w, &created)
	id := uint(created["id"].(float64))
	url := fmt.Sprintf("/api/menu/%d", id)

	w = performRequest(router, http.MethodGet, url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var item map[string]interface{}
	decode(t, w, &item)
	assert.Equal(t, "Pad Thai", item["englishName"])
	assert.Equal(t, "noodles", item["desc"])

	w = performRequest(router, http.MethodPut, url, map[string]interface{}{
		"englishName": "Pad Thai Goong", "desc": "with shrimp", "type": "Main", "price": 150,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":1}`, w.Body.String())

	w = performRequest(router, http.MethodGet, "/api/menu?type=Main", nil)
	var items []models.MenuItem
	decode(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, 150.0, items[0].Price)

	w = performRequest(router, http.MethodDelete, url, nil)
	assert.JSONEq(t, `{"deleted":1}`, w.Body.String())

	w = performRequest(router, http.MethodGet, url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Menu not found", errorMessage(t, w))
}

func TestMenuListUsesCache(t *testing.T) {
	db := setupTestDB(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	router := setupMenuRouter(db, services.NewMenuCache(client, time.Minute))

	require.NoError(t, db.Create(&models.MenuItem{EnglishName: "Som Tam", Type: "Salad", Price: 90}).Error)

	w := performRequest(router, http.MethodGet, "/api/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mr.Exists("menu:all"))

	// tulis langsung ke DB tanpa controller, list masih dari cache
	require.NoError(t, db.Create(&models.MenuItem{EnglishName: "Larb", Type: "Salad", Price: 100}).Error)
	var items []models.MenuItem
	decode(t, performRequest(router, http.MethodGet, "/api/menu", nil), &items)
	assert.Len(t, items, 1)

	// write lewat controller meng-invalidate cache
	w = performRequest(router, http.MethodPost, "/api/menu", map[string]interface{}{"englishName": "Khao Pad", "price": 80})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.False(t, mr.Exists("menu:all"))

	decode(t, performRequest(router, http.MethodGet, "/api/menu", nil), &items)
	assert.Len(t, items, 3)
}

func TestCreateMenuValidation(t *testing.T) {
	db := setupTestDB(t)
	router := setupMenuRouter(db, nil)

	w := performRequest(router, http.MethodPost, "/api/menu", map[string]interface{}{"price": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, http.MethodPost, "/api/menu", map[string]interface{}{"englishName": "X", "price": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
