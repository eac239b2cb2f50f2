package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/services"
	"github.com/yeremiapane/ranahan-restaurant/utils"
	"gorm.io/gorm"
)

var ErrMenuNotFound = errors.New("Menu not found")

type MenuController struct {
	DB    *gorm.DB
	Cache *services.MenuCache
}

func NewMenuController(db *gorm.DB, cache *services.MenuCache) *MenuController {
	return &MenuController{DB: db, Cache: cache}
}

type menuRequest struct {
	EnglishName string  `json:"englishName" binding:"required"`
	Desc        string  `json:"desc"`
	Type        string  `json:"type"`
	Price       float64 `json:"price" binding:"gte=0"`
	Image       string  `json:"image"`
}

// GetAllMenus -> list menu, ?type= untuk filter (filter tidak lewat cache)
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	ctx := c.Request.Context()
	menuType := c.Query("type")

	if menuType == "" {
		if items, ok := mc.Cache.Get(ctx); ok {
			utils.RespondJSON(c, http.StatusOK, items)
			return
		}
	}

	items := []models.MenuItem{}
	query := mc.DB.WithContext(ctx).Order("id ASC")
	if menuType != "" {
		query = query.Where("type = ?", menuType)
	}
	if err := query.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if menuType == "" {
		mc.Cache.Set(ctx, items)
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, ErrMenuNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		EnglishName: req.EnglishName,
		Desc:        req.Desc,
		Type:        req.Type,
		Price:       req.Price,
		Image:       req.Image,
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	mc.Cache.Invalidate(c.Request.Context())

	utils.InfoLogger.Printf("Menu created: %s (id=%d)", item.EnglishName, item.ID)
	utils.RespondJSON(c, http.StatusCreated, gin.H{"id": item.ID})
}

func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res := mc.DB.Model(&models.MenuItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"english_name": req.EnglishName,
		"description":  req.Desc,
		"type":         req.Type,
		"price":        req.Price,
		"image":        req.Image,
	})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	mc.Cache.Invalidate(c.Request.Context())
	utils.RespondJSON(c, http.StatusOK, gin.H{"updated": res.RowsAffected})
}

func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res := mc.DB.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	mc.Cache.Invalidate(c.Request.Context())
	utils.RespondJSON(c, http.StatusOK, gin.H{"deleted": res.RowsAffected})
}
