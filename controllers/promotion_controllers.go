package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/utils"
	"gorm.io/gorm"
)

var ErrPromotionNotFound = errors.New("Promotion not found")

type PromotionController struct {
	DB *gorm.DB
}

func NewPromotionController(db *gorm.DB) *PromotionController {
	return &PromotionController{DB: db}
}

type promotionRequest struct {
	Name   string `json:"name" binding:"required"`
	Desc   string `json:"desc"`
	Date   string `json:"date"`
	Status string `json:"status"`
	Image  string `json:"image"`
}

func (pc *PromotionController) GetAllPromotions(c *gin.Context) {
	promotions := []models.Promotion{}
	if err := pc.DB.Order("id ASC").Find(&promotions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, promotions)
}

func (pc *PromotionController) GetPromotionByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var promo models.Promotion
	if err := pc.DB.First(&promo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, ErrPromotionNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, promo)
}

func (pc *PromotionController) CreatePromotion(c *gin.Context) {
	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	promo := models.Promotion{
		Name:   req.Name,
		Desc:   req.Desc,
		Date:   req.Date,
		Status: req.Status,
		Image:  req.Image,
	}
	if err := pc.DB.Create(&promo).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, gin.H{"id": promo.ID})
}

func (pc *PromotionController) UpdatePromotion(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res := pc.DB.Model(&models.Promotion{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        req.Name,
		"description": req.Desc,
		"date":        req.Date,
		"status":      req.Status,
		"image":       req.Image,
	})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"updated": res.RowsAffected})
}

func (pc *PromotionController) DeletePromotion(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res := pc.DB.Delete(&models.Promotion{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"deleted": res.RowsAffected})
}
