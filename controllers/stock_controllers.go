package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/utils"
	"gorm.io/gorm"
)

type StockController struct {
	DB           *gorm.DB
	LowThreshold int
}

func NewStockController(db *gorm.DB, lowThreshold int) *StockController {
	return &StockController{DB: db, LowThreshold: lowThreshold}
}

func (sc *StockController) GetStock(c *gin.Context) {
	items := []models.StockItem{}
	if err := sc.DB.Order("id ASC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

// CreateStock -> status dihitung dari remaining, bukan dari input client
func (sc *StockController) CreateStock(c *gin.Context) {
	var req struct {
		OrderID      string          `json:"orderId"`
		Product      string          `json:"product" binding:"required"`
		Amount       string          `json:"amount"`
		SalesChannel string          `json:"salesChannel"`
		Remaining    models.Quantity `json:"remaining"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.StockItem{
		OrderID:      req.OrderID,
		Product:      req.Product,
		Amount:       req.Amount,
		SalesChannel: req.SalesChannel,
		Remaining:    req.Remaining.Int(),
		Status:       models.StockStatus(req.Remaining.Int(), sc.LowThreshold),
	}
	if err := sc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, gin.H{"success": true, "id": item.ID})
}

func (sc *StockController) DeleteStock(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res := sc.DB.Delete(&models.StockItem{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"deleted": res.RowsAffected})
}

// ExportStock -> unduh stok sebagai file xlsx
func (sc *StockController) ExportStock(c *gin.Context) {
	var items []models.StockItem
	if err := sc.DB.Order("id ASC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	sheet := utils.NewSheetWriter("Stock")
	defer sheet.Close()

	if err := sheet.WriteHeader([]string{"Order ID", "Product", "Amount", "Sales Channel", "Remaining", "Status"}); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for _, it := range items {
		if err := sheet.WriteRow([]interface{}{it.OrderID, it.Product, it.Amount, it.SalesChannel, it.Remaining, it.Status}); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	filename := fmt.Sprintf("stock-%s.xlsx", time.Now().Format("20060102"))
	writeXLSX(c, filename, sheet)
}

func writeXLSX(c *gin.Context, filename string, sheet *utils.SheetWriter) {
	c.Header("Content-Type", utils.XLSXContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if err := sheet.Write(c.Writer); err != nil {
		utils.ErrorLogger.Printf("write %s: %v", filename, err)
	}
}
