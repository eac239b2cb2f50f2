package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/utils"
	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("Payment not found")

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// CreatePayment -> hanya mencatat pembayaran, method default "unknown"
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req struct {
		OrderID  uint                 `json:"order_id"`
		TableNo  models.Identifier    `json:"table_no"`
		Items    []models.PaymentItem `json:"items"`
		Subtotal float64              `json:"subtotal"`
		Vat      float64              `json:"vat"`
		Total    float64              `json:"total"`
		Method   string               `json:"method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment := models.Payment{
		OrderID:  req.OrderID,
		TableNo:  req.TableNo.String(),
		Items:    req.Items,
		Subtotal: req.Subtotal,
		Vat:      req.Vat,
		Total:    req.Total,
		Method:   req.Method,
		PaidAt:   time.Now(),
	}
	if payment.Method == "" {
		payment.Method = "unknown"
	}
	if payment.Items == nil {
		payment.Items = []models.PaymentItem{}
	}

	if err := pc.DB.Create(&payment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Payment %d recorded for order %d (%s, %s)", payment.ID, payment.OrderID, payment.Method, utils.FormatCurrencyTHB(payment.Total))
	utils.RespondJSON(c, http.StatusCreated, gin.H{"success": true, "id": payment.ID})
}

func (pc *PaymentController) GetPayments(c *gin.Context) {
	payments := []models.Payment{}
	if err := pc.DB.Order("paid_at DESC, id DESC").Find(&payments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, payments)
}

// GetReceipt -> struk PDF satu pembayaran
func (pc *PaymentController) GetReceipt(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payment models.Payment
	if err := pc.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, ErrPaymentNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var buf bytes.Buffer
	if err := utils.WriteReceiptPDF(&buf, payment); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=\"receipt-%d.pdf\"", payment.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// ExportPayments -> rekap pembayaran sebagai xlsx
func (pc *PaymentController) ExportPayments(c *gin.Context) {
	var payments []models.Payment
	if err := pc.DB.Order("paid_at DESC, id DESC").Find(&payments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	sheet := utils.NewSheetWriter("Payments")
	defer sheet.Close()

	header := []string{"ID", "Order ID", "Table", "Items", "Subtotal", "VAT", "Total", "Method", "Paid At"}
	if err := sheet.WriteHeader(header); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for _, p := range payments {
		row := []interface{}{p.ID, p.OrderID, p.TableNo, len(p.Items), p.Subtotal, p.Vat, p.Total, p.Method, p.PaidAt.Format(time.RFC3339)}
		if err := sheet.WriteRow(row); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	writeXLSX(c, fmt.Sprintf("payments-%s.xlsx", time.Now().Format("20060102")), sheet)
}
