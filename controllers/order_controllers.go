package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/utils"
)

var (
	ErrNoItems            = errors.New("No items in order")
	ErrInvalidOrderStatus = errors.New("Invalid status")
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

type tableOrderView struct {
	OrderID   uint               `json:"orderId"`
	TableNo   string             `json:"table_no"`
	Total     float64            `json:"total"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []models.OrderItem `json:"items"`
}

func newTableOrderView(o models.Order) tableOrderView {
	items := o.Items
	if items == nil {
		items = []models.OrderItem{}
	}
	return tableOrderView{
		OrderID:   o.ID,
		TableNo:   o.TableNo,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		Items:     items,
	}
}

// CreateOrder -> order baru status Pending; order dan item dalam satu transaksi
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		TableNo models.Identifier `json:"table_no"`
		Items   []struct {
			MenuID uint    `json:"menu_id"`
			Name   string  `json:"name"`
			Price  float64 `json:"price"`
			Qty    int     `json:"qty"`
		} `json:"items"`
		Total *float64 `json:"total"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(req.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrNoItems)
		return
	}

	order := models.Order{
		TableNo: strings.TrimSpace(req.TableNo.String()),
		Status:  models.OrderPending,
	}
	for _, it := range req.Items {
		qty := it.Qty
		if qty <= 0 {
			qty = 1
		}
		order.Items = append(order.Items, models.OrderItem{
			MenuID: it.MenuID,
			Name:   it.Name,
			Price:  it.Price,
			Qty:    qty,
		})
	}
	order.Total = order.ComputeTotal()
	if req.Total != nil {
		order.Total = *req.Total
	}

	// Create dengan association menyimpan items di transaksi yang sama
	err := oc.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d created for table %s (%d items, total=%.2f)", order.ID, order.TableNo, len(order.Items), order.Total)
	utils.RespondJSON(c, http.StatusCreated, gin.H{"success": true, "orderId": order.ID})
}

// GetOrders -> semua order terbaru dulu, atau order terakhir satu meja bila ada ?table_no=
func (oc *OrderController) GetOrders(c *gin.Context) {
	if tableNo := c.Query("table_no"); tableNo != "" {
		oc.respondLatest(c, tableNo)
		return
	}

	orders := []models.Order{}
	if err := oc.DB.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, orders)
}

// GetLatestByTable -> order terakhir untuk meja
func (oc *OrderController) GetLatestByTable(c *gin.Context) {
	oc.respondLatest(c, c.Param("table_no"))
}

func (oc *OrderController) respondLatest(c *gin.Context, tableNo string) {
	var order models.Order
	err := oc.DB.Preload("Items").Where("table_no = ?", tableNo).
		Order("created_at DESC, id DESC").First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondJSON(c, http.StatusOK, gin.H{"items": []models.OrderItem{}})
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, newTableOrderView(order))
}

// GetOrdersByTable -> seluruh order satu meja beserta item
func (oc *OrderController) GetOrdersByTable(c *gin.Context) {
	var orders []models.Order
	err := oc.DB.Preload("Items").Where("table_no = ?", c.Param("table_no")).
		Order("created_at DESC, id DESC").Find(&orders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]tableOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newTableOrderView(o))
	}
	utils.RespondJSON(c, http.StatusOK, views)
}

// ListOrdersWithItems -> untuk layar dapur/monitor
func (oc *OrderController) ListOrdersWithItems(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("Items").Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]tableOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newTableOrderView(o))
	}
	utils.RespondJSON(c, http.StatusOK, views)
}

func (oc *OrderController) GetOrderItems(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	items := []models.OrderItem{}
	if err := oc.DB.Where("order_id = ?", id).Order("id ASC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !models.ValidOrderStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidOrderStatus)
		return
	}

	res := oc.DB.Model(&models.Order{}).Where("id = ?", id).Update("status", body.Status)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	utils.InfoLogger.Printf("Order %d status changed to %s", id, body.Status)
	utils.RespondJSON(c, http.StatusOK, gin.H{"updated": res.RowsAffected})
}

// DeleteOrder -> hapus item lalu order
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var deleted int64
	err := oc.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Order{}, id)
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true, "deleted": deleted})
}
