package models

import "time"

// Payment hanya catatan pembayaran; tidak ada proses ke payment gateway.
type Payment struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	OrderID  uint          `gorm:"index" json:"order_id"`
	TableNo  string        `gorm:"type:varchar(50)" json:"table_no"`
	Items    []PaymentItem `gorm:"type:text;serializer:json" json:"items"`
	Subtotal float64       `gorm:"type:decimal(10,2)" json:"subtotal"`
	Vat      float64       `gorm:"type:decimal(10,2)" json:"vat"`
	Total    float64       `gorm:"type:decimal(10,2)" json:"total"`
	Method   string        `gorm:"type:varchar(50);not null;default:'unknown'" json:"method"`
	PaidAt   time.Time     `gorm:"index" json:"paid_at"`
}

type PaymentItem struct {
	MenuID uint    `json:"menu_id,omitempty"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Qty    int     `json:"qty"`
}
