package models

import "time"

const (
	OrderPending   = "Pending"
	OrderAccepted  = "Accepted"
	OrderCancelled = "Cancelled"
)

type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	TableNo   string      `gorm:"type:varchar(50);index;not null" json:"table_no"`
	Total     float64     `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	Status    string      `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderPending, OrderAccepted, OrderCancelled:
		return true
	}
	return false
}

// ComputeTotal menjumlahkan price * qty seluruh item
func (o *Order) ComputeTotal() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.Price * float64(it.Qty)
	}
	return total
}
