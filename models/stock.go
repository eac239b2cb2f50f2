package models

const (
	StockLow  = "Low"
	StockHigh = "High"
)

type StockItem struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	OrderID      string `gorm:"column:order_id;type:varchar(50)" json:"orderId"`
	Product      string `gorm:"type:varchar(255);not null" json:"product"`
	Amount       string `gorm:"type:varchar(50)" json:"amount"`
	SalesChannel string `gorm:"type:varchar(50);not null;default:''" json:"salesChannel"`
	Remaining    int    `gorm:"not null;default:0" json:"remaining"`
	Status       string `gorm:"type:varchar(10)" json:"status"`
}

func (StockItem) TableName() string {
	return "stock"
}

// StockStatus -> "Low" jika sisa di bawah threshold
func StockStatus(remaining, threshold int) string {
	if remaining < threshold {
		return StockLow
	}
	return StockHigh
}
