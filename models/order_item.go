package models

type OrderItem struct {
	ID      uint    `gorm:"primaryKey" json:"-"`
	OrderID uint    `gorm:"index;not null" json:"-"`
	MenuID  uint    `gorm:"not null" json:"menu_id"`
	Name    string  `gorm:"type:varchar(255)" json:"name"`
	Price   float64 `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	Qty     int     `gorm:"not null;default:1" json:"qty"`
}
