package models

import "time"

const (
	TableAvailable   = "Available"
	TableUnavailable = "Unavailable"
	TableReserved    = "Reserved"
)

type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"tableNumber"`
	Seats       int       `gorm:"not null;default:6" json:"seats"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// ValidTableStatus -> hanya tiga status yang diizinkan
func ValidTableStatus(status string) bool {
	switch status {
	case TableAvailable, TableUnavailable, TableReserved:
		return true
	}
	return false
}
