package models

import "time"

const BookingReserved = "Reserved"

// Booking adalah reservasi meja milik satu user.
// Tabel dan tanggal tidak berubah setelah dibuat; hanya time/people/comment yang bisa diedit.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	TableID   uint      `gorm:"index;not null" json:"tableId"`
	Date      string    `gorm:"type:varchar(20);not null" json:"date"`
	Time      string    `gorm:"type:varchar(20);not null" json:"time"`
	People    int       `gorm:"not null" json:"people"`
	Comment   string    `gorm:"type:text" json:"comment"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Reserved'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
