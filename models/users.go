package models

import "time"

const (
	RoleManager  = "manager"
	RoleStaff    = "staff"
	RoleMonitor  = "monitor"
	RoleCustomer = "customer"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleManager, RoleStaff, RoleMonitor, RoleCustomer:
		return true
	}
	return false
}
