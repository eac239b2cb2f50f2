package models

type Promotion struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
	Desc   string `gorm:"column:description;type:text" json:"desc"`
	Date   string `gorm:"type:varchar(50)" json:"date"`
	Status string `gorm:"type:varchar(50)" json:"status"`
	Image  string `gorm:"type:varchar(255)" json:"image"`
}
