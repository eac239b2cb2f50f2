package models

type MenuItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	EnglishName string  `gorm:"type:varchar(255);not null" json:"englishName"`
	Desc        string  `gorm:"column:description;type:text" json:"desc"`
	Type        string  `gorm:"type:varchar(50);index" json:"type"`
	Price       float64 `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	Image       string  `gorm:"type:varchar(255)" json:"image"`
}

func (MenuItem) TableName() string {
	return "menu"
}
