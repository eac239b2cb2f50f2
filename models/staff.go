package models

type Staff struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StaffID   string `gorm:"column:staff_id;type:varchar(50);uniqueIndex;not null" json:"staffId"`
	Fname     string `gorm:"type:varchar(100)" json:"fname"`
	Lname     string `gorm:"type:varchar(100)" json:"lname"`
	Email     string `gorm:"type:varchar(255)" json:"email"`
	Contact   string `gorm:"type:varchar(50)" json:"contact"`
	Priority  string `gorm:"type:varchar(50)" json:"priority"`
	Image     string `gorm:"type:varchar(255)" json:"image"`
	WorkDays  string `gorm:"type:varchar(255)" json:"workDays"`
	ShiftTime string `gorm:"type:varchar(100)" json:"shiftTime"`
}

func (Staff) TableName() string {
	return "staff"
}
