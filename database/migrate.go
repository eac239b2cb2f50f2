package database

import (
	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/utils"
	"gorm.io/gorm"
)

// Models -> seluruh tabel yang dikelola aplikasi
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Table{},
		&models.Booking{},
		&models.Promotion{},
		&models.MenuItem{},
		&models.StockItem{},
		&models.Staff{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
