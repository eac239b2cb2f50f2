package database

import (
	"fmt"
	"os"
	"strings"

	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/utils"
	"gorm.io/gorm"
)

// SeedFromFile menjalankan file SQL hanya jika tabel menu masih kosong.
// Mengembalikan jumlah statement yang berhasil.
func SeedFromFile(db *gorm.DB, path string) (int, error) {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	seedSQL, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	executed := 0
	for _, stmt := range splitStatements(string(seedSQL)) {
		if err := db.Exec(stmt).Error; err != nil {
			utils.ErrorLogger.Printf("Error executing seed: %v\nStatement: %s", err, stmt)
			continue
		}
		executed++
	}
	utils.InfoLogger.Printf("Seeded %d statements from %s", executed, path)
	return executed, nil
}

// splitStatements memecah per ';' dan membuang baris komentar "--"
func splitStatements(sql string) []string {
	var lines []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var out []string
	for _, stmt := range strings.Split(strings.Join(lines, "\n"), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}

var sampleStock = []models.StockItem{
	{OrderID: "OD-1001", Product: "Beef", Amount: "5 kg", SalesChannel: "Dine-in", Remaining: 85},
	{OrderID: "OD-1002", Product: "Pork", Amount: "3 kg", SalesChannel: "Delivery", Remaining: 60},
	{OrderID: "OD-1003", Product: "Chicken", Amount: "2 kg", SalesChannel: "Takeaway", Remaining: 18},
	{OrderID: "OD-1004", Product: "Thai Chili", Amount: "1 kg", SalesChannel: "Dine-in", Remaining: 12},
	{OrderID: "OD-1005", Product: "Rice", Amount: "20 kg", SalesChannel: "Delivery", Remaining: 75},
}

// SeedStock -> contoh stok bila tabel stock kosong
func SeedStock(db *gorm.DB, lowThreshold int) error {
	var count int64
	if err := db.Model(&models.StockItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := make([]models.StockItem, len(sampleStock))
	copy(items, sampleStock)
	for i := range items {
		items[i].Status = models.StockStatus(items[i].Remaining, lowThreshold)
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded %d sample stock rows", len(items))
	return nil
}

// SeedTables membuat meja T1..Tn bila belum ada meja sama sekali
func SeedTables(db *gorm.DB, n int) error {
	if n <= 0 {
		return nil
	}
	var count int64
	if err := db.Model(&models.Table{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tables := make([]models.Table, 0, n)
	for i := 1; i <= n; i++ {
		tables = append(tables, models.Table{
			TableNumber: fmt.Sprintf("T%d", i),
			Seats:       6,
			Status:      models.TableAvailable,
		})
	}
	return db.Create(&tables).Error
}
