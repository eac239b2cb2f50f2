package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/ranahan-restaurant/metrics"
	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/queue"
	"github.com/yeremiapane/ranahan-restaurant/utils"
	"gorm.io/gorm"
)

// TableRegistry satu-satunya jalur penulisan kolom tables.status.
type TableRegistry struct {
	DB        *gorm.DB
	Publisher queue.Publisher
}

func NewTableRegistry(db *gorm.DB, publisher queue.Publisher) *TableRegistry {
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	return &TableRegistry{DB: db, Publisher: publisher}
}

func (r *TableRegistry) ListTables(ctx context.Context) ([]models.Table, error) {
	tables := []models.Table{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *TableRegistry) GetTableStatus(ctx context.Context, tableID uint) (string, error) {
	var table models.Table
	err := r.DB.WithContext(ctx).Select("id", "status").First(&table, tableID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", newError(ErrNotFound, "Table not found")
	}
	if err != nil {
		return "", err
	}
	return table.Status, nil
}

// SetTableStatus -> edit langsung oleh staff, transisi apa saja diizinkan.
// Mengembalikan jumlah baris yang berubah (0 = id tidak ada).
func (r *TableRegistry) SetTableStatus(ctx context.Context, tableID uint, status string) (int64, error) {
	if !models.ValidTableStatus(status) {
		return 0, newError(ErrValidation, "Invalid status")
	}

	res := r.DB.WithContext(ctx).Model(&models.Table{}).Where("id = ?", tableID).Update("status", status)
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected > 0 {
		r.statusChanged(ctx, tableID, status)
	}
	return res.RowsAffected, nil
}

// ReserveTx -> Available ke Reserved secara compare-and-swap di dalam tx.
func (r *TableRegistry) ReserveTx(tx *gorm.DB, tableID uint) error {
	res := tx.Model(&models.Table{}).
		Where("id = ? AND status = ?", tableID, models.TableAvailable).
		Update("status", models.TableReserved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return newError(ErrConflict, "Table is not available")
	}
	return nil
}

// ReleaseTx -> kembali ke Available tanpa syarat status sebelumnya.
func (r *TableRegistry) ReleaseTx(tx *gorm.DB, tableID uint) error {
	return tx.Model(&models.Table{}).Where("id = ?", tableID).Update("status", models.TableAvailable).Error
}

// statusChanged dipanggil setelah commit.
func (r *TableRegistry) statusChanged(ctx context.Context, tableID uint, status string) {
	metrics.IncTableStatusChange(status)
	utils.InfoLogger.WithFields(logrus.Fields{
		"table_id": tableID,
		"status":   status,
	}).Info("table status changed")

	event := queue.TableStatusEvent{TableID: tableID, Status: status, OccurredAt: time.Now()}
	if err := r.Publisher.Publish(ctx, queue.KeyTableStatusChanged, event); err != nil {
		utils.ErrorLogger.Printf("publish %s failed: %v", queue.KeyTableStatusChanged, err)
	}
}
