package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/ranahan-restaurant/metrics"
	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/queue"
	"github.com/yeremiapane/ranahan-restaurant/utils"
	"gorm.io/gorm"
)

type BookingManager struct {
	DB        *gorm.DB
	Tables    *TableRegistry
	Users     *UserDirectory
	Publisher queue.Publisher
}

func NewBookingManager(db *gorm.DB, tables *TableRegistry, users *UserDirectory, publisher queue.Publisher) *BookingManager {
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	return &BookingManager{DB: db, Tables: tables, Users: users, Publisher: publisher}
}

type CreateBookingInput struct {
	UserID  models.Identifier
	TableID uint
	Date    string
	Time    string
	People  int
	Comment string
}

type UpdateBookingInput struct {
	// Requester kosong berarti kepemilikan tidak dicek.
	Requester string
	Time      string
	People    int
	// comment selalu ditulis ulang; kosong berarti comment dihapus
	Comment string
}

// CreateBooking -> cek meja, reservasi meja dan simpan booking dalam satu transaksi
func (m *BookingManager) CreateBooking(ctx context.Context, in CreateBookingInput) (uint, error) {
	if in.UserID.Empty() || in.TableID == 0 || strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.Time) == "" || in.People <= 0 {
		return 0, newError(ErrValidation, "Missing required fields")
	}

	userID, err := m.Users.ResolveUserID(ctx, in.UserID.String())
	if err != nil {
		return 0, err
	}

	booking := models.Booking{
		UserID:  userID,
		TableID: in.TableID,
		Date:    strings.TrimSpace(in.Date),
		Time:    strings.TrimSpace(in.Time),
		People:  in.People,
		Comment: in.Comment,
		Status:  models.BookingReserved,
	}

	err = m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Select("id", "status").First(&table, in.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newError(ErrNotFound, "Table not found")
			}
			return err
		}
		if table.Status != models.TableAvailable {
			return newError(ErrConflict, "Table is not available")
		}

		// status bisa berubah sejak dibaca, CAS yang menentukan
		if err := m.Tables.ReserveTx(tx, table.ID); err != nil {
			return err
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			metrics.IncBookingConflict()
			utils.InfoLogger.WithFields(logrus.Fields{
				"table_id": in.TableID,
				"user_id":  userID,
			}).Warn("booking rejected, table not available")
		}
		return 0, err
	}

	metrics.IncBookingCreated()
	m.Tables.statusChanged(ctx, booking.TableID, models.TableReserved)
	utils.InfoLogger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"table_id":   booking.TableID,
		"user_id":    booking.UserID,
	}).Info("booking created")

	m.publish(ctx, queue.KeyBookingCreated, queue.BookingEvent{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		TableID:    booking.TableID,
		Date:       booking.Date,
		Time:       booking.Time,
		People:     booking.People,
		OccurredAt: time.Now(),
	})
	return booking.ID, nil
}

// ListBookingsByUser -> terbaru dulu; username yang tidak dikenal menghasilkan list kosong
func (m *BookingManager) ListBookingsByUser(ctx context.Context, identifier string) ([]models.Booking, error) {
	bookings := []models.Booking{}

	userID, err := m.Users.ResolveUserID(ctx, identifier)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
		return bookings, nil
	}
	if err != nil {
		return nil, err
	}

	if err := m.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	for i := range bookings {
		bookings[i].Status = models.BookingReserved
	}
	return bookings, nil
}

// UpdateBooking -> hanya time, people dan comment. Tabel dan tanggal tetap.
func (m *BookingManager) UpdateBooking(ctx context.Context, bookingID uint, in UpdateBookingInput) (int64, error) {
	if strings.TrimSpace(in.Time) == "" || in.People <= 0 {
		return 0, newError(ErrValidation, "Missing fields: time, people")
	}

	var booking models.Booking
	err := m.DB.WithContext(ctx).First(&booking, bookingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, newError(ErrNotFound, "Booking not found")
	}
	if err != nil {
		return 0, err
	}

	query := m.DB.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", bookingID)

	ownerChecked := false
	if strings.TrimSpace(in.Requester) != "" {
		requesterID, err := m.Users.ResolveUserID(ctx, in.Requester)
		switch {
		case err == nil:
			if requesterID != booking.UserID {
				return 0, newError(ErrForbidden, "Forbidden: not your booking")
			}
			ownerChecked = true
			query = query.Where("user_id = ?", requesterID)
		case errors.Is(err, ErrNotFound):
		default:
			return 0, err
		}
	}
	if !ownerChecked {
		// tanpa requester yang dikenal, edit tetap jalan dan hanya dicatat
		utils.InfoLogger.WithFields(logrus.Fields{
			"booking_id": bookingID,
			"requester":  in.Requester,
		}).Warn("booking updated without ownership check")
	}

	res := query.Updates(map[string]interface{}{
		"time":    strings.TrimSpace(in.Time),
		"people":  in.People,
		"comment": in.Comment,
	})
	if res.Error != nil {
		return 0, res.Error
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"booking_id": bookingID,
		"updated":    res.RowsAffected,
	}).Info("booking updated")
	return res.RowsAffected, nil
}

// CancelBooking -> hapus booking lalu set meja ke Available, walaupun meja sempat di-set Unavailable oleh staff
func (m *BookingManager) CancelBooking(ctx context.Context, bookingID uint) error {
	var booking models.Booking
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newError(ErrNotFound, "Booking not found")
			}
			return err
		}
		if err := tx.Delete(&models.Booking{}, booking.ID).Error; err != nil {
			return err
		}
		return m.Tables.ReleaseTx(tx, booking.TableID)
	})
	if err != nil {
		return err
	}

	metrics.IncBookingCancelled()
	m.Tables.statusChanged(ctx, booking.TableID, models.TableAvailable)
	utils.InfoLogger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"table_id":   booking.TableID,
	}).Info("booking cancelled")

	m.publish(ctx, queue.KeyBookingCancelled, queue.BookingEvent{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		TableID:    booking.TableID,
		OccurredAt: time.Now(),
	})
	return nil
}

func (m *BookingManager) publish(ctx context.Context, key string, event interface{}) {
	if err := m.Publisher.Publish(ctx, key, event); err != nil {
		utils.ErrorLogger.Printf("publish %s failed: %v", key, err)
	}
}
