package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/services"
	"github.com/yeremiapane/ranahan-restaurant/utils"
)

type BookingController struct {
	Manager *services.BookingManager
}

func NewBookingController(manager *services.BookingManager) *BookingController {
	return &BookingController{Manager: manager}
}

type bookingView struct {
	ID      uint   `json:"id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	People  int    `json:"people"`
	TableID uint   `json:"tableId"`
	Comment string `json:"comment"`
	Status  string `json:"status"`
}

// CreateBooking -> reservasi meja; meja harus Available
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req struct {
		UserID  models.Identifier `json:"userId"`
		TableID models.Identifier `json:"tableId"`
		Date    string            `json:"date"`
		Time    string            `json:"time"`
		People  models.Quantity   `json:"people"`
		Comment string            `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	// tableId non-angka diperlakukan sebagai kosong
	tableID, _ := strconv.ParseUint(req.TableID.String(), 10, 64)

	id, err := bc.Manager.CreateBooking(c.Request.Context(), services.CreateBookingInput{
		UserID:  req.UserID,
		TableID: uint(tableID),
		Date:    req.Date,
		Time:    req.Time,
		People:  req.People.Int(),
		Comment: req.Comment,
	})
	if err != nil {
		respondServiceError(c, err, http.StatusBadRequest)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, gin.H{"id": id})
}

// GetBookingsByUser -> booking milik user, terbaru dulu
func (bc *BookingController) GetBookingsByUser(c *gin.Context) {
	bookings, err := bc.Manager.ListBookingsByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondServiceError(c, err, http.StatusNotFound)
		return
	}

	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, bookingView{
			ID:      b.ID,
			Date:    b.Date,
			Time:    b.Time,
			People:  b.People,
			TableID: b.TableID,
			Comment: b.Comment,
			Status:  b.Status,
		})
	}
	utils.RespondJSON(c, http.StatusOK, views)
}

// UpdateBooking -> ubah time/people/comment; comment yang tidak dikirim menjadi kosong.
// Requester diambil dari body (userId/username), lalu dari sesi.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		UserID   models.Identifier `json:"userId"`
		Username string            `json:"username"`
		Time     string            `json:"time"`
		People   models.Quantity   `json:"people"`
		Comment  string            `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Missing fields: time, people")
		return
	}

	requester := req.UserID.String()
	if requester == "" {
		requester = req.Username
	}
	if requester == "" {
		requester = c.GetString("username")
	}

	updated, err := bc.Manager.UpdateBooking(c.Request.Context(), id, services.UpdateBookingInput{
		Requester: requester,
		Time:      req.Time,
		People:    req.People.Int(),
		Comment:   req.Comment,
	})
	if err != nil {
		respondServiceError(c, err, http.StatusNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"updated": updated})
}

// CancelBooking -> hapus booking, meja kembali Available
func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := bc.Manager.CancelBooking(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, http.StatusNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"ok": true})
}
