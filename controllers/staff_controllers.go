package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/utils"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound = errors.New("Staff not found")
	ErrStaffIDExists = errors.New("Staff ID already exists")
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

type staffRequest struct {
	StaffID   string `json:"staffId" binding:"required"`
	Fname     string `json:"fname"`
	Lname     string `json:"lname"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	Priority  string `json:"priority"`
	Image     string `json:"image"`
	WorkDays  string `json:"workDays"`
	ShiftTime string `json:"shiftTime"`
}

func (sc *StaffController) GetAllStaff(c *gin.Context) {
	staff := []models.Staff{}
	if err := sc.DB.Order("id ASC").Find(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, staff)
}

func (sc *StaffController) GetStaffByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var s models.Staff
	if err := sc.DB.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, ErrStaffNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, s)
}

// staffIDTaken -> staffId dipakai record lain selain excludeID
func (sc *StaffController) staffIDTaken(staffID string, excludeID uint) (bool, error) {
	var count int64
	err := sc.DB.Model(&models.Staff{}).Where("staff_id = ? AND id <> ?", staffID, excludeID).Count(&count).Error
	return count > 0, err
}

func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	taken, err := sc.staffIDTaken(req.StaffID, 0)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if taken {
		utils.RespondError(c, http.StatusConflict, ErrStaffIDExists)
		return
	}

	s := models.Staff{
		StaffID:   req.StaffID,
		Fname:     req.Fname,
		Lname:     req.Lname,
		Email:     req.Email,
		Contact:   req.Contact,
		Priority:  req.Priority,
		Image:     req.Image,
		WorkDays:  req.WorkDays,
		ShiftTime: req.ShiftTime,
	}
	if err := sc.DB.Create(&s).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, gin.H{"id": s.ID})
}

func (sc *StaffController) UpdateStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	taken, err := sc.staffIDTaken(req.StaffID, id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if taken {
		utils.RespondError(c, http.StatusConflict, ErrStaffIDExists)
		return
	}

	res := sc.DB.Model(&models.Staff{}).Where("id = ?", id).Updates(map[string]interface{}{
		"staff_id":   req.StaffID,
		"fname":      req.Fname,
		"lname":      req.Lname,
		"email":      req.Email,
		"contact":    req.Contact,
		"priority":   req.Priority,
		"image":      req.Image,
		"work_days":  req.WorkDays,
		"shift_time": req.ShiftTime,
	})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"updated": res.RowsAffected})
}

func (sc *StaffController) DeleteStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res := sc.DB.Delete(&models.Staff{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"deleted": res.RowsAffected})
}
