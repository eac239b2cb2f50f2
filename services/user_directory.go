package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/yeremiapane/ranahan-restaurant/models"
	"gorm.io/gorm"
)

type UserDirectory struct {
	DB *gorm.DB
}

func NewUserDirectory(db *gorm.DB) *UserDirectory {
	return &UserDirectory{DB: db}
}

// ResolveUserID -> angka dikembalikan apa adanya (tanpa cek keberadaan),
// selain itu dicari berdasarkan username.
func (d *UserDirectory) ResolveUserID(ctx context.Context, identifier string) (uint, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return 0, newError(ErrValidation, "Missing user identifier")
	}

	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		return uint(id), nil
	}

	var user models.User
	err := d.DB.WithContext(ctx).Select("id").Where("username = ?", identifier).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, newError(ErrNotFound, "User not found")
	}
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}
