package repositories

import (
	"errors"

	"blogapi/internal/models"
)

// ErrNotFound is wrapped by repositories when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}
