// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/agntslab/marketplace-backend/internal/identity"
	"github.com/agntslab/marketplace-backend/internal/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

// UpsertFromIdentity creates or refreshes the user record from a verified
// identity-provider profile, keyed on the externally issued id.
func (s *UserService) UpsertFromIdentity(id *identity.Identity) (*models.User, error) {
	user := models.User{
		ID:              id.UserID,
		FirstName:       id.FirstName,
		LastName:        id.LastName,
		ProfileImageURL: id.ProfileImageURL,
	}
	if id.Email != "" {
		user.Email = &id.Email
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return s.GetUser(id.UserID)
}

// PromoteToVendor sets is_vendor regardless of its prior value.
func (s *UserService) PromoteToVendor(userID string) error {
	err := s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("is_vendor", true).Error
	if err != nil {
		return fmt.Errorf("failed to promote user to vendor: %w", err)
	}
	return nil
}
