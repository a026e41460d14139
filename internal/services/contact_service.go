// internal/services/contact_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/agntslab/marketplace-backend/internal/models"
	"github.com/agntslab/marketplace-backend/internal/utils"
)

type ContactService struct {
	db *gorm.DB
}

type CreateContactMessageRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	InquiryType string `json:"inquiry_type" validate:"required,max=50"`
	Message     string `json:"message" validate:"required"`
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

func (s *ContactService) CreateContactMessage(req *CreateContactMessageRequest) (*models.ContactMessage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, errors.Join(ErrValidation, err)
	}

	message := &models.ContactMessage{
		Name:        req.Name,
		Email:       req.Email,
		InquiryType: req.InquiryType,
		Message:     req.Message,
		Status:      models.ContactStatusNew,
	}

	if err := s.db.Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	return message, nil
}
