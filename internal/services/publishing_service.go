// internal/services/publishing_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/agntslab/marketplace-backend/internal/database"
	"github.com/agntslab/marketplace-backend/internal/models"
	"github.com/agntslab/marketplace-backend/internal/utils"
)

type PublishingService struct {
	db *gorm.DB
}

// AgentDraft is the validated, typed form of a vendor submission. The HTTP
// boundary performs all coercion (string category ids, "true"/"false" free
// flags, decimal prices) before the draft reaches this service.
type AgentDraft struct {
	Name             string `validate:"required,max=200"`
	Description      string `validate:"required"`
	ShortDescription string `validate:"max=300"`
	CategoryID       *uint
	IsFree           bool
	Price            decimal.Decimal
	Model            string `validate:"max=100"`
	Runtime          string `validate:"max=100"`
	Integration      string `validate:"max=100"`
	ImageURL         string
	DownloadURL      string
}

func NewPublishingService(db *gorm.DB) *PublishingService {
	return &PublishingService{db: db}
}

// PublishAgent validates the draft and inserts a new active agent owned by
// the caller. A free agent always persists with price "0.00" no matter what
// price was submitted. The insert and the caller's vendor promotion commit
// in one transaction; the promotion is idempotent.
func (s *PublishingService) PublishAgent(vendorID string, draft *AgentDraft) (*models.Agent, error) {
	if err := utils.ValidateStruct(draft); err != nil {
		return nil, errors.Join(ErrValidation, err)
	}

	price := draft.Price
	if draft.IsFree {
		price = decimal.Zero
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	agent := &models.Agent{
		Name:             draft.Name,
		Description:      draft.Description,
		ShortDescription: draft.ShortDescription,
		Price:            price,
		IsFree:           draft.IsFree,
		CategoryID:       draft.CategoryID,
		VendorID:         vendorID,
		Model:            draft.Model,
		Runtime:          draft.Runtime,
		Integration:      draft.Integration,
		ImageURL:         draft.ImageURL,
		DownloadURL:      draft.DownloadURL,
		Rating:           decimal.Zero,
		IsActive:         true,
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(agent).Error; err != nil {
			return fmt.Errorf("failed to create agent: %w", err)
		}
		return NewUserService(tx).PromoteToVendor(vendorID)
	})
	if err != nil {
		return nil, err
	}

	return agent, nil
}
