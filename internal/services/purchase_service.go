// internal/services/purchase_service.go
package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/agntslab/marketplace-backend/internal/models"
	"github.com/agntslab/marketplace-backend/internal/payments"
)

type PurchaseService struct {
	db       *gorm.DB
	gateway  payments.Gateway
	currency string
}

// PaymentIntentResponse carries the opaque client secret the caller needs to
// complete payment out-of-band.
type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

func NewPurchaseService(db *gorm.DB, gateway payments.Gateway, currency string) *PurchaseService {
	if currency == "" {
		currency = "usd"
	}
	return &PurchaseService{
		db:       db,
		gateway:  gateway,
		currency: currency,
	}
}

// Initiate creates a payment intent for a paid agent and records a pending
// purchase carrying the external reference and a snapshot of the price.
func (s *PurchaseService) Initiate(userID string, agentID uint) (*PaymentIntentResponse, error) {
	var agent models.Agent
	if err := s.db.First(&agent, agentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if agent.IsFree {
		return nil, ErrFreeAgent
	}

	intent, err := s.gateway.CreateIntent(MinorUnits(agent.Price), s.currency, map[string]string{
		"user_id":  userID,
		"agent_id": strconv.FormatUint(uint64(agent.ID), 10),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	purchase := &models.Purchase{
		UserID:                userID,
		AgentID:               agent.ID,
		Amount:                agent.Price,
		StripePaymentIntentID: intent.Reference,
		Status:                models.PurchaseStatusPending,
	}

	if err := s.db.Create(purchase).Error; err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	return &PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

// HandlePaymentEvent applies a verified gateway notification. On success
// events it scans the user's purchases for a pending row matching the
// external reference and marks it completed. A missing match is a silent
// no-op: there is no retry queue, so a lost or early webhook leaves the
// purchase pending.
func (s *PurchaseService) HandlePaymentEvent(event *payments.Event) error {
	if event.Type != payments.EventPaymentSucceeded {
		return nil
	}

	userID := event.Metadata["user_id"]
	if userID == "" {
		return nil
	}

	purchases, err := s.GetPurchasesByUser(userID)
	if err != nil {
		return err
	}

	for i := range purchases {
		p := &purchases[i]
		if p.StripePaymentIntentID != event.Reference {
			continue
		}
		if p.Status != models.PurchaseStatusPending {
			return nil
		}

		err := s.db.Model(&models.Purchase{}).Where("id = ?", p.ID).
			Update("status", models.PurchaseStatusCompleted).Error
		if err != nil {
			return fmt.Errorf("failed to complete purchase: %w", err)
		}
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"reference": event.Reference,
		"user_id":   userID,
	}).Debug("payment event matched no purchase")

	return nil
}

func (s *PurchaseService) GetPurchasesByUser(userID string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch purchases: %w", err)
	}
	return purchases, nil
}

// MinorUnits converts a 2-fractional-digit price to processor minor units
// (cents). Rounding is half-up, so "19.99" is exactly 1999.
func MinorUnits(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
