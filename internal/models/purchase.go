// internal/models/purchase.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records a payment intent and its outcome. Amount is a snapshot of
// the agent price at initiation time and is never recomputed. Rows are never
// deleted; pending -> completed and pending -> failed are the only
// transitions and both are terminal.
type Purchase struct {
	ID                    uint            `json:"id" gorm:"primaryKey"`
	UserID                string          `json:"user_id" gorm:"size:255;not null;index"`
	AgentID               uint            `json:"agent_id" gorm:"not null;index"`
	Amount                decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	StripePaymentIntentID string          `json:"stripe_payment_intent_id" gorm:"size:255;index"`
	Status                PurchaseStatus  `json:"status" gorm:"type:varchar(50);default:pending;index"`
	CreatedAt             time.Time       `json:"created_at"`

	// Relationships
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Agent Agent `json:"agent,omitempty" gorm:"foreignKey:AgentID"`
}
