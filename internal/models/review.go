// internal/models/review.go
package models

import "time"

// Review is append-only; there is no update path. Aggregate rating and
// review_count live on Agent and are maintained independently.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"size:255;not null;index"`
	AgentID   uint      `json:"agent_id" gorm:"not null;index"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Agent Agent `json:"agent,omitempty" gorm:"foreignKey:AgentID"`
}
