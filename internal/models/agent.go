// internal/models/agent.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Agent is a listed downloadable artifact. Inactive agents are retained for
// historical purchase integrity and never surface in catalog queries.
type Agent struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	Name             string          `json:"name" gorm:"size:200;not null"`
	Description      string          `json:"description" gorm:"type:text;not null"`
	ShortDescription string          `json:"short_description" gorm:"size:300"`
	Price            decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null;default:0.00"`
	IsFree           bool            `json:"is_free" gorm:"not null"`
	CategoryID       *uint           `json:"category_id" gorm:"index"`
	VendorID         string          `json:"vendor_id" gorm:"size:255;not null;index"`
	Model            string          `json:"model" gorm:"size:100"`
	Runtime          string          `json:"runtime" gorm:"size:100"`
	Integration      string          `json:"integration" gorm:"size:100"`
	ImageURL         string          `json:"image_url" gorm:"size:512"`
	DownloadURL      string          `json:"download_url" gorm:"size:512"`
	DownloadCount    int64           `json:"download_count" gorm:"default:0"`
	Rating           decimal.Decimal `json:"rating" gorm:"type:decimal(3,2);default:0.00"`
	ReviewCount      int64           `json:"review_count" gorm:"default:0"`
	IsActive         bool            `json:"is_active" gorm:"not null;index"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	// Relationships
	Category  *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Vendor    User       `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	Purchases []Purchase `json:"purchases,omitempty" gorm:"foreignKey:AgentID"`
	Reviews   []Review   `json:"reviews,omitempty" gorm:"foreignKey:AgentID"`
}
