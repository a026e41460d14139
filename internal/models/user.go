// internal/models/user.go
package models

import "time"

// User identities are issued by the external identity provider, so the
// primary key is an opaque string rather than a generated serial.
type User struct {
	ID                   string    `json:"id" gorm:"primaryKey;size:255"`
	Email                *string   `json:"email" gorm:"uniqueIndex;size:255"`
	FirstName            string    `json:"first_name" gorm:"size:100"`
	LastName             string    `json:"last_name" gorm:"size:100"`
	ProfileImageURL      string    `json:"profile_image_url" gorm:"size:512"`
	StripeCustomerID     string    `json:"stripe_customer_id" gorm:"size:255"`
	StripeSubscriptionID string    `json:"stripe_subscription_id" gorm:"size:255"`
	IsVendor             bool      `json:"is_vendor" gorm:"default:false"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	// Relationships
	Agents    []Agent    `json:"agents,omitempty" gorm:"foreignKey:VendorID"`
	Purchases []Purchase `json:"purchases,omitempty" gorm:"foreignKey:UserID"`
	Reviews   []Review   `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
}
