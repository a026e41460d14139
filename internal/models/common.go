// internal/models/common.go
package models

// Enums
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusFailed    PurchaseStatus = "failed"
)

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusResolved ContactStatus = "resolved"
)

// Price tier filter values accepted by the catalog query.
type PriceTier string

const (
	PriceTierFree PriceTier = "free"
	PriceTierPaid PriceTier = "paid"
)
