// internal/models/contact_message.go
package models

import "time"

// ContactMessage is a write-once inbox record.
type ContactMessage struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name" gorm:"size:100;not null"`
	Email       string        `json:"email" gorm:"size:255;not null"`
	InquiryType string        `json:"inquiry_type" gorm:"size:50;not null"`
	Message     string        `json:"message" gorm:"type:text;not null"`
	Status      ContactStatus `json:"status" gorm:"type:varchar(50);default:new"`
	CreatedAt   time.Time     `json:"created_at"`
}
