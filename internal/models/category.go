// internal/models/category.go
package models

import "time"

// Category is immutable reference data created by the seed process only.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`

	Agents []Agent `json:"agents,omitempty" gorm:"foreignKey:CategoryID"`
}
