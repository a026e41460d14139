// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/agntslab/marketplace-backend/internal/models"
)

// SeedInitialData loads demo vendors, categories and sample agents. It is a
// no-op when categories already exist.
func SeedInitialData(db *gorm.DB) error {
	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if categoryCount > 0 {
		return nil
	}

	log.Println("Seeding initial data...")

	vendors := []models.User{
		{ID: "demo-vendor-1", Email: strPtr("vendor1@agntslab.com"), FirstName: "Alex", LastName: "Johnson", IsVendor: true},
		{ID: "demo-vendor-2", Email: strPtr("vendor2@agntslab.com"), FirstName: "Sarah", LastName: "Chen", IsVendor: true},
		{ID: "demo-vendor-3", Email: strPtr("vendor3@agntslab.com"), FirstName: "Michael", LastName: "Rodriguez", IsVendor: true},
		{ID: "demo-vendor-4", Email: strPtr("vendor4@agntslab.com"), FirstName: "Emma", LastName: "Williams", IsVendor: true},
		{ID: "demo-vendor-5", Email: strPtr("vendor5@agntslab.com"), FirstName: "David", LastName: "Brown", IsVendor: true},
	}
	if err := db.Create(&vendors).Error; err != nil {
		return fmt.Errorf("failed to seed vendors: %w", err)
	}

	categories := []models.Category{
		{Name: "Productivity", Slug: "productivity", Description: "AI agents that help boost your productivity and streamline workflows"},
		{Name: "AI Assistants", Slug: "ai-assistants", Description: "Intelligent virtual assistants for various tasks"},
		{Name: "Data Analysis", Slug: "data-analysis", Description: "Agents specialized in data processing and analysis"},
		{Name: "Customer Service", Slug: "customer-service", Description: "AI agents designed to enhance customer support"},
		{Name: "Content Creation", Slug: "content-creation", Description: "Creative AI agents for writing, design, and content generation"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	agents := []models.Agent{
		{
			Name:             "TaskMaster Pro",
			Description:      "An intelligent task management agent that prioritizes your to-dos, schedules meetings, and manages deadlines. Uses advanced algorithms to optimize your daily productivity.",
			ShortDescription: "Intelligent task management and scheduling assistant",
			Price:            decimal.Zero,
			IsFree:           true,
			CategoryID:       &categories[0].ID,
			VendorID:         "demo-vendor-1",
			Model:            "GPT-4",
			Runtime:          "Python",
			Integration:      "API",
			DownloadCount:    1250,
			Rating:           decimal.RequireFromString("4.8"),
			ReviewCount:      89,
			IsActive:         true,
		},
		{
			Name:             "Email Genius",
			Description:      "Transform your email communication with this AI agent. It drafts professional responses, summarizes long threads, and helps you achieve inbox zero efficiently.",
			ShortDescription: "AI-powered email management and composition tool",
			Price:            decimal.RequireFromString("19.99"),
			IsFree:           false,
			CategoryID:       &categories[0].ID,
			VendorID:         "demo-vendor-2",
			Model:            "Claude",
			Runtime:          "JavaScript",
			Integration:      "Plugin",
			DownloadCount:    892,
			Rating:           decimal.RequireFromString("4.6"),
			ReviewCount:      67,
			IsActive:         true,
		},
		{
			Name:             "Sherlock Analytics",
			Description:      "A detective-like AI assistant that investigates data patterns, anomalies, and insights. Perfect for business intelligence and research tasks.",
			ShortDescription: "Investigative AI for data patterns and business insights",
			Price:            decimal.RequireFromString("29.99"),
			IsFree:           false,
			CategoryID:       &categories[1].ID,
			VendorID:         "demo-vendor-3",
			Model:            "GPT-4",
			Runtime:          "Python",
			Integration:      "API",
			DownloadCount:    634,
			Rating:           decimal.RequireFromString("4.7"),
			ReviewCount:      45,
			IsActive:         true,
		},
		{
			Name:             "SQL Query Assistant",
			Description:      "Generates optimized sql queries from natural language, explains execution plans, and suggests indexes for slow statements.",
			ShortDescription: "Natural language to SQL translation agent",
			Price:            decimal.Zero,
			IsFree:           true,
			CategoryID:       &categories[2].ID,
			VendorID:         "demo-vendor-4",
			Model:            "Claude",
			Runtime:          "Go",
			Integration:      "CLI",
			DownloadCount:    2103,
			Rating:           decimal.RequireFromString("4.9"),
			ReviewCount:      132,
			IsActive:         true,
		},
		{
			Name:             "SupportBot 24/7",
			Description:      "Handles first-line customer inquiries around the clock, escalates complex tickets, and learns from your knowledge base.",
			ShortDescription: "Always-on customer support agent",
			Price:            decimal.RequireFromString("49.99"),
			IsFree:           false,
			CategoryID:       &categories[3].ID,
			VendorID:         "demo-vendor-5",
			Model:            "GPT-4",
			Runtime:          "Node.js",
			Integration:      "Webhook",
			DownloadCount:    418,
			Rating:           decimal.RequireFromString("4.4"),
			ReviewCount:      28,
			IsActive:         true,
		},
		{
			Name:             "CopyForge",
			Description:      "Drafts landing pages, product descriptions and ad copy in your brand voice, with A/B variants on request.",
			ShortDescription: "Marketing copy generation agent",
			Price:            decimal.RequireFromString("14.99"),
			IsFree:           false,
			CategoryID:       &categories[4].ID,
			VendorID:         "demo-vendor-1",
			Model:            "Claude",
			Runtime:          "Python",
			Integration:      "API",
			DownloadCount:    771,
			Rating:           decimal.RequireFromString("4.5"),
			ReviewCount:      53,
			IsActive:         true,
		},
	}
	if err := db.Create(&agents).Error; err != nil {
		return fmt.Errorf("failed to seed agents: %w", err)
	}

	log.Println("Initial data seeding completed")
	return nil
}

func strPtr(s string) *string { return &s }
