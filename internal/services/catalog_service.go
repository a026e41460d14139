// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/agntslab/marketplace-backend/internal/models"
)

type CatalogService struct {
	db *gorm.DB
}

// AgentFilters are conjunctive: an agent must match every supplied filter.
// All fields are optional; the zero value means "no restriction".
type AgentFilters struct {
	Category    string
	Price       string // "free" or "paid"
	Model       string
	Runtime     string
	Integration string
	Search      string
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListAgents returns active agents matching the filters, newest first.
// An empty result is a valid outcome, never an error.
func (s *CatalogService) ListAgents(filters AgentFilters) ([]models.Agent, error) {
	query := s.db.Model(&models.Agent{}).Where("is_active = ?", true)

	if filters.Category != "" {
		categoryID, err := strconv.Atoi(filters.Category)
		if err != nil {
			// A non-numeric category matches nothing.
			return []models.Agent{}, nil
		}
		query = query.Where("category_id = ?", categoryID)
	}

	switch models.PriceTier(filters.Price) {
	case models.PriceTierFree:
		query = query.Where("is_free = ?", true)
	case models.PriceTierPaid:
		query = query.Where("is_free = ?", false)
	}

	if filters.Model != "" {
		query = query.Where("LOWER(model) LIKE ?", substringPattern(filters.Model))
	}

	if filters.Runtime != "" {
		query = query.Where("LOWER(runtime) LIKE ?", substringPattern(filters.Runtime))
	}

	if filters.Integration != "" {
		query = query.Where("LOWER(integration) LIKE ?", substringPattern(filters.Integration))
	}

	if filters.Search != "" {
		pattern := substringPattern(filters.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var agents []models.Agent
	if err := query.Order("created_at DESC").Find(&agents).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch agents: %w", err)
	}

	return agents, nil
}

// GetAgent returns an agent by id regardless of active state; callers that
// expose public surfaces decide whether inactive agents count as missing.
func (s *CatalogService) GetAgent(id uint) (*models.Agent, error) {
	var agent models.Agent
	if err := s.db.Preload("Category").First(&agent, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &agent, nil
}

func (s *CatalogService) GetAgentsByVendor(vendorID string) ([]models.Agent, error) {
	var agents []models.Agent
	if err := s.db.Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&agents).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch vendor agents: %w", err)
	}
	return agents, nil
}

func (s *CatalogService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func substringPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
