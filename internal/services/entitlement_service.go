// internal/services/entitlement_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/agntslab/marketplace-backend/internal/models"
)

type EntitlementService struct {
	db *gorm.DB
}

// DownloadGrant is returned for an accepted download call.
type DownloadGrant struct {
	AgentID     uint   `json:"agent_id"`
	DownloadURL string `json:"download_url"`
}

func NewEntitlementService(db *gorm.DB) *EntitlementService {
	return &EntitlementService{db: db}
}

// CanDownload reports whether the user may download the agent: free agents
// are open to everyone, paid agents require a completed purchase. Pending
// and failed purchases never entitle. The agent's existence must already be
// validated by the caller.
func (s *EntitlementService) CanDownload(userID string, agent *models.Agent) (bool, error) {
	if agent.IsFree {
		return true, nil
	}

	var count int64
	err := s.db.Model(&models.Purchase{}).
		Where("user_id = ? AND agent_id = ? AND status = ?",
			userID, agent.ID, models.PurchaseStatusCompleted).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check purchases: %w", err)
	}

	return count > 0, nil
}

// AuthorizeDownload validates the agent, checks entitlement and, when the
// download is accepted, increments the download counter by exactly one.
// The counter counts downloads, not unique downloaders.
func (s *EntitlementService) AuthorizeDownload(userID string, agentID uint) (*DownloadGrant, error) {
	var agent models.Agent
	if err := s.db.First(&agent, agentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !agent.IsActive {
		return nil, ErrAgentNotFound
	}

	entitled, err := s.CanDownload(userID, &agent)
	if err != nil {
		return nil, err
	}
	if !entitled {
		return nil, ErrPurchaseRequired
	}

	if err := s.incrementDownloadCount(agent.ID); err != nil {
		return nil, err
	}

	downloadURL := agent.DownloadURL
	if downloadURL == "" {
		downloadURL = fmt.Sprintf("/downloads/%d", agent.ID)
	}

	return &DownloadGrant{
		AgentID:     agent.ID,
		DownloadURL: downloadURL,
	}, nil
}

func (s *EntitlementService) incrementDownloadCount(agentID uint) error {
	err := s.db.Model(&models.Agent{}).Where("id = ?", agentID).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment download count: %w", err)
	}
	return nil
}
