// internal/handlers/download.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agntslab/marketplace-backend/internal/services"
	"github.com/agntslab/marketplace-backend/internal/utils"
)

type DownloadHandler struct {
	entitlementService *services.EntitlementService
}

func NewDownloadHandler(entitlementService *services.EntitlementService) *DownloadHandler {
	return &DownloadHandler{
		entitlementService: entitlementService,
	}
}

// POST /api/download/:agentId
func (h *DownloadHandler) DownloadAgent(c *gin.Context) {
	id, ok := utils.GetIdentityFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	agentID, err := strconv.ParseUint(c.Param("agentId"), 10, 32)
	if err != nil {
		utils.NotFoundResponse(c, "Agent")
		return
	}

	grant, err := h.entitlementService.AuthorizeDownload(id.UserID, uint(agentID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":      "Download initiated",
		"download_url": grant.DownloadURL,
	})
}
