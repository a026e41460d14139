// internal/handlers/review.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agntslab/marketplace-backend/internal/services"
	"github.com/agntslab/marketplace-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// GET /api/agents/:id/reviews
func (h *ReviewHandler) GetAgentReviews(c *gin.Context) {
	agentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFoundResponse(c, "Agent")
		return
	}

	params := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewService.GetReviewsByAgent(uint(agentID), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result := utils.CreatePaginationResult(reviews, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /api/agents/:id/reviews
func (h *ReviewHandler) CreateAgentReview(c *gin.Context) {
	id, ok := utils.GetIdentityFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	agentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFoundResponse(c, "Agent")
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	review, err := h.reviewService.CreateReview(id.UserID, uint(agentID), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, review)
}
