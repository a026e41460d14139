// internal/handlers/agent.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/agntslab/marketplace-backend/internal/services"
	"github.com/agntslab/marketplace-backend/internal/utils"
)

type AgentHandler struct {
	catalogService    *services.CatalogService
	publishingService *services.PublishingService
	storageService    *services.StorageService
}

func NewAgentHandler(catalogService *services.CatalogService, publishingService *services.PublishingService, storageService *services.StorageService) *AgentHandler {
	return &AgentHandler{
		catalogService:    catalogService,
		publishingService: publishingService,
		storageService:    storageService,
	}
}

// GET /api/agents
func (h *AgentHandler) GetAgents(c *gin.Context) {
	filters := services.AgentFilters{
		Category:    c.Query("category"),
		Price:       c.Query("price"),
		Model:       c.Query("model"),
		Runtime:     c.Query("runtime"),
		Integration: c.Query("integration"),
		Search:      c.Query("search"),
	}

	agents, err := h.catalogService.ListAgents(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, agents)
}

// GET /api/agents/:id
func (h *AgentHandler) GetAgent(c *gin.Context) {
	agentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFoundResponse(c, "Agent")
		return
	}

	agent, err := h.catalogService.GetAgent(uint(agentID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, agent)
}

// GET /api/vendor/agents
func (h *AgentHandler) GetVendorAgents(c *gin.Context) {
	id, ok := utils.GetIdentityFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	agents, err := h.catalogService.GetAgentsByVendor(id.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, agents)
}

// POST /api/agents
// Accepts a multipart form. All coercion from the loosely typed form fields
// into the typed draft happens here, once, at the boundary.
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	id, ok := utils.GetIdentityFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	draft, errs := h.draftFromForm(c)
	if len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	// Optional packaged artifact
	if file, header, err := c.Request.FormFile("file"); err == nil {
		defer file.Close()

		result, err := h.storageService.UploadFile(file, header, h.storageService.ArtifactUploadOptions())
		if err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		draft.DownloadURL = result.URL
	}

	// Optional listing image
	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()

		result, err := h.storageService.UploadFile(file, header, h.storageService.ImageUploadOptions())
		if err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		draft.ImageURL = result.URL
	}

	agent, err := h.publishingService.PublishAgent(id.UserID, draft)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, agent)
}

func (h *AgentHandler) draftFromForm(c *gin.Context) (*services.AgentDraft, []utils.ValidationError) {
	var errs []utils.ValidationError

	draft := &services.AgentDraft{
		Name:             c.PostForm("name"),
		Description:      c.PostForm("description"),
		ShortDescription: c.PostForm("shortDescription"),
		Model:            c.PostForm("model"),
		Runtime:          c.PostForm("runtime"),
		Integration:      c.PostForm("integration"),
		ImageURL:         c.PostForm("imageUrl"),
	}

	draft.IsFree = c.PostForm("isFree") == "true"

	if categoryID := c.PostForm("categoryId"); categoryID != "" {
		parsed, err := strconv.ParseUint(categoryID, 10, 32)
		if err != nil {
			errs = append(errs, utils.ValidationError{
				Field:   "categoryId",
				Tag:     "numeric",
				Message: "categoryId must be numeric",
			})
		} else {
			cid := uint(parsed)
			draft.CategoryID = &cid
		}
	}

	if price := c.PostForm("price"); price != "" && !draft.IsFree {
		parsed, err := decimal.NewFromString(price)
		if err != nil {
			errs = append(errs, utils.ValidationError{
				Field:   "price",
				Tag:     "decimal",
				Message: "price must be a decimal number",
			})
		} else {
			draft.Price = parsed
		}
	}

	return draft, errs
}
