// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agntslab/marketplace-backend/internal/services"
	"github.com/agntslab/marketplace-backend/internal/utils"
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// GET /api/auth/user
// Upserts the user record from the verified identity-provider profile and
// returns it.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	id, ok := utils.GetIdentityFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.userService.UpsertFromIdentity(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, user)
}
