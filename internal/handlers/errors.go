// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/agntslab/marketplace-backend/internal/services"
	"github.com/agntslab/marketplace-backend/internal/utils"
)

// respondServiceError maps service sentinel errors onto the HTTP surface.
// Unclassified errors are logged and surfaced as a generic internal error
// so data-store details never leak to callers.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAgentNotFound):
		utils.NotFoundResponse(c, "Agent")
	case errors.Is(err, services.ErrUserNotFound):
		utils.NotFoundResponse(c, "User")
	case errors.Is(err, services.ErrValidation):
		if details := utils.GetValidationErrors(err); len(details) > 0 {
			utils.ValidationErrorResponse(c, details)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrFreeAgent):
		utils.BadRequestResponse(c, "Agent is free", nil)
	case errors.Is(err, services.ErrPurchaseRequired):
		utils.ForbiddenResponse(c, "Purchase required")
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, "")
	case errors.Is(err, services.ErrExternalService):
		logrus.WithError(err).Error("External service call failed")
		utils.ErrorResponse(c, 502, "EXTERNAL_SERVICE_ERROR", "Payment service unavailable", nil)
	default:
		logrus.WithError(err).Error("Unhandled service error")
		utils.InternalErrorResponse(c, "")
	}
}
