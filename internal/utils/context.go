// internal/utils/context.go
package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/agntslab/marketplace-backend/internal/identity"
)

const identityContextKey = "caller_identity"

// SetIdentityInContext is called by the auth middleware after verification.
func SetIdentityInContext(c *gin.Context, id *identity.Identity) {
	c.Set(identityContextKey, id)
}

// GetIdentityFromContext returns the verified caller identity, if any.
// Services never read this themselves; handlers extract it and pass the
// user id explicitly.
func GetIdentityFromContext(c *gin.Context) (*identity.Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return nil, false
	}
	id, ok := value.(*identity.Identity)
	return id, ok
}
