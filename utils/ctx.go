package utils

import "github.com/gin-gonic/gin"

// Context keys set by the auth middlewares.
const (
	CtxUserID = "userId"
	CtxRole   = "role"
)

// CurrentUserID returns the authenticated user's id, or 0 when the request
// carries no valid token.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(CtxRole); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
