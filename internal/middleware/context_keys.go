package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated user's ID in request contexts.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID set by AuthMiddleware.
// The boolean reports whether an ID was present.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok
	}

	// Fall back to the standard request context for callers that only
	// propagate context.Context.
	if userIDVal := c.Request.Context().Value(userIDKey); userIDVal != nil {
		userID, ok := userIDVal.(string)
		return userID, ok
	}

	return "", false
}
