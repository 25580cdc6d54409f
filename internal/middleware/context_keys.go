package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// accountIDKey is the key used to store the authenticated card holder's account ID.
const accountIDKey = contextKey("accountID")

// authMethodKey marks a request as already authenticated so later auth middlewares skip it.
const authMethodKey = "authMethod"

// Authentication methods recorded under authMethodKey.
const (
	AuthMethodCard     = "card"
	AuthMethodJWT      = "jwt"
	AuthMethodAdminKey = "admin_key"
)

// setAuthenticatedAccount stores the account ID in both the Gin and the request
// context and tags the request logger with it.
func setAuthenticatedAccount(c *gin.Context, accountID, method string) {
	c.Set(string(accountIDKey), accountID)
	c.Set(authMethodKey, method)

	ctx := context.WithValue(c.Request.Context(), accountIDKey, accountID)
	logger := GetLoggerFromCtx(ctx).With(slog.String("account_id", accountID))
	c.Request = c.Request.WithContext(WithLogger(ctx, logger))
}

// GetAccountIDFromContext retrieves the authenticated account ID from the Gin context.
// It returns the account ID and a boolean indicating if it was found.
func GetAccountIDFromContext(c *gin.Context) (string, bool) {
	accountIDVal, exists := c.Get(string(accountIDKey))
	if !exists {
		// check in the request context as well
		if v, ok := c.Request.Context().Value(accountIDKey).(string); ok && v != "" {
			return v, true
		}
		return "", false
	}

	accountID, ok := accountIDVal.(string)
	if !ok || accountID == "" {
		return "", false
	}
	return accountID, true
}
