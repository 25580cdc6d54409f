package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/atm_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// cardAuthScheme prefixes the Authorization header sent by dispenser terminals:
//
//	Authorization: Atm: <card number>:<pin>
const cardAuthScheme = "atm:"

// CardAuth authenticates requests carrying card credentials in the Authorization
// header. Requests using another scheme are passed on to AuthMiddleware untouched.
//
// Failed attempts are counted per client IP in failures. Once the limit is spent
// the PIN is not checked and the request gets 429.
func CardAuth(authSvc portssvc.AuthSvcFacade, failures *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if len(header) < len(cardAuthScheme) || !strings.EqualFold(header[:len(cardAuthScheme)], cardAuthScheme) {
			c.Next()
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context())
		ip := c.ClientIP()

		state, err := failures.Peek(c.Request.Context(), ip)
		if err != nil {
			logger.Error("Failed to get rate limit context", slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during rate limit check"})
			return
		}
		if state.Remaining <= 0 {
			logger.Warn("Card authentication attempts exhausted", slog.String("ip", ip), slog.Int64("limit", state.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			return
		}

		cardNumber, pinCode, ok := parseCardCredentials(header[len(cardAuthScheme):])
		if !ok {
			logger.Warn("Malformed card credentials header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Atm: {card}:{pin}"})
			return
		}

		accountID, err := authSvc.Authenticate(c.Request.Context(), cardNumber, pinCode)
		if err != nil {
			logger.Warn("Card authentication failed", "error", err)
			if _, lerr := failures.Get(c.Request.Context(), ip); lerr != nil {
				logger.Error("Failed to record card authentication failure", slog.String("ip", ip), slog.String("error", lerr.Error()))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid card number or PIN"})
			return
		}

		setAuthenticatedAccount(c, accountID, AuthMethodCard)
		c.Next()
	}
}

func parseCardCredentials(raw string) (cardNumber, pinCode string, ok bool) {
	cardNumber, pinCode, found := strings.Cut(strings.TrimSpace(raw), ":")
	if !found || cardNumber == "" || pinCode == "" {
		return "", "", false
	}
	return cardNumber, pinCode, true
}
