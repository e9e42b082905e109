package http

import (
	"net/http"
	"strings"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/jwt"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authHeaderName      = "Authorization"
	requestIDHeaderName = "X-Request-ID"

	RequestIDContextKey = "request_id"
)

// NewAuthMiddleware verifies the bearer token and stores the account id in
// the gin context.
func NewAuthMiddleware(secretKey string, tokenParser jwt.TokenParser, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken([]byte(secretKey), parts[1])
		if err != nil {
			logger.Warn("failed to parse token", "request_id", RequestID(c), "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(jwt.AccountIDContextKey, claims.AccountID)
		if claims.Role != "" {
			c.Set(jwt.AccountRoleContextKey, claims.Role)
		}
		c.Next()
	}
}

// NewRequestIDMiddleware propagates X-Request-ID or assigns a fresh one.
func NewRequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDContextKey, requestID)
		c.Header(requestIDHeaderName, requestID)
		c.Next()
	}
}

func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDContextKey)
}

func actorID(c *gin.Context) (int64, bool) {
	value, ok := c.Get(jwt.AccountIDContextKey)
	if !ok {
		return 0, false
	}

	id, ok := value.(int64)
	return id, ok
}
