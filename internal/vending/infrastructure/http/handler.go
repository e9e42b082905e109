package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/jwt"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/logging"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

const (
	IDKey = "id"

	requestTimeout = 5 * time.Second
)

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(IDKey), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "invalid id")
		return 0, false
	}

	return id, true
}

func requireActor(c *gin.Context) (int64, bool) {
	id, ok := actorID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return 0, false
	}

	return id, true
}

// requireBuyerRole rejects tokens issued to non-buyers without touching the
// database. Tokens without a role claim are left to the use case.
func requireBuyerRole(c *gin.Context, logger logging.Logger, msg string) bool {
	role := c.GetString(jwt.AccountRoleContextKey)
	if role == "" || domain.Role(role) == domain.RoleBuyer {
		return true
	}

	respondError(c, logger, &domain.RoleViolationError{Msg: msg})
	return false
}
