package http

import (
	"errors"
	"net/http"

	authdomain "github.com/Ahmeddsamy/VendingMachine-Backend/internal/auth/domain"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/logging"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

const internalErrorMsg = "internal server error"

func statusFor(err error) int {
	switch {
	case errors.Is(err, &authdomain.CredentialsMismatchError{}):
		return http.StatusUnauthorized
	case errors.Is(err, &domain.RoleViolationError{}),
		errors.Is(err, &domain.PermissionDeniedError{}):
		return http.StatusForbidden
	case errors.Is(err, &domain.AccountNotFoundError{}),
		errors.Is(err, &domain.ProductNotFoundError{}):
		return http.StatusNotFound
	case errors.Is(err, &domain.InvalidDenominationError{}),
		errors.Is(err, &domain.InsufficientFundsError{}),
		errors.Is(err, &domain.OutOfStockError{}),
		errors.Is(err, &domain.InvalidArgumentsError{}),
		errors.Is(err, &domain.NothingToRefundError{}):
		return http.StatusBadRequest
	case errors.Is(err, &domain.UsernameTakenError{}),
		errors.Is(err, &domain.AccountHasProductsError{}),
		errors.Is(err, &authdomain.AccountExistsError{}):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the mapped status. Infrastructure failures are logged
// and hidden behind a generic message.
func respondError(c *gin.Context, logger logging.Logger, err error) {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		logger.Error("request failed", "request_id", RequestID(c), "path", c.FullPath(), "error", err.Error())
		c.JSON(status, gin.H{"errors": internalErrorMsg})
		return
	}

	logger.Warn("request rejected", "request_id", RequestID(c), "path", c.FullPath(), "status", status, "error", err.Error())

	message := clientMessage(err)
	if errors.Is(err, &domain.PermissionDeniedError{}) {
		message = "permission denied"
	}

	c.JSON(status, gin.H{"errors": message})
}

// clientMessage strips the wrapping added on the way up and returns the
// message of the innermost error.
func clientMessage(err error) string {
	for inner := errors.Unwrap(err); inner != nil; inner = errors.Unwrap(inner) {
		err = inner
	}

	return err.Error()
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": message})
}
