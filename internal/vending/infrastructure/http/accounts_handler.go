package http

import (
	"net/http"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type updateAccountRequestBody struct {
	Username string `json:"username" binding:"required"`
}

type AccountsHandler struct {
	accounts AccountManager
	logger   logging.Logger
}

func NewAccountsHandler(accounts AccountManager, logger logging.Logger) *AccountsHandler {
	return &AccountsHandler{
		accounts: accounts,
		logger:   logger,
	}
}

func (h *AccountsHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	accountID, ok := pathID(c)
	if !ok {
		return
	}

	var body updateAccountRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	account, err := h.accounts.UpdateUsername(ctx, actor, accountID, body.Username)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("account updated", "request_id", RequestID(c), "account_id", accountID)
	c.JSON(http.StatusOK, toAccountResponse(account))
}

func (h *AccountsHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	accountID, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	err := h.accounts.Delete(ctx, actor, accountID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("account deleted", "request_id", RequestID(c), "account_id", accountID)
	c.JSON(http.StatusOK, gin.H{"message": "account deleted successfully"})
}
