package http

import (
	"net/http"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type depositRequestBody struct {
	Amount int64 `json:"amount" binding:"required"`
}

type buyRequestBody struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
	Amount    int   `json:"amount" binding:"required,gte=1"`
}

// MachineHandler serves the buyer side: coins in, products and change out.
type MachineHandler struct {
	depositor Depositor
	resetter  Resetter
	buyer     Buyer
	logger    logging.Logger
}

func NewMachineHandler(depositor Depositor, resetter Resetter, buyer Buyer, logger logging.Logger) *MachineHandler {
	return &MachineHandler{
		depositor: depositor,
		resetter:  resetter,
		buyer:     buyer,
		logger:    logger,
	}
}

func (h *MachineHandler) Deposit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if !requireBuyerRole(c, h.logger, "only buyers can deposit coins") {
		return
	}

	var body depositRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	total, err := h.depositor.Deposit(ctx, actor, body.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("coin deposited", "request_id", RequestID(c), "account_id", actor, "amount", body.Amount)
	c.JSON(http.StatusOK, depositResponse{TotalDeposit: total})
}

func (h *MachineHandler) Reset(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if !requireBuyerRole(c, h.logger, "only buyers can reset deposit") {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	refund, err := h.resetter.Reset(ctx, actor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("deposit reset", "request_id", RequestID(c), "account_id", actor, "refunded", refund.RefundedAmount)
	c.JSON(http.StatusOK, resetResponse{
		RefundedAmount: refund.RefundedAmount,
		Change:         refund.Change.ByLabel(),
	})
}

func (h *MachineHandler) Buy(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if !requireBuyerRole(c, h.logger, "only buyers can buy products") {
		return
	}

	var body buyRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	receipt, err := h.buyer.Buy(ctx, actor, body.ProductID, body.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("purchase completed", "request_id", RequestID(c), "account_id", actor,
		"product_id", body.ProductID, "quantity", body.Amount, "total", receipt.TotalSpent)
	c.JSON(http.StatusOK, buyResponse{
		TotalSpent: receipt.TotalSpent,
		ProductsPurchased: purchasedProduct{
			ProductName: receipt.ProductName,
			Quantity:    receipt.Quantity,
		},
		RemainingDeposit: receipt.RemainingDeposit,
		Change:           receipt.Change.ByLabel(),
	})
}
