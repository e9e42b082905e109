package http

import (
	"net/http"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/logging"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

type signInRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequestBody struct {
	OldPassword        string `json:"oldPassword" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required,min=6"`
	ConfirmNewPassword string `json:"confirmNewPassword" binding:"required,eqfield=NewPassword"`
}

type AuthHandler struct {
	authenticator   Authenticator
	passwordChanger PasswordChanger
	logger          logging.Logger
}

func NewAuthHandler(authenticator Authenticator, passwordChanger PasswordChanger, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		authenticator:   authenticator,
		passwordChanger: passwordChanger,
		logger:          logger,
	}
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var body signInRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	token, err := h.authenticator.SignIn(ctx, body.Username, body.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("signed in", "request_id", RequestID(c), "username", body.Username)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	accountID, ok := pathID(c)
	if !ok {
		return
	}

	var body changePasswordRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body, new passwords must match")
		return
	}

	if !domain.CanMutateAccount(domain.Actor{ID: actor}, accountID) {
		respondError(c, h.logger, &domain.PermissionDeniedError{Msg: "permission denied"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	err := h.passwordChanger.ChangePassword(ctx, accountID, body.OldPassword, body.NewPassword)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("password changed", "request_id", RequestID(c), "account_id", accountID)
	c.JSON(http.StatusOK, gin.H{"message": "password changed successfully"})
}
