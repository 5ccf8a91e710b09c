package controllers

import (
	"net/http"

	"hvacpro-backend/config"
	"hvacpro-backend/sheets"
	"hvacpro-backend/store"
	"hvacpro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	cfg   config.Config
	users *sheets.UserRepo
	local *store.LocalStore
	log   *zap.Logger
}

func NewAuthController(cfg config.Config, users *sheets.UserRepo, local *store.LocalStore, logger *zap.Logger) *AuthController {
	return &AuthController{cfg: cfg, users: users, local: local, log: logger}
}

// Login proxies the credential check to the Users sheet and issues a session
// token on success. Credentials are opaque here: the remote store decides.
func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := a.users.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if sheets.IsRequestError(err) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondGatewayError(c, err, "Login is unavailable right now")
		return
	}

	token, err := utils.GenerateToken(a.cfg, user)
	if err != nil {
		a.log.Error("token generation failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Session record, kept locally so a restarted UI can restore the user.
	if err := a.local.Set(store.KeyUser, user.Sanitized()); err != nil {
		a.log.Warn("failed to persist session user", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Sanitized(),
	})
}

// Logout clears the locally persisted session record.
func (a *AuthController) Logout(c *gin.Context) {
	if err := a.local.Delete(store.KeyUser); err != nil {
		a.log.Warn("failed to clear session user", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me echoes the identity carried by the verified token.
func (a *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    userID,
			"email": c.GetString("userEmail"),
			"name":  c.GetString("userName"),
		},
	})
}
