package controllers

import (
	"net/http"

	"hvacpro-backend/config"
	"hvacpro-backend/models"
	"hvacpro-backend/sheets"
	"hvacpro-backend/store"
	"hvacpro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UpdateAccountInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type ProfileController struct {
	cfg   config.Config
	users *sheets.UserRepo
	local *store.LocalStore
	log   *zap.Logger
}

func NewProfileController(cfg config.Config, users *sheets.UserRepo, local *store.LocalStore, logger *zap.Logger) *ProfileController {
	return &ProfileController{cfg: cfg, users: users, local: local, log: logger}
}

// Get returns the settings page state: the saved session user, the locally
// held company profile, and whether a remote endpoint is configured at all.
func (ct *ProfileController) Get(c *gin.Context) {
	var user models.User
	if _, err := ct.local.Get(store.KeyUser, &user); err != nil {
		ct.log.Warn("failed to read session user", zap.Error(err))
	}

	company := store.CompanyInfo{}
	if _, err := ct.local.Get(store.KeyCompanyInfo, &company); err != nil {
		ct.log.Warn("failed to read company info", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"user":      user.Sanitized(),
		"company":   company,
		"connected": ct.cfg.Connected(),
	})
}

// UpdateCompany replaces the local-only company profile. It is never sent to
// the spreadsheet.
func (ct *ProfileController) UpdateCompany(c *gin.Context) {
	var input store.CompanyInfo
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ct.local.Set(store.KeyCompanyInfo, input); err != nil {
		ct.log.Error("failed to save company info", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save company info")
		return
	}

	c.JSON(http.StatusOK, input)
}

// UpdateAccount writes the name/email change to the Users sheet, then
// refreshes the locally saved session record to match.
func (ct *ProfileController) UpdateAccount(c *gin.Context) {
	var input UpdateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}
	id := models.ID(userID.(string))

	updated, err := ct.users.Update(c.Request.Context(), id, models.User{
		ID:    id,
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		respondGatewayError(c, err, "Failed to update account")
		return
	}

	if err := ct.local.Set(store.KeyUser, updated.Sanitized()); err != nil {
		ct.log.Warn("failed to refresh session user", zap.Error(err))
	}

	c.JSON(http.StatusOK, updated.Sanitized())
}
