package controllers

import (
	"net/http"

	"hvacpro-backend/models"
	"hvacpro-backend/sheets"
	"hvacpro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WorkDayInput struct {
	Date  string         `json:"date"`
	Hours models.Numeric `json:"hours"`
	Notes string         `json:"notes"`
}

type WorkDayController struct {
	workDays *sheets.WorkDayRepo
	log      *zap.Logger
}

func NewWorkDayController(workDays *sheets.WorkDayRepo, logger *zap.Logger) *WorkDayController {
	return &WorkDayController{workDays: workDays, log: logger}
}

// ListByProject returns a project's logged work days.
func (ct *WorkDayController) ListByProject(c *gin.Context) {
	items, err := ct.workDays.GetByProject(c.Request.Context(), models.ID(c.Param("id")))
	if err != nil {
		respondGatewayError(c, err, "Failed to retrieve work days")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ct *WorkDayController) Create(c *gin.Context) {
	var input WorkDayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := utils.RequiredFields(utils.Field{Name: "date", Value: input.Date}); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := ct.workDays.Create(c.Request.Context(), models.WorkDay{
		ProjectID: models.ID(c.Param("id")),
		Date:      input.Date,
		Hours:     input.Hours,
		Notes:     input.Notes,
	})
	if err != nil {
		respondGatewayError(c, err, "Failed to add work day")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (ct *WorkDayController) Delete(c *gin.Context) {
	if err := ct.workDays.Delete(c.Request.Context(), models.ID(c.Param("id"))); err != nil {
		respondGatewayError(c, err, "Failed to delete work day")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Work day deleted successfully"})
}
