package controllers

import (
	"net/http"

	"hvacpro-backend/models"
	"hvacpro-backend/sheets"
	"hvacpro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EquipmentInput struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	SerialNumber string `json:"serialNumber"`
}

type EquipmentController struct {
	equipment *sheets.EquipmentRepo
	log       *zap.Logger
}

func NewEquipmentController(equipment *sheets.EquipmentRepo, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{equipment: equipment, log: logger}
}

// ListByProject returns a project's equipment.
func (ct *EquipmentController) ListByProject(c *gin.Context) {
	items, err := ct.equipment.GetByProject(c.Request.Context(), models.ID(c.Param("id")))
	if err != nil {
		respondGatewayError(c, err, "Failed to retrieve equipment")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ct *EquipmentController) Create(c *gin.Context) {
	var input EquipmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := utils.RequiredFields(utils.Field{Name: "name", Value: input.Name}); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := ct.equipment.Create(c.Request.Context(), models.Equipment{
		ProjectID:    models.ID(c.Param("id")),
		Name:         input.Name,
		Type:         input.Type,
		SerialNumber: input.SerialNumber,
	})
	if err != nil {
		respondGatewayError(c, err, "Failed to add equipment")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (ct *EquipmentController) Delete(c *gin.Context) {
	if err := ct.equipment.Delete(c.Request.Context(), models.ID(c.Param("id"))); err != nil {
		respondGatewayError(c, err, "Failed to delete equipment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Equipment deleted successfully"})
}
