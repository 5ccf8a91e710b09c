package controllers

import (
	"net/http"

	"hvacpro-backend/models"
	"hvacpro-backend/sheets"
	"hvacpro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PhotoInput struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type PhotoController struct {
	photos *sheets.PhotoRepo
	log    *zap.Logger
}

func NewPhotoController(photos *sheets.PhotoRepo, logger *zap.Logger) *PhotoController {
	return &PhotoController{photos: photos, log: logger}
}

// ListByProject returns a project's photos.
func (ct *PhotoController) ListByProject(c *gin.Context) {
	items, err := ct.photos.GetByProject(c.Request.Context(), models.ID(c.Param("id")))
	if err != nil {
		respondGatewayError(c, err, "Failed to retrieve photos")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ct *PhotoController) Create(c *gin.Context) {
	var input PhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := utils.RequiredFields(utils.Field{Name: "url", Value: input.URL}); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := ct.photos.Create(c.Request.Context(), models.Photo{
		ProjectID: models.ID(c.Param("id")),
		URL:       input.URL,
		Filename:  input.Filename,
	})
	if err != nil {
		respondGatewayError(c, err, "Failed to add photo")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (ct *PhotoController) Delete(c *gin.Context) {
	if err := ct.photos.Delete(c.Request.Context(), models.ID(c.Param("id"))); err != nil {
		respondGatewayError(c, err, "Failed to delete photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}
