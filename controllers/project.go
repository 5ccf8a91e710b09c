package controllers

import (
	"net/http"

	"hvacpro-backend/models"
	"hvacpro-backend/services"
	"hvacpro-backend/sheets"
	"hvacpro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProjectInput is the create/replace shape for a project. Amounts arrive as
// whatever the form held; they are stored untouched and parsed lazily.
type ProjectInput struct {
	CustomerID     models.ID      `json:"customerId"`
	ProjectName    string         `json:"projectName"`
	Contractor     string         `json:"contractor"`
	Status         string         `json:"status"`
	NatureOfJob    string         `json:"natureOfJob"`
	EstimateAmount models.Numeric `json:"estimateAmount"`
	ContractAmount models.Numeric `json:"contractAmount"`
	Notes          string         `json:"notes"`
}

type ProjectController struct {
	projects  *sheets.ProjectRepo
	customers *sheets.CustomerRepo
	workDays  *sheets.WorkDayRepo
	payments  *sheets.PaymentRepo
	log       *zap.Logger
}

func NewProjectController(projects *sheets.ProjectRepo, customers *sheets.CustomerRepo, workDays *sheets.WorkDayRepo, payments *sheets.PaymentRepo, logger *zap.Logger) *ProjectController {
	return &ProjectController{
		projects:  projects,
		customers: customers,
		workDays:  workDays,
		payments:  payments,
		log:       logger,
	}
}

// List returns all projects with customer names resolved, narrowed by the
// optional ?search=, ?status= and ?year= filters.
func (ct *ProjectController) List(c *gin.Context) {
	ctx := c.Request.Context()

	var projects []models.Project
	var customers []models.Customer

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = ct.projects.GetAll(gctx)
		return
	})
	g.Go(func() (err error) {
		customers, err = ct.customers.GetAll(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		respondGatewayError(c, err, "Failed to retrieve projects")
		return
	}

	ix := services.NewNameIndex(projects, customers)
	projects = services.FilterProjects(projects, ix, c.Query("search"), c.Query("status"), c.Query("year"))

	type row struct {
		models.Project
		CustomerName  string `json:"customerName"`
		DisplayStatus string `json:"displayStatus"`
	}
	rows := make([]row, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, row{
			Project:       p,
			CustomerName:  ix.CustomerName(p.CustomerID),
			DisplayStatus: p.DisplayStatus(),
		})
	}

	c.JSON(http.StatusOK, rows)
}

func (ct *ProjectController) Get(c *gin.Context) {
	project, err := ct.projects.GetByID(c.Request.Context(), models.ID(c.Param("id")))
	if err != nil {
		respondLookupError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

// Summary returns the project together with its hour and payment rollups.
// The three collections load jointly and fail fast on the first error.
func (ct *ProjectController) Summary(c *gin.Context) {
	id := models.ID(c.Param("id"))
	ctx := c.Request.Context()

	var project models.Project
	var workDays []models.WorkDay
	var payments []models.Payment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		project, err = ct.projects.GetByID(gctx, id)
		return
	})
	g.Go(func() (err error) {
		workDays, err = ct.workDays.GetByProject(gctx, id)
		return
	})
	g.Go(func() (err error) {
		payments, err = ct.payments.GetByProject(gctx, id)
		return
	})
	if err := g.Wait(); err != nil {
		respondLookupError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project": project,
		"totals":  services.ComputeProjectTotals(project, workDays, payments),
	})
}

func (ct *ProjectController) Create(c *gin.Context) {
	var input ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := utils.RequiredFields(
		utils.Field{Name: "customerId", Value: input.CustomerID.String()},
		utils.Field{Name: "projectName", Value: input.ProjectName},
	); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if input.Status == "" {
		input.Status = models.StatusEstimate
	}

	created, err := ct.projects.Create(c.Request.Context(), models.Project{
		CustomerID:     input.CustomerID,
		ProjectName:    input.ProjectName,
		Contractor:     input.Contractor,
		Status:         input.Status,
		NatureOfJob:    input.NatureOfJob,
		EstimateAmount: input.EstimateAmount,
		ContractAmount: input.ContractAmount,
		Notes:          input.Notes,
	})
	if err != nil {
		respondGatewayError(c, err, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (ct *ProjectController) Update(c *gin.Context) {
	id := models.ID(c.Param("id"))

	var input ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	updated, err := ct.projects.Update(c.Request.Context(), id, models.Project{
		ID:             id,
		CustomerID:     input.CustomerID,
		ProjectName:    input.ProjectName,
		Contractor:     input.Contractor,
		Status:         input.Status,
		NatureOfJob:    input.NatureOfJob,
		EstimateAmount: input.EstimateAmount,
		ContractAmount: input.ContractAmount,
		Notes:          input.Notes,
	})
	if err != nil {
		respondGatewayError(c, err, "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete removes the project row. Child records are intentionally left
// behind: whether they should cascade is an open data-model question, and
// silently deleting them here would hide it. The warning keeps the orphaning
// visible in the logs.
func (ct *ProjectController) Delete(c *gin.Context) {
	id := models.ID(c.Param("id"))

	if err := ct.projects.Delete(c.Request.Context(), id); err != nil {
		respondGatewayError(c, err, "Failed to delete project")
		return
	}

	ct.log.Warn("project deleted; child records are orphaned, not cascaded",
		zap.String("projectId", id.String()))

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
