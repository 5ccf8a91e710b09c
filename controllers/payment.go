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

type PaymentInput struct {
	Date   string         `json:"date"`
	Amount models.Numeric `json:"amount"`
	Method string         `json:"method"`
	Note   string         `json:"note"`
}

type PaymentController struct {
	payments  *sheets.PaymentRepo
	projects  *sheets.ProjectRepo
	customers *sheets.CustomerRepo
	log       *zap.Logger
}

func NewPaymentController(payments *sheets.PaymentRepo, projects *sheets.ProjectRepo, customers *sheets.CustomerRepo, logger *zap.Logger) *PaymentController {
	return &PaymentController{payments: payments, projects: projects, customers: customers, log: logger}
}

// Overview is the payments page: every payment newest-first with project and
// customer names resolved, plus the received/contract/outstanding rollup.
// The rollup always covers the full data set; ?search= narrows the rows only.
func (ct *PaymentController) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	var payments []models.Payment
	var projects []models.Project
	var customers []models.Customer

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		payments, err = ct.payments.GetAll(gctx)
		return
	})
	g.Go(func() (err error) {
		projects, err = ct.projects.GetAll(gctx)
		return
	})
	g.Go(func() (err error) {
		customers, err = ct.customers.GetAll(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		respondGatewayError(c, err, "Failed to retrieve payments")
		return
	}

	ix := services.NewNameIndex(projects, customers)
	summary := services.SummarizePayments(projects, payments)

	sorted := services.SortPaymentsByDateDesc(payments)
	sorted = services.FilterPayments(sorted, ix, c.Query("search"))

	type row struct {
		models.Payment
		ProjectName  string `json:"projectName"`
		CustomerName string `json:"customerName"`
	}
	rows := make([]row, 0, len(sorted))
	for _, p := range sorted {
		rows = append(rows, row{
			Payment:      p,
			ProjectName:  ix.ProjectName(p.ProjectID),
			CustomerName: ix.CustomerNameByProject(p.ProjectID),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":  summary,
		"payments": rows,
	})
}

// ListByProject returns one project's payments.
func (ct *PaymentController) ListByProject(c *gin.Context) {
	items, err := ct.payments.GetByProject(c.Request.Context(), models.ID(c.Param("id")))
	if err != nil {
		respondGatewayError(c, err, "Failed to retrieve payments")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ct *PaymentController) Create(c *gin.Context) {
	var input PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := utils.RequiredFields(
		utils.Field{Name: "date", Value: input.Date},
		utils.Field{Name: "amount", Value: input.Amount.String()},
	); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := ct.payments.Create(c.Request.Context(), models.Payment{
		ProjectID: models.ID(c.Param("id")),
		Date:      input.Date,
		Amount:    input.Amount,
		Method:    input.Method,
		Note:      input.Note,
	})
	if err != nil {
		respondGatewayError(c, err, "Failed to add payment")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (ct *PaymentController) Delete(c *gin.Context) {
	if err := ct.payments.Delete(c.Request.Context(), models.ID(c.Param("id"))); err != nil {
		respondGatewayError(c, err, "Failed to delete payment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}
