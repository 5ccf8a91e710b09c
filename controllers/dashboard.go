package controllers

import (
	"net/http"

	"hvacpro-backend/models"
	"hvacpro-backend/services"
	"hvacpro-backend/sheets"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const recentProjectCount = 5

type DashboardController struct {
	customers *sheets.CustomerRepo
	projects  *sheets.ProjectRepo
	payments  *sheets.PaymentRepo
	log       *zap.Logger
}

func NewDashboardController(customers *sheets.CustomerRepo, projects *sheets.ProjectRepo, payments *sheets.PaymentRepo, logger *zap.Logger) *DashboardController {
	return &DashboardController{customers: customers, projects: projects, payments: payments, log: logger}
}

// Overview loads the three collections the dashboard is derived from in one
// joint await. The first failing fetch cancels the others and aborts the
// whole response; there is no partial dashboard.
func (ct *DashboardController) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	var customers []models.Customer
	var projects []models.Project
	var payments []models.Payment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		customers, err = ct.customers.GetAll(gctx)
		return
	})
	g.Go(func() (err error) {
		projects, err = ct.projects.GetAll(gctx)
		return
	})
	g.Go(func() (err error) {
		payments, err = ct.payments.GetAll(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		respondGatewayError(c, err, "Failed to load dashboard")
		return
	}

	stats := services.ComputeDashboardStats(customers, projects, payments)
	recent := services.RecentProjects(projects, recentProjectCount)
	ix := services.NewNameIndex(projects, customers)

	type recentRow struct {
		models.Project
		CustomerName  string `json:"customerName"`
		DisplayStatus string `json:"displayStatus"`
	}
	rows := make([]recentRow, 0, len(recent))
	for _, p := range recent {
		rows = append(rows, recentRow{
			Project:       p,
			CustomerName:  ix.CustomerName(p.CustomerID),
			DisplayStatus: p.DisplayStatus(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":          stats,
		"recentProjects": rows,
	})
}
