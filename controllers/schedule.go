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

type ScheduleController struct {
	workDays  *sheets.WorkDayRepo
	projects  *sheets.ProjectRepo
	customers *sheets.CustomerRepo
	log       *zap.Logger
}

func NewScheduleController(workDays *sheets.WorkDayRepo, projects *sheets.ProjectRepo, customers *sheets.CustomerRepo, logger *zap.Logger) *ScheduleController {
	return &ScheduleController{workDays: workDays, projects: projects, customers: customers, log: logger}
}

// Overview is the schedule page: all work days grouped by date, newest date
// first, with per-day hour totals and the all-time total. ?search= narrows
// the rows before grouping, matching the page's live filter.
func (ct *ScheduleController) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	var workDays []models.WorkDay
	var projects []models.Project
	var customers []models.Customer

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		workDays, err = ct.workDays.GetAll(gctx)
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
		respondGatewayError(c, err, "Failed to load schedule")
		return
	}

	ix := services.NewNameIndex(projects, customers)
	totalHours := services.TotalHours(workDays)
	filtered := services.FilterWorkDays(workDays, ix, c.Query("search"))
	days := services.GroupWorkDays(filtered)

	type dayRow struct {
		Date     string  `json:"date"`
		DayTotal float64 `json:"dayTotal"`
		WorkDays []gin.H `json:"workDays"`
	}
	rows := make([]dayRow, 0, len(days))
	for _, day := range days {
		entries := make([]gin.H, 0, len(day.WorkDays))
		for _, wd := range day.WorkDays {
			entries = append(entries, gin.H{
				"id":           wd.ID,
				"projectId":    wd.ProjectID,
				"date":         wd.Date,
				"hours":        wd.Hours,
				"notes":        wd.Notes,
				"projectName":  ix.ProjectName(wd.ProjectID),
				"customerName": ix.CustomerNameByProject(wd.ProjectID),
			})
		}
		rows = append(rows, dayRow{Date: day.Date, DayTotal: day.DayTotal, WorkDays: entries})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalHours": totalHours,
		"days":       rows,
	})
}
