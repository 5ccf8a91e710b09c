package main

import (
	"fmt"

	"hvacpro-backend/config"
	"hvacpro-backend/controllers"
	"hvacpro-backend/routes"
	"hvacpro-backend/services"
	"hvacpro-backend/sheets"
	"hvacpro-backend/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger := config.NewLogger()
	defer logger.Sync()

	if !cfg.Connected() {
		logger.Warn("SHEETS_API_URL is not set; running disconnected, every data call will report it")
	}

	local, err := store.New(cfg.DataDir)
	if err != nil {
		logger.Fatal("failed to open local store", zap.Error(err))
	}

	client := sheets.NewClient(cfg, logger)
	customerRepo := sheets.NewCustomerRepo(client)
	projectRepo := sheets.NewProjectRepo(client)
	equipmentRepo := sheets.NewEquipmentRepo(client)
	workDayRepo := sheets.NewWorkDayRepo(client)
	paymentRepo := sheets.NewPaymentRepo(client)
	photoRepo := sheets.NewPhotoRepo(client)
	userRepo := sheets.NewUserRepo(client)

	if cfg.RemindersEnabled() {
		reminders := services.NewReminderService(cfg, workDayRepo, projectRepo, customerRepo, logger)
		if err := reminders.StartScheduler(); err != nil {
			logger.Fatal("failed to start reminder scheduler", zap.Error(err))
		}
	} else {
		logger.Info("work-day reminders disabled; Twilio credentials or owner phone not configured")
	}

	r := routes.SetupRouter(cfg, logger, routes.Controllers{
		Auth:      controllers.NewAuthController(cfg, userRepo, local, logger),
		Customers: controllers.NewCustomerController(customerRepo, logger),
		Projects:  controllers.NewProjectController(projectRepo, customerRepo, workDayRepo, paymentRepo, logger),
		Equipment: controllers.NewEquipmentController(equipmentRepo, logger),
		WorkDays:  controllers.NewWorkDayController(workDayRepo, logger),
		Payments:  controllers.NewPaymentController(paymentRepo, projectRepo, customerRepo, logger),
		Photos:    controllers.NewPhotoController(photoRepo, logger),
		Dashboard: controllers.NewDashboardController(customerRepo, projectRepo, paymentRepo, logger),
		Schedule:  controllers.NewScheduleController(workDayRepo, projectRepo, customerRepo, logger),
		Profile:   controllers.NewProfileController(cfg, userRepo, local, logger),
	})
	printRoutes(r)

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
