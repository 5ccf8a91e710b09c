package routes

import (
	"strconv"

	"hvacpro-backend/config"
	"hvacpro-backend/controllers"
	"hvacpro-backend/metrics"
	"hvacpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Controllers bundles everything the router wires up.
type Controllers struct {
	Auth      *controllers.AuthController
	Customers *controllers.CustomerController
	Projects  *controllers.ProjectController
	Equipment *controllers.EquipmentController
	WorkDays  *controllers.WorkDayController
	Payments  *controllers.PaymentController
	Photos    *controllers.PhotoController
	Dashboard *controllers.DashboardController
	Schedule  *controllers.ScheduleController
	Profile   *controllers.ProfileController
}

func SetupRouter(cfg config.Config, logger *zap.Logger, ct Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(requestID())
	r.Use(config.PerformanceLogger(logger))
	r.Use(countRequests())

	r.GET("/healthz", func(c *gin.Context) {
		status := "ok"
		if !cfg.Connected() {
			status = "not_connected"
		}
		c.JSON(200, gin.H{"status": status})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/auth")
	{
		auth.POST("/login", ct.Auth.Login)
		auth.POST("/logout", ct.Auth.Logout)

		auth.Use(utils.AuthMiddleware(cfg))
		auth.GET("/me", ct.Auth.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(cfg))
	{
		customers := api.Group("/customers")
		{
			customers.POST("", ct.Customers.Create)
			customers.GET("", ct.Customers.List)
			customers.GET("/:id", ct.Customers.Get)
			customers.PUT("/:id", ct.Customers.Update)
			customers.DELETE("/:id", ct.Customers.Delete)
		}

		projects := api.Group("/projects")
		{
			projects.POST("", ct.Projects.Create)
			projects.GET("", ct.Projects.List)
			projects.GET("/:id", ct.Projects.Get)
			projects.GET("/:id/summary", ct.Projects.Summary)
			projects.PUT("/:id", ct.Projects.Update)
			projects.DELETE("/:id", ct.Projects.Delete)

			// Child collections, addressed through their project
			projects.GET("/:id/equipment", ct.Equipment.ListByProject)
			projects.POST("/:id/equipment", ct.Equipment.Create)
			projects.GET("/:id/workdays", ct.WorkDays.ListByProject)
			projects.POST("/:id/workdays", ct.WorkDays.Create)
			projects.GET("/:id/payments", ct.Payments.ListByProject)
			projects.POST("/:id/payments", ct.Payments.Create)
			projects.GET("/:id/photos", ct.Photos.ListByProject)
			projects.POST("/:id/photos", ct.Photos.Create)
		}

		api.DELETE("/equipment/:id", ct.Equipment.Delete)
		api.DELETE("/workdays/:id", ct.WorkDays.Delete)
		api.DELETE("/payments/:id", ct.Payments.Delete)
		api.DELETE("/photos/:id", ct.Photos.Delete)

		api.GET("/payments", ct.Payments.Overview)
		api.GET("/dashboard", ct.Dashboard.Overview)
		api.GET("/schedule", ct.Schedule.Overview)

		profile := api.Group("/profile")
		{
			profile.GET("", ct.Profile.Get)
			profile.PUT("/company", ct.Profile.UpdateCompany)
			profile.PUT("/account", ct.Profile.UpdateAccount)
		}
	}

	return r
}

// requestID tags each request so log lines from one call correlate.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestId", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
