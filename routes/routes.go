package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"crmtrack-backend/archive"
	"crmtrack-backend/config"
	"crmtrack-backend/controllers"
	"crmtrack-backend/services"
	"crmtrack-backend/store"
)

func SetupRouter(cfg config.Config, logger *zap.Logger, stores *store.Stores, notifier *services.NotifierService, archiver *archive.Archiver) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(config.RequestID())
	r.Use(config.PerformanceLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	customerController := controllers.NewCustomerController(stores.Customers)
	leadController := controllers.NewLeadController(stores.Leads, notifier)
	contactController := controllers.NewContactController(stores.Contacts)
	dashboardController := controllers.NewDashboardController(stores)
	archiveController := controllers.NewArchiveController(stores, archiver)

	api := r.Group("/api")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)

			// Contact events live under their customer
			customers.POST("/:id/contacts", contactController.AddContact)
			customers.GET("/:id/contacts", contactController.GetContactsByCustomer)
		}

		// Lead routes (no update: leads are added and deleted, not edited)
		leads := api.Group("/leads")
		{
			leads.POST("", leadController.CreateLead)
			leads.GET("", leadController.GetLeads)
			leads.GET("/:id", leadController.GetLead)
			leads.DELETE("/:id", leadController.DeleteLead)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)

		// Archive routes
		api.POST("/archive/export", archiveController.Export)
	}

	return r
}
