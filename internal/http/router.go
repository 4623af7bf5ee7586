package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "laundryops/internal/config"
	"laundryops/internal/domain"
	h "laundryops/internal/http/handlers"
	"laundryops/internal/http/middleware"
	"laundryops/internal/http/respond"
	"laundryops/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.Correlation(),
		middleware.Logger(),
		middleware.Metrics(),
		gin.CustomRecovery(func(c *gin.Context, err any) {
			log.Printf("[PANIC] correlation_id=%s err=%v", respond.CorrelationID(c), err)
			respond.AbortErr(c, stdhttp.StatusInternalServerError, "Server error", respond.CodeServerError)
		}),
		cors.New(cors.Config{
			AllowOrigins:     env.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", respond.Header},
			ExposeHeaders:    []string{respond.Header},
			AllowCredentials: true,
			MaxAge:           24 * time.Hour,
		}),
		middleware.Authenticate(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	if err := middleware.RegisterMetrics(prometheus.DefaultRegisterer); err != nil {
		log.Printf("warning: failed to register metrics: %v", err)
	}
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.NoRoute(func(c *gin.Context) {
		respond.Err(c, stdhttp.StatusNotFound, "route not found", respond.CodeNotFound)
	})

	loginLimiter := ratelimit.NewLimiter(env.LoginRateMax, env.LoginRateWindow)

	staff := middleware.RequireRoles(domain.RoleMaster, domain.RoleAdmin, domain.RoleWorker)
	managers := middleware.RequireRoles(domain.RoleMaster, domain.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", middleware.LoginRateLimit(loginLimiter), h.Login)
		auth.POST("/register", h.Register)
		auth.GET("/me", middleware.RequireAuth(), h.Me)

		// Users (staff management; per-role limits enforced in handlers)
		users := api.Group("/users", managers)
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)

		// Clients
		clients := api.Group("/clients", managers)
		clients.GET("", h.GetClients)
		clients.GET("/:id", h.GetClientByID)
		clients.POST("", h.CreateClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)

		// Laundry orders
		orders := api.Group("/orders", staff)
		orders.GET("", h.GetOrders)
		orders.GET("/:id", h.GetOrderByID)
		orders.POST("", h.CreateOrder)
		orders.PUT("/:id/status", h.UpdateOrderStatus)
		orders.GET("/:id/invoice", managers, h.GetOrderInvoicePDF)

		// Client portal
		portal := api.Group("/portal", middleware.RequireRoles(domain.RoleClient))
		portal.GET("/orders", h.GetPortalOrders)

		// Cleaning jobs
		jobs := api.Group("/jobs", staff)
		jobs.GET("", h.GetJobs)
		jobs.GET("/:id", h.GetJobByID)
		jobs.POST("", h.CreateJob)
		jobs.PUT("/:id/status", h.UpdateJobStatus)
		jobs.PUT("/:id/assign", managers, h.AssignJob)
		jobs.POST("/:id/photos", h.CreateJobPhoto)
		jobs.GET("/:id/photos", h.GetJobPhotos)
		jobs.DELETE("/:id/photos/:photoID", h.DeleteJobPhoto)

		// Time tracking
		timeEntries := api.Group("/time-entries", staff)
		timeEntries.POST("/clock-in", h.ClockIn)
		timeEntries.POST("/clock-out", h.ClockOut)
		timeEntries.GET("", h.GetTimeEntries)

		// Payments & finance
		payments := api.Group("/payments", managers)
		payments.GET("", h.GetPayments)
		payments.POST("", h.CreatePayment)

		reports := api.Group("/reports", managers)
		reports.GET("/finance", h.GetFinanceReport)
	}

	return r
}
