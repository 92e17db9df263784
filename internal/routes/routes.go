package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/barberclubbr/barberclub-api/internal/audit"
	"github.com/barberclubbr/barberclub-api/internal/cache"
	"github.com/barberclubbr/barberclub-api/internal/config"
	"github.com/barberclubbr/barberclub-api/internal/handlers"
	"github.com/barberclubbr/barberclub-api/internal/infra/media"
	"github.com/barberclubbr/barberclub-api/internal/infra/payment"
	infraRepo "github.com/barberclubbr/barberclub-api/internal/infra/repository"
	"github.com/barberclubbr/barberclub-api/internal/middleware"
	ucAppointment "github.com/barberclubbr/barberclub-api/internal/usecase/appointment"
	ucSubscription "github.com/barberclubbr/barberclub-api/internal/usecase/subscription"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	statsCache := cache.NewStatsCache(rdb)

	uploader := media.NewUploader(media.UploaderConfig{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		Endpoint:      cfg.S3Endpoint,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})

	gateway, err := payment.NewMercadoPagoGateway(cfg.MPAccessToken)
	if err != nil {
		log.Fatal("mercado pago gateway:", err)
	}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createConsoleUC := ucAppointment.NewCreateConsoleAppointment(repo, auditDispatcher)
	createClientUC := ucAppointment.NewCreateClientAppointment(repo, auditDispatcher)

	confirmUC := ucAppointment.NewConfirmAppointment(repo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(repo, auditDispatcher)
	cancelClientUC := ucAppointment.NewCancelClientAppointment(repo, auditDispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(repo, auditDispatcher)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(repo)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(repo)
	myAppointmentsUC := ucAppointment.NewListMyAppointments(repo)

	availabilityUC := ucAppointment.NewGetAvailability(repo)
	statsUC := ucAppointment.NewDashboardStats(repo, statsCache)

	// ======================================================
	// 🧠 USE CASES — SUBSCRIPTIONS
	// ======================================================
	checkoutUC := ucSubscription.NewCheckout(repo, gateway, cfg.CheckoutBackURL)
	refreshUC := ucSubscription.NewRefresh(repo, gateway)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	clientAuthHandler := handlers.NewClientAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)

	professionalHandler := handlers.NewProfessionalHandler(db, uploader)
	planHandler := handlers.NewPlanHandler(db)
	clientHandler := handlers.NewClientHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createConsoleUC,
		confirmUC,
		cancelUC,
		completeUC,
		listByDateUC,
		listByMonthUC,
	)

	clientAppointmentHandler := handlers.NewClientAppointmentHandler(
		createClientUC,
		myAppointmentsUC,
		cancelClientUC,
	)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC)
	statsHandler := handlers.NewStatsHandler(statsUC)
	subscriptionHandler := handlers.NewSubscriptionHandler(checkoutUC, refreshUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🩺 OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (vitrine por slug)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetBarbershop)
			publicAPI.GET("/:slug/plans", publicHandler.ListPlans)
			publicAPI.GET("/:slug/professionals", publicHandler.ListProfessionals)
			publicAPI.GET("/:slug/availability", publicHandler.GetAvailability)

			publicAPI.POST("/:slug/clients/register", clientAuthHandler.Register)
			publicAPI.POST("/:slug/clients/login", clientAuthHandler.Login)
		}

		// ------------------------------
		// 🔐 AUTH (equipe)
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (equipe da barbearia)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			secured.GET("/me/professionals", professionalHandler.List)
			secured.POST("/me/professionals", professionalHandler.Create)
			secured.PATCH("/me/professionals/:id", professionalHandler.Update)
			secured.POST("/me/professionals/:id/avatar", professionalHandler.UploadAvatar)

			secured.GET("/me/plans", planHandler.List)
			secured.POST("/me/plans", planHandler.Create)
			secured.PATCH("/me/plans/:id", planHandler.Update)

			secured.GET("/me/clients", clientHandler.List)
			secured.PATCH("/me/clients/:id", clientHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET("/me/dashboard/stats", statsHandler.GetDashboard)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}

		// ------------------------------
		// 🔐 API DO CLIENTE (assinante)
		// ------------------------------
		clientAPI := api.Group("/client")
		clientAPI.Use(middleware.ClientAuthMiddleware(cfg))
		{
			clientAPI.POST("/appointments", clientAppointmentHandler.Book)
			clientAPI.GET("/appointments", clientAppointmentHandler.List)
			clientAPI.PATCH("/appointments/:id/cancel", clientAppointmentHandler.Cancel)

			clientAPI.POST("/subscription/checkout", subscriptionHandler.Checkout)
			clientAPI.POST("/subscription/refresh", subscriptionHandler.Refresh)
		}
	}
}
