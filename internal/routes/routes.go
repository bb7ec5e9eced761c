package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/barberclub/booking-api/internal/audit"
	"github.com/barberclub/booking-api/internal/cache"
	"github.com/barberclub/booking-api/internal/config"
	domain "github.com/barberclub/booking-api/internal/domain/booking"
	"github.com/barberclub/booking-api/internal/handlers"
	infraRepo "github.com/barberclub/booking-api/internal/infra/repository"
	"github.com/barberclub/booking-api/internal/middleware"
	"github.com/barberclub/booking-api/internal/payments"
	ucBooking "github.com/barberclub/booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	availCache *cache.AvailabilityCache,
	gateway payments.Gateway,
	log zerolog.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	premiumPolicy := domain.PremiumPolicy{
		AllowedWeekdays:   cfg.PremiumAllowedWeekdays,
		VisitIntervalDays: cfg.PremiumVisitIntervalDays,
	}

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		availCache,
		cfg.Timezone,
	)

	requestBookingUC := ucBooking.NewRequestBooking(
		bookingRepo,
		availCache,
		auditDispatcher,
		premiumPolicy,
		cfg.Timezone,
		cfg.MinAdvanceMinutes,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		availCache,
		auditDispatcher,
		cfg.Timezone,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	listAgendaByDateUC := ucBooking.NewListAgendaByDate(bookingRepo, cfg.Timezone)
	listAgendaByMonthUC := ucBooking.NewListAgendaByMonth(bookingRepo, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(db, cfg, getAvailabilityUC)

	bookingHandler := handlers.NewBookingHandler(
		cfg,
		bookingRepo,
		requestBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listAgendaByDateUC,
		listAgendaByMonthUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(db, cfg, availCache)
	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, cfg)

	webhookHandler := handlers.NewPaymentWebhookHandler(gateway, confirmBookingUC, log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", availabilityHandler.ListBarbers)
			publicAPI.GET("/services", availabilityHandler.ListServices)
			publicAPI.GET("/availability", availabilityHandler.GetAvailability)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.RegisterBarber)
		api.POST("/auth/login", authHandler.LoginBarber)
		api.POST("/auth/clients/register", authHandler.RegisterClient)
		api.POST("/auth/clients/login", authHandler.LoginClient)

		// ------------------------------
		// WEBHOOKS (sem auth; valida consultando o provedor)
		// ------------------------------
		api.POST("/payments/mercadopago/webhook", webhookHandler.Handle)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Get)

			// ------------------------------
			// CLIENTE
			// ------------------------------
			client := secured.Group("/")
			client.Use(middleware.RequireRole(middleware.RoleClient))
			{
				client.POST("/bookings", bookingHandler.Create)
				client.PATCH("/bookings/:id/cancel", bookingHandler.CancelByClient)
				client.GET("/me/bookings", bookingHandler.ListMine)
				client.GET("/me/subscription", meHandler.GetSubscription)
			}

			// ------------------------------
			// BARBEIRO
			// ------------------------------
			barber := secured.Group("/me")
			barber.Use(middleware.RequireRole(middleware.RoleBarber))
			{
				barber.GET("/agenda", bookingHandler.Agenda)
				barber.GET("/agenda/month", bookingHandler.AgendaByMonth)
				barber.PATCH("/appointments/:id/cancel", bookingHandler.CancelByBarber)
				barber.PATCH("/appointments/:id/complete", bookingHandler.Complete)

				barber.GET("/schedule", scheduleHandler.GetConfig)
				barber.PUT("/schedule", scheduleHandler.UpsertConfig)

				barber.GET("/schedule/days-off", scheduleHandler.ListDaysOff)
				barber.POST("/schedule/days-off", scheduleHandler.CreateDayOff)
				barber.DELETE("/schedule/days-off/:id", scheduleHandler.DeleteDayOff)

				barber.GET("/services", serviceHandler.List)
				barber.POST("/services", serviceHandler.Create)
				barber.PATCH("/services/:id", serviceHandler.Update)
				barber.DELETE("/services/:id", serviceHandler.Delete)

				barber.GET("/clients", clientHandler.List)
				barber.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
