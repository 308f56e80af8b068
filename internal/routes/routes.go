package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/mariananails/salon-booking/internal/audit"
	"github.com/mariananails/salon-booking/internal/config"
	"github.com/mariananails/salon-booking/internal/handlers"
	"github.com/mariananails/salon-booking/internal/infra/cache"
	infraRepo "github.com/mariananails/salon-booking/internal/infra/repository"
	"github.com/mariananails/salon-booking/internal/infra/storage"
	"github.com/mariananails/salon-booking/internal/logging"
	"github.com/mariananails/salon-booking/internal/middleware"
	ucAppointment "github.com/mariananails/salon-booking/internal/usecase/appointment"
	ucDashboard "github.com/mariananails/salon-booking/internal/usecase/dashboard"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *logging.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	dashCache := cache.NewDashboardCache(rdb, time.Minute)
	galleryStorage := storage.NewGalleryStorage(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, auditDispatcher)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)
	listUpcomingUC := ucAppointment.NewListUpcomingAppointments(appointmentRepo)
	verifyDepositUC := ucAppointment.NewVerifyDeposit(appointmentRepo, auditDispatcher)
	updateUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)

	overviewUC := ucDashboard.NewGetOverview(db, dashCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	homeHandler := handlers.NewHomeHandler(db)
	bookingHandler := handlers.NewBookingHandler(bookUC, availabilityUC, listUpcomingUC, dashCache)
	dashboardHandler := handlers.NewDashboardHandler(db, overviewUC, verifyDepositUC, updateUC, dashCache)
	serviceHandler := handlers.NewServiceHandler(db)
	galleryHandler := handlers.NewGalleryHandler(db, galleryStorage)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/", middleware.OptionalAuth(cfg), homeHandler.Show)
	r.POST("/", middleware.OptionalAuth(cfg), homeHandler.SubmitForm)

	r.POST("/registro", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// ======================================================
	// CLIENTS (auth required)
	// ======================================================
	reservas := r.Group("/reservas")
	reservas.Use(middleware.AuthMiddleware(cfg))
	{
		reservas.GET("", bookingHandler.Show)
		reservas.POST("", bookingHandler.Create)
	}

	// ======================================================
	// STAFF
	// ======================================================
	staff := r.Group("/")
	staff.Use(middleware.AuthMiddleware(cfg), middleware.StaffOnly())
	{
		staff.GET("/gestion", dashboardHandler.Show)
		staff.GET("/gestion/auditoria", auditLogsHandler.List)

		staff.POST("/turnos/:id/verificar-senia", dashboardHandler.VerifyDeposit)
		staff.PATCH("/turnos/:id", dashboardHandler.UpdateAppointment)

		staff.PATCH("/mensajes/:id/resolver", dashboardHandler.ResolveMessage)

		staff.GET("/servicios", serviceHandler.List)
		staff.POST("/servicios", serviceHandler.Create)
		staff.PATCH("/servicios/:id", serviceHandler.Update)

		staff.POST("/galeria", galleryHandler.Upload)
		staff.DELETE("/galeria/:id", galleryHandler.Delete)
	}
}
