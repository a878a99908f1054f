package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PrimeCutStudio/salon-booking/internal/audit"
	"github.com/PrimeCutStudio/salon-booking/internal/cache"
	"github.com/PrimeCutStudio/salon-booking/internal/config"
	"github.com/PrimeCutStudio/salon-booking/internal/handlers"
	infraRepo "github.com/PrimeCutStudio/salon-booking/internal/infra/repository"
	"github.com/PrimeCutStudio/salon-booking/internal/middleware"
	"github.com/PrimeCutStudio/salon-booking/internal/models"
	"github.com/PrimeCutStudio/salon-booking/internal/payments"
	ucAvailability "github.com/PrimeCutStudio/salon-booking/internal/usecase/availability"
	ucBooking "github.com/PrimeCutStudio/salon-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mp *payments.Client) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	windowCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, 60*time.Second)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	listAvailableUC := ucAvailability.NewListAvailable(bookingRepo, windowCache)
	createWindowUC := ucAvailability.NewCreateWindow(bookingRepo, windowCache, auditDispatcher)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, windowCache, auditDispatcher)
	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo, windowCache, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, windowCache, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	equipmentHandler := handlers.NewEquipmentHandler(db)
	cartHandler := handlers.NewCartHandler(db)
	topupHandler := handlers.NewTopUpHandler(db, mp, auditDispatcher)

	availabilityHandler := handlers.NewAvailabilityHandler(listAvailableUC, createWindowUC)

	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		createBookingUC,
		updateStatusUC,
		deleteBookingUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================
	r.GET("/services/", serviceHandler.List)
	r.GET("/equipment/", equipmentHandler.List)
	r.GET("/service-availability/", availabilityHandler.List)

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// Payment provider callback; signature handling is the gateway's
	// concern, this endpoint only records status.
	r.POST("/credit-topups/webhook/", topupHandler.Webhook)

	// ======================================================
	// AUTHENTICATED ROUTES
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/auth/me", meHandler.GetMe)
		secured.PATCH("/auth/me", meHandler.UpdateMe)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		secured.GET("/bookings/", bookingHandler.List)
		secured.POST("/bookings/create/", bookingHandler.Create)
		secured.GET("/bookings/:id/", bookingHandler.Get)
		secured.PUT("/bookings/:id/", bookingHandler.Update)
		secured.PATCH("/bookings/:id/", bookingHandler.Update)

		// ------------------------------
		// CART
		// ------------------------------
		secured.GET("/cart/", cartHandler.Get)
		secured.POST("/cart/add/", cartHandler.Add)
		secured.DELETE("/cart/remove/:item_id/", cartHandler.Remove)
		secured.POST("/cart/clear/", cartHandler.Clear)

		// ------------------------------
		// CREDIT TOP-UPS
		// ------------------------------
		secured.GET("/credit-topups/", topupHandler.List)
		secured.POST("/credit-topups/", topupHandler.Create)

		// ------------------------------
		// STAFF / ADMIN
		// ------------------------------
		staff := secured.Group("/")
		staff.Use(middleware.RequireRole(models.RoleStaff, models.RoleAdmin))
		{
			staff.POST("/service-availability/create/", availabilityHandler.Create)
			staff.DELETE("/bookings/:id/", bookingHandler.Delete)

			staff.POST("/services/", serviceHandler.Create)
			staff.PATCH("/services/:id/", serviceHandler.Update)
		}

		admin := secured.Group("/")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/audit-logs/", auditLogsHandler.List)
		}
	}
}
