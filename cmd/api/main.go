package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"lakeview/internal/config"
	"lakeview/internal/database"
	"lakeview/internal/middleware"
	"lakeview/internal/modules/auth"
	"lakeview/internal/modules/availability"
	"lakeview/internal/modules/booking"
	"lakeview/internal/modules/catalog"
	"lakeview/internal/modules/events"
	"lakeview/internal/modules/payment"
	jwtsvc "lakeview/internal/pkg/jwt"
	"lakeview/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.EnsureBookingConstraints(db); err != nil {
		log.Fatalf("database constraints: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	stripe := payment.NewStripeClient(cfg.StripeSecretKey, cfg.StripeAPIBase, log.Printf)

	hub := events.NewHub()
	defer hub.Close()
	notifier := events.NewNotifier(hub)
	wsHandler := events.NewWSHandler(hub, j, log.Printf)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo, activityRepo, bookingRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	availabilityService := availability.NewService(roomRepo, activityRepo, bookingRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	bookingService := booking.NewService(
		bookingRepo,
		roomRepo,
		activityRepo,
		stripe,
		notifier,
		cfg.DefaultCurrency,
		log.Printf,
	)
	bookingHandler := booking.NewHandler(bookingService)

	paymentHandler := payment.NewHandler(stripe)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			bookingHandler.RegisterAdminRoutes(admin)
			catalogHandler.RegisterAdminRoutes(admin)
		}
	}

	wsHandler.RegisterRoutes(&r.RouterGroup)

	log.Printf("event=server_start env=%s port=%s", cfg.AppEnv, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
