package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"primedrew/internal/config"
	"primedrew/internal/database"
	"primedrew/internal/domain"
	"primedrew/internal/gateway/razorpay"
	"primedrew/internal/middleware"
	"primedrew/internal/modules/admin"
	"primedrew/internal/modules/auth"
	"primedrew/internal/modules/booking"
	"primedrew/internal/modules/catalog"
	"primedrew/internal/modules/complaint"
	"primedrew/internal/modules/earnings"
	"primedrew/internal/modules/review"
	"primedrew/internal/notification"
	jwtsvc "primedrew/internal/pkg/jwt"
	"primedrew/internal/quotestore"
	"primedrew/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	var quotes quotestore.Store
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		quotes = quotestore.NewRedis(redis.NewClient(opts), cfg.QuoteTTL)
		log.Println("Pending quotes stored in Redis")
	} else {
		quotes = quotestore.NewMemory(cfg.QuoteTTL)
		log.Println("Pending quotes stored in memory")
	}

	gateway := razorpay.New(cfg.RazorpayKeyID, cfg.RazorpaySecret, cfg.RazorpayBaseURL)

	var sms notification.Sender = notification.Noop{}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFrom != "" {
		sms = notification.NewTwilio(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom)
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(vehicleRepo, bookingRepo, userRepo, reviewRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(
		bookingRepo,
		vehicleRepo,
		userRepo,
		gateway,
		quotes,
		sms,
		cfg.CancelGrace,
		cfg.CancelFeePct,
		log.Printf,
	)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, bookingRepo)
	reviewHandler := review.NewHandler(reviewService)

	earningsService := earnings.NewService(bookingRepo, userRepo, vehicleRepo)
	earningsHandler := earnings.NewHandler(earningsService)

	adminService := admin.NewService(
		userRepo,
		vehicleRepo,
		bookingRepo,
		sms,
		db,
		cfg.CancelGrace,
		cfg.CancelFeePct,
		log.Printf,
	)
	adminHandler := admin.NewHandler(adminService)

	complaintService := complaint.NewService(complaintRepo)
	complaintHandler := complaint.NewHandler(complaintService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		complaintHandler.RegisterRoutes(v1)

		// any signed-in user
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)
		}

		// hosts manage their fleet and see earnings
		host := v1.Group("/host")
		host.Use(middleware.JWTAuth(j), middleware.RequireRole(domain.RoleHost))
		{
			catalogHandler.RegisterHostRoutes(host)
			earningsHandler.RegisterHostRoutes(host)
		}

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
			earningsHandler.RegisterAdminRoutes(adminGroup)
			complaintHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	log.Println("Listening on", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
