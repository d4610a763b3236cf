package config

import (
	"os"
	"time"

	"Savora-Backend/internal/api/handlers"
	"Savora-Backend/internal/api/routes"
	"Savora-Backend/internal/events"
	"Savora-Backend/internal/middleware"
	"Savora-Backend/internal/utils"
	"Savora-Backend/internal/utils/mailing"
	"Savora-Backend/internal/utils/storage"
	"Savora-Backend/pkg/cart"
	"Savora-Backend/pkg/jwt"
	"Savora-Backend/pkg/order"
	"Savora-Backend/pkg/reservation"
	"Savora-Backend/pkg/restaurant"
	"Savora-Backend/pkg/review"
	"Savora-Backend/pkg/user"
	"Savora-Backend/pkg/wallet"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.SMTPMailer{}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     utils.GetConfig("REDIS_ADDR"),
		Password: utils.GetConfig("REDIS_PASSWORD"),
	})
	ratingCache := review.NewRedisRatingCache(redisClient, 5*time.Minute)
	availabilityCache := reservation.NewRedisAvailabilityCache(redisClient, time.Minute)

	var publisher events.Publisher = events.NoopPublisher{}
	if brokers := utils.GetConfig("KAFKA_BROKERS"); brokers != "" {
		publisher = events.NewKafkaPublisher(brokers, utils.GetConfig("KAFKA_TOPIC"))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	restaurantRepository := restaurant.NewRestaurantRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	cartRepository := cart.NewCartRepository(db)
	walletRepository := wallet.NewWalletRepository(db)
	reservationRepository := reservation.NewReservationRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	restaurantService := restaurant.NewRestaurantService(restaurantRepository, reviewRepository, s3)
	reviewService := review.NewReviewService(reviewRepository, ratingCache, publisher)
	cartService := cart.NewCartService(cartRepository, restaurantRepository, publisher)
	walletService := wallet.NewWalletService(walletRepository)
	reservationService := reservation.NewReservationService(
		reservationRepository,
		restaurantRepository,
		userRepository,
		availabilityCache,
		mailer,
	)
	orderService := order.NewOrderService(
		orderRepository,
		cartRepository,
		walletRepository,
		userRepository,
		publisher,
		mailer,
		order.DefaultQRGenerator{BaseURL: utils.GetConfig("APP_URL")},
	)

	cartService.Subscribe(func(event cart.ChangedEvent) {
		log.Infof("cart changed for user %s: %d items, total %.2f",
			event.UserID, event.ItemCount, event.Total)
	})

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, reservationService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	reservationHandler := handlers.NewReservationHandler(reservationService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	walletHandler := handlers.NewWalletHandler(walletService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		RestaurantHandler:  restaurantHandler,
		CartHandler:        cartHandler,
		OrderHandler:       orderHandler,
		ReservationHandler: reservationHandler,
		ReviewHandler:      reviewHandler,
		WalletHandler:      walletHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
