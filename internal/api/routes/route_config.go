package routes

import (
	"Savora-Backend/internal/api/handlers"
	"Savora-Backend/internal/middleware"
	"Savora-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	RestaurantHandler  handlers.RestaurantHandler
	CartHandler        handlers.CartHandler
	OrderHandler       handlers.OrderHandler
	ReservationHandler handlers.ReservationHandler
	ReviewHandler      handlers.ReviewHandler
	WalletHandler      handlers.WalletHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Restaurants()
	c.Carts()
	c.Orders()
	c.Reservations()
	c.Reviews()
	c.Wallet()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/api-keys", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), c.UserHandler.IssueAPIKey)
	}
}

func (c *Config) Restaurants() {
	restaurants := c.App.Group("/api/v1/restaurants")
	{
		restaurants.Get("", c.RestaurantHandler.GetRestaurants)
		restaurants.Get("/:restaurant_id", c.RestaurantHandler.GetRestaurant)
		restaurants.Get("/:restaurant_id/menu", c.RestaurantHandler.GetMenu)
		restaurants.Get("/:restaurant_id/availability", c.RestaurantHandler.GetAvailability)
	}

	admin := c.App.Group("/api/v1/restaurants", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly())
	{
		admin.Post("/:restaurant_id/menu", c.RestaurantHandler.AddMenuItem)
		admin.Patch("/menu/:item_id", c.RestaurantHandler.UpdateMenuItem)
		admin.Post("/:restaurant_id/fully-booked", c.RestaurantHandler.MarkDateFullyBooked)
		admin.Delete("/:restaurant_id/fully-booked", c.RestaurantHandler.UnmarkDateFullyBooked)
	}
}

func (c *Config) Carts() {
	carts := c.App.Group("/api/v1/carts", c.Middleware.AuthMiddleware(c.JWTService))
	{
		carts.Get("/:restaurant_id", c.CartHandler.GetCart)
		carts.Post("/items", c.CartHandler.AddItem)
		carts.Patch("/items", c.CartHandler.SetQuantity)
		carts.Delete("/items", c.CartHandler.RemoveItem)
		carts.Delete("/:restaurant_id", c.CartHandler.ClearCart)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))
	{
		orders.Post("/checkout", c.OrderHandler.Checkout)
		orders.Get("", c.OrderHandler.GetOrders)
		orders.Get("/:order_id", c.OrderHandler.GetOrder)
		orders.Patch("/:order_id/status", c.OrderHandler.UpdateOrderStatus)
		orders.Get("/:order_id/qr", c.OrderHandler.GetPickupQR)
	}
}

func (c *Config) Reservations() {
	reservations := c.App.Group("/api/v1/reservations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		reservations.Post("", c.ReservationHandler.CreateReservation)
		reservations.Get("", c.ReservationHandler.GetReservations)
		reservations.Delete("/:reservation_id", c.ReservationHandler.CancelReservation)
	}
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/v1/reviews")
	{
		reviews.Get("/:target_id", c.ReviewHandler.GetReviews)
		reviews.Get("/:target_id/average", c.ReviewHandler.GetAverageRating)
		reviews.Put("", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.UpsertReview)
	}
}

func (c *Config) Wallet() {
	wallet := c.App.Group("/api/v1/wallet", c.Middleware.AuthMiddleware(c.JWTService))
	{
		wallet.Get("/balance", c.WalletHandler.GetBalance)
		wallet.Post("/topup", c.WalletHandler.TopUp)
		wallet.Get("/transactions", c.WalletHandler.GetTransactionHistory)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
