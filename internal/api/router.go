package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/marketplace-api/internal/api/handler"
	"github.com/freelancehub/marketplace-api/internal/api/middleware"
	"github.com/freelancehub/marketplace-api/internal/api/ws"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/service"
	mongodb "github.com/freelancehub/marketplace-api/internal/infrastructure/db/mongo"
	"github.com/freelancehub/marketplace-api/internal/infrastructure/payment"
	"github.com/freelancehub/marketplace-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, hub *ws.Hub, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	corsConfig := echomiddleware.DefaultCORSConfig
	if cfg.ClientOrigin != "" {
		corsConfig.AllowOrigins = []string{cfg.ClientOrigin}
	}
	corsConfig.AllowCredentials = true
	e.Use(echomiddleware.CORSWithConfig(corsConfig))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	gigRepo := mongodb.NewGigRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	convRepo := mongodb.NewConversationRepository(db)
	msgRepo := mongodb.NewMessageRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)

	paymentProvider := payment.NewStripeProvider(cfg.Stripe.SecretKey)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, log)
	gigService := service.NewGigService(gigRepo, log)
	orderService := service.NewOrderService(orderRepo, gigRepo, paymentProvider, cfg.Stripe.Currency, log)
	chatService := service.NewChatService(convRepo, msgRepo, log)
	reviewService := service.NewReviewService(reviewRepo, gigRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	gigHandler := handler.NewGigHandler(gigService)
	orderHandler := handler.NewOrderHandler(orderService)
	convHandler := handler.NewConversationHandler(chatService)
	msgHandler := handler.NewMessageHandler(chatService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	auth := middleware.Auth(cfg.JWTSecret)
	sellerOnly := middleware.RequireRole(domain.RoleSeller)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- API routes ---
	api := e.Group("/api")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/gigs", gigHandler.List)
	api.GET("/gigs/single/:id", gigHandler.Get)
	api.GET("/gigs/seller/mine", gigHandler.Mine, auth, sellerOnly)
	api.POST("/gigs", gigHandler.Create, auth, sellerOnly)
	api.PUT("/gigs/:id", gigHandler.Update, auth, sellerOnly)
	api.DELETE("/gigs/:id", gigHandler.Delete, auth)

	api.GET("/orders", orderHandler.List, auth)
	api.POST("/orders/create-payment-intent/:gigID", orderHandler.CreatePaymentIntent, auth)
	api.PUT("/orders/confirm", orderHandler.Confirm, auth)
	api.PUT("/orders/status/:id", orderHandler.UpdateStatus, auth)

	api.GET("/conversations", convHandler.List, auth)
	api.POST("/conversations", convHandler.Open, auth)
	api.GET("/conversations/single/:id", convHandler.Get, auth)
	api.PUT("/conversations/:id", convHandler.MarkRead, auth)

	api.GET("/messages/:conversationID", msgHandler.List, auth)
	api.POST("/messages", msgHandler.Create, auth)

	api.GET("/reviews/:gigID", reviewHandler.ListByGig)
	api.POST("/reviews", reviewHandler.Create, auth)

	api.GET("/users", userHandler.List, auth, adminOnly)
	api.GET("/users/:id", userHandler.Get)
	api.PUT("/users/:id", userHandler.Update, auth)
	api.DELETE("/users/:id", userHandler.Delete, auth)

	// --- Realtime chat relay ---
	e.GET("/ws", hub.Serve)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
