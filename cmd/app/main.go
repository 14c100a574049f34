package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"
	"github.com/shakilahmed/banglabazaar-backend/internal/address"
	"github.com/shakilahmed/banglabazaar-backend/internal/cart"
	"github.com/shakilahmed/banglabazaar-backend/internal/category"
	"github.com/shakilahmed/banglabazaar-backend/internal/config"
	"github.com/shakilahmed/banglabazaar-backend/internal/customer"
	"github.com/shakilahmed/banglabazaar-backend/internal/database"
	"github.com/shakilahmed/banglabazaar-backend/internal/favorite"
	"github.com/shakilahmed/banglabazaar-backend/internal/order"
	"github.com/shakilahmed/banglabazaar-backend/internal/payment/bkash"
	"github.com/shakilahmed/banglabazaar-backend/internal/product"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	mongoClient, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Error("mongo connection failed", "uri", cfg.MongoURI, "err", err)
		os.Exit(1)
	}
	defer mongoClient.Disconnect(context.Background())
	db := mongoClient.Database(cfg.MongoDB)

	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Error("index creation failed", "err", err)
		os.Exit(1)
	}

	rdb, err := database.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Error("redis connection failed", "addr", cfg.RedisAddr, "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(log))

	customerService := customer.NewService(customer.NewMongoRepository(db))
	customerHandler := customer.NewHandler(customerService)

	productService := product.NewService(product.NewMongoRepository(db))
	productHandler := product.NewHandler(productService)

	categoryHandler := category.NewHandler(category.NewService(category.NewMongoRepository(db)))

	cartStore := cart.NewRedisStore(rdb, 30*24*time.Hour)
	cartHandler := cart.NewHandler(cart.NewService(cartStore, productService))

	orderRepo := order.NewMongoRepository(db)
	orderService := order.NewService(orderRepo, cfg.OrderPrefix)
	orderHandler := order.NewHandler(orderService, customerService, productService, log)

	bkashClient := bkash.NewClient(bkash.Config{
		BaseURL:   cfg.BkashBaseURL,
		AppKey:    cfg.BkashAppKey,
		AppSecret: cfg.BkashAppSecret,
		Username:  cfg.BkashUsername,
		Password:  cfg.BkashPassword,
	}, bkash.NewRedisTokenCache(rdb))
	bkashService := bkash.NewService(bkashClient, orderRepo, bkash.URLs{
		Success:  cfg.PaymentSuccessURL,
		Failure:  cfg.PaymentFailureURL,
		Callback: cfg.PaymentCallbackURL,
	}, log)
	bkashHandler := bkash.NewHandler(bkashService)

	favoriteHandler := favorite.NewHandler(favorite.NewService(favorite.NewMongoRepository(db), productService))

	addressHandler := address.NewHandler(address.NewService(address.NewMongoRepository(db)))

	// public routes
	customerHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	// the gateway calls the callback without a session
	bkashHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	customerHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	categoryHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	bkashHandler.RegisterProtectedRoutes(app)
	favoriteHandler.RegisterProtectedRoutes(app)
	addressHandler.RegisterProtectedRoutes(app)

	log.Info("listening", "addr", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("request",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)
		return err
	}
}
