package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/prasetyadw/storefront-backend/internal/address"
	"github.com/prasetyadw/storefront-backend/internal/cart"
	"github.com/prasetyadw/storefront-backend/internal/category"
	"github.com/prasetyadw/storefront-backend/internal/checkout"
	"github.com/prasetyadw/storefront-backend/internal/config"
	"github.com/prasetyadw/storefront-backend/internal/database"
	"github.com/prasetyadw/storefront-backend/internal/order"
	"github.com/prasetyadw/storefront-backend/internal/payment"
	"github.com/prasetyadw/storefront-backend/internal/product"
	"github.com/prasetyadw/storefront-backend/internal/shipping"
	"github.com/prasetyadw/storefront-backend/internal/user"
	"github.com/prasetyadw/storefront-backend/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.MigrationsPath); err != nil {
		panic(err)
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	var regionCache shipping.RegionCache
	if cfg.RedisAddr != "" {
		regionCache = shipping.NewRedisCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService, cfg.JWTSecret, cfg.SessionTTL)

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)

	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))

	shippingService := shipping.NewService(shipping.NewClient(cfg.ShippingBaseURL, cfg.ShippingAPIKey, cfg.HTTPTimeout), regionCache)
	shippingHandler := shipping.NewHandler(shippingService)

	cartRepo := cart.NewPostgresRepository(db)
	cartHandler := cart.NewHandler(cart.NewService(cartRepo, productService))

	wishlistHandler := wishlist.NewHandler(wishlist.NewService(wishlist.NewPostgresRepository(db)))

	addressHandler := address.NewHandler(address.NewService(address.NewPostgresRepository(db)))

	orderRepo := order.NewPostgresRepository(db)
	orderHandler := order.NewHandler(order.NewService(orderRepo))

	gateway := payment.NewSnapClient(cfg.PaymentBaseURL, cfg.PaymentServerKey, cfg.HTTPTimeout)
	checkoutHandler := checkout.NewHandler(checkout.NewService(product.NewPostgresRepository(db), orderRepo, cartRepo, gateway))

	paymentService := payment.NewService(payment.NewPostgresRepository(db), orderRepo, cfg.PaymentServerKey)
	paymentHandler := payment.NewHandler(paymentService)

	// public routes: auth, catalog browsing, region lookups and the
	// provider webhook (authenticated by its signature, not a session)
	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	shippingHandler.RegisterPublicRoutes(app)
	paymentHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "cookie:" + user.SessionCookie,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized", "error": "UNAUTHORIZED"})
		},
	}))

	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	wishlistHandler.RegisterProtectedRoutes(app)
	addressHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	checkoutHandler.RegisterProtectedRoutes(app)

	if err := app.Listen(cfg.Addr); err != nil {
		panic(err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("URL = %s, Method = %s, Status = %d, Took = %v\n", c.OriginalURL(), c.Method(), c.Response().StatusCode(), time.Since(start))
	return err
}
