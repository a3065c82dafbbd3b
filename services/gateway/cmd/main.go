package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joho/godotenv"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/config"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/utils"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/gateway/internal/pkg/client"
	gwhttp "github.com/MamangRust/simple-microservice-ecommerce-go/services/gateway/internal/transport/http"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/gateway/internal/transport/http/handler"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not found: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	tp, err := utils.InitTracer(ctx, "gateway-service")
	if err != nil {
		log.Fatalf("Failed to init trace: %v", err)
	}

	logger, err := config.NewLogger(config.LoggerConfig{
		Level: "info",
		Env:   cfg.Env,
	})
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := fiber.New(fiber.Config{
		ReadTimeout: cfg.HTTP.Timeout,
	})

	app.Use(otelfiber.Middleware())

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.Limiter.Max,
		Expiration: cfg.Limiter.Expiration,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Try again later.",
			})
		},
	}))

	productServiceClient, productConn := client.NewProductClient(cfg.Services.ProductRPC)
	defer func() {
		if err := productConn.Close(); err != nil {
			log.Printf("Error closing product connection: %v\n", err)
		}
	}()

	orderServiceClient, orderConn := client.NewOrderClient(cfg.Services.OrderRPC)
	defer func() {
		if err := orderConn.Close(); err != nil {
			log.Printf("Error closing order connection: %v\n", err)
		}
	}()

	handlers := gwhttp.Handlers{
		Order:   handler.NewOrderHandler(orderServiceClient, logger),
		Product: handler.NewProductHandler(productServiceClient, logger),
	}

	gwhttp.RegisterRoutes(app, handlers, cfg.Auth.JWTSecret)

	logger.Info("Gateway service started!")

	go func() {
		log.Println("HTTP Service listening on: " + cfg.HTTP.Port)
		if err := app.Listen(cfg.HTTP.Port); err != nil {
			log.Fatalf("Error listening on HTTP port %v: %v\n", cfg.HTTP.Port, err)
		}
	}()

	<-ctx.Done()

	log.Println("Shutting down gracefully...")
	shutdownContext, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownContext); err != nil {
		log.Printf("Error shutting down HTTP app: %v\n", err)
	} else {
		log.Println("HTTP App stopped gracefully")
	}

	if err := tp.Shutdown(shutdownContext); err != nil {
		log.Printf("Error shutting down telemetry: %v\n", err)
	} else {
		log.Println("Telemetry stopped correctly")
	}
}
