package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	googleGrpc "google.golang.org/grpc"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/cache"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/config"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/db"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/utils"
	pb "github.com/MamangRust/simple-microservice-ecommerce-go/proto/product"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/repository"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/service"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/transport/grpc"
	productKafka "github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/transport/kafka"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := utils.InitTracer(ctx, "product-service")
	if err != nil {
		log.Fatalf("error init tracer: %v", err)
	}

	logger, err := config.NewLogger(config.LoggerConfig{Level: "info", Env: cfg.Env})
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	pool, err := db.NewPostgresDB(cfg.Postgres.URL)
	if err != nil {
		log.Fatalf("error connecting to postgres: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	store := cache.NewStore(rdb, cfg.Redis.CacheTTL)

	productRepository := repository.NewProductRepository(pool, logger)
	productService := service.NewProductService(productRepository, logger)
	cachedProductService := service.NewCachedProductService(productService, store)
	productHandler := grpc.NewProductHandler(cachedProductService, logger)

	adjuster := service.NewStockAdjuster(productRepository, logger)
	consumer := productKafka.NewConsumer(adjuster, logger)

	lis, err := net.Listen("tcp", cfg.GRPC.Port)
	if err != nil {
		log.Fatalf("error listening on %s: %v", cfg.GRPC.Port, err)
	}

	grpc_prometheus.EnableHandlingTimeHistogram()

	s := googleGrpc.NewServer(
		googleGrpc.StatsHandler(otelgrpc.NewServerHandler()),
		googleGrpc.StreamInterceptor(grpc_prometheus.StreamServerInterceptor),
		googleGrpc.UnaryInterceptor(grpc_prometheus.UnaryServerInterceptor),
	)
	pb.RegisterProductServiceServer(s, productHandler)

	grpc_prometheus.Register(s)

	metricsAddr := utils.ParseWithFallback("METRICS_ADDR", ":9091")
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		logger.Info("metrics server listening on " + metricsAddr)
		if err := http.ListenAndServe(metricsAddr, nil); err != nil {
			logger.Error("metrics serving failed: " + err.Error())
		}
	}()

	go func() {
		logger.Info("gRPC server listening on " + cfg.GRPC.Port)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("error serving gRPC: %v", err)
		}
	}()

	app := fiber.New()
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("product service is alive")
	})

	go func() {
		logger.Info("HTTP server listening on " + cfg.HTTP.Port)
		if err := app.Listen(cfg.HTTP.Port); err != nil {
			log.Fatalf("error listening HTTP on %s: %v", cfg.HTTP.Port, err)
		}
	}()

	// Blocks until shutdown; restarts the subscription after stream errors.
	consumer.Start(ctx, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Backoff)

	logger.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.GracefulStop()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error shutting down HTTP server: " + err.Error())
	}

	pool.Close()

	if err := tp.Shutdown(shutdownCtx); err != nil {
		logger.Error("error stopping telemetry: " + err.Error())
	}
}
