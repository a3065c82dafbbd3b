package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	googleGrpc "google.golang.org/grpc"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/cache"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/config"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/db"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/kafka"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/utils"
	pb "github.com/MamangRust/simple-microservice-ecommerce-go/proto/order"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/client"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/repository"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/service"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/transport/grpc"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := utils.InitTracer(ctx, "order-service")
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

	publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers)
	if err != nil {
		log.Fatalf("error creating kafka publisher: %v", err)
	}

	productClient, productConn, err := client.NewProductClient(cfg.Services.ProductRPC, logger)
	if err != nil {
		log.Fatalf("error creating product client: %v", err)
	}

	orderRepository := repository.NewOrderRepository(pool, logger)
	lineRepository := repository.NewOrderLineRepository(pool, logger)

	commands := service.NewInstrumentedCommandService(
		service.NewCommandService(orderRepository, lineRepository, productClient, publisher, logger),
	)
	queries := service.NewCachedQueryService(
		service.NewQueryService(orderRepository, logger),
		store,
	)

	orderHandler := grpc.NewOrderHandler(commands, queries, logger)

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
	pb.RegisterOrderServiceServer(s, orderHandler)

	grpc_prometheus.Register(s)

	go func() {
		logger.Info("gRPC server listening on " + cfg.GRPC.Port)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("error serving gRPC: %v", err)
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("order service is alive"))
	})

	httpServer := &http.Server{Addr: cfg.HTTP.Port, Handler: mux}
	go func() {
		logger.Info("HTTP server listening on " + cfg.HTTP.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("error listening HTTP on %s: %v", cfg.HTTP.Port, err)
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.GracefulStop()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down HTTP server: " + err.Error())
	}

	if err := publisher.Close(); err != nil {
		logger.Error("error closing kafka publisher: " + err.Error())
	}

	if err := productConn.Close(); err != nil {
		logger.Error("error closing product client connection: " + err.Error())
	}

	pool.Close()

	if err := tp.Shutdown(shutdownCtx); err != nil {
		logger.Error("error stopping telemetry: " + err.Error())
	}
}
