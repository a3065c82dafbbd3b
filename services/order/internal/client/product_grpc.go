package client

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/utils"
	pb "github.com/MamangRust/simple-microservice-ecommerce-go/proto/product"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/domain"
)

// ProductClient fetches the inventory snapshot used to validate order
// writes. The snapshot is read-only and re-fetched on every call.
type ProductClient interface {
	FindByID(ctx context.Context, id int64) (*domain.ProductSnapshot, error)
}

type productGRPCClient struct {
	client pb.ProductServiceClient
	cb     *gobreaker.CircuitBreaker
}

func NewProductClient(url string, logger *zap.Logger) (ProductClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		url,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating product client: %w", err)
	}

	settings := gobreaker.Settings{
		Name:        "ProductService",
		MaxRequests: 3,
		Interval:    5 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn(
				"Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &productGRPCClient{
		client: pb.NewProductServiceClient(conn),
		cb:     gobreaker.NewCircuitBreaker(settings),
	}, conn, nil
}

func (c *productGRPCClient) FindByID(ctx context.Context, id int64) (*domain.ProductSnapshot, error) {
	resp, err := utils.ExecuteWithBreaker(c.cb, func() (*pb.ProductResponse, error) {
		return c.client.FindById(ctx, &pb.FindByIdProductRequest{Id: id})
	})
	if err != nil {
		return nil, err
	}

	data := resp.GetData()
	if data == nil {
		return nil, fmt.Errorf("product %d: empty response payload", id)
	}

	return &domain.ProductSnapshot{
		ID:    data.Id,
		Name:  data.Name,
		Price: data.Price,
		Stock: data.Stock,
	}, nil
}
