package client

import (
	"log"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/MamangRust/simple-microservice-ecommerce-go/proto/product"
)

func NewProductClient(url string) (pb.ProductServiceClient, *grpc.ClientConn) {
	conn, err := grpc.NewClient(
		url,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		log.Fatalf("error creating product gRPC client: %v", err)
	}

	return pb.NewProductServiceClient(conn), conn
}
