package client

import (
	"log"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/MamangRust/simple-microservice-ecommerce-go/proto/order"
)

func NewOrderClient(url string) (pb.OrderServiceClient, *grpc.ClientConn) {
	conn, err := grpc.NewClient(
		url,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		log.Fatalf("error creating order gRPC client: %v", err)
	}

	return pb.NewOrderServiceClient(conn), conn
}
