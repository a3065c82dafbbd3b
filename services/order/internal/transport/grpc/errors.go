package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"

	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/repository"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/service"
)

func mapErrorCode(err error) codes.Code {
	switch {
	case errors.Is(err, service.ErrEmptyOrder):
		return codes.InvalidArgument
	case errors.Is(err, service.ErrInsufficientStock):
		return codes.FailedPrecondition
	case errors.Is(err, repository.ErrOrderNotFound):
		return codes.NotFound
	case errors.Is(err, service.ErrProductUnavailable):
		return codes.Unavailable
	default:
		return codes.Internal
	}
}
