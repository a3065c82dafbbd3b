package grpc

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"

	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/repository"
)

func mapErrorCode(err error) codes.Code {
	var verrs validator.ValidationErrors

	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return codes.NotFound
	case errors.Is(err, repository.ErrInsufficientStock):
		return codes.FailedPrecondition
	case errors.As(err, &verrs):
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}
