package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/logx"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/repository"
)

type ProductService interface {
	Create(ctx context.Context, input *domain.CreateProductInput) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, limit, offset int64, search string) ([]domain.Product, int64, error)
	DecreaseStock(ctx context.Context, id int64, quantity int32) error
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	repo     repository.ProductRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewProductService(repo repository.ProductRepository, logger *zap.Logger) ProductService {
	return &productService{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *productService) Create(ctx context.Context, input *domain.CreateProductInput) (int64, error) {
	if err := s.validate.Struct(input); err != nil {
		logx.Warn(ctx, s.logger, "Invalid product input", zap.Error(err))
		return 0, err
	}

	id, err := s.repo.Create(ctx, input)
	if err != nil {
		logx.Error(ctx, s.logger, "Error creating product", zap.Error(err))
		return 0, err
	}

	logx.Info(ctx, s.logger, "Product created", zap.Int64("product_id", id))
	return id, nil
}

func (s *productService) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			logx.Warn(ctx, s.logger, "Product not found", zap.Int64("product_id", id))
			return nil, err
		}

		logx.Error(ctx, s.logger, "Error getting product", zap.Error(err))
		return nil, fmt.Errorf("error getting product by id: %w", err)
	}

	return product, nil
}

func (s *productService) List(ctx context.Context, limit, offset int64, search string) ([]domain.Product, int64, error) {
	products, total, err := s.repo.List(ctx, limit, offset, search)
	if err != nil {
		logx.Error(ctx, s.logger, "Error listing products", zap.Error(err))
		return nil, 0, fmt.Errorf("error listing products: %w", err)
	}

	return products, total, nil
}

func (s *productService) DecreaseStock(ctx context.Context, id int64, quantity int32) error {
	if err := s.repo.DecreaseStock(ctx, id, quantity); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			logx.Warn(
				ctx,
				s.logger,
				"Insufficient stock",
				zap.Int64("product_id", id),
				zap.Int32("quantity", quantity),
			)
			return err
		}

		logx.Error(ctx, s.logger, "Error decreasing stock", zap.Error(err))
		return err
	}

	return nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			logx.Warn(ctx, s.logger, "Product not found", zap.Int64("product_id", id))
			return err
		}

		logx.Error(ctx, s.logger, "Error deleting product", zap.Error(err))
		return err
	}

	return nil
}
