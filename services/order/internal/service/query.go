package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/logx"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/repository"
)

type QueryService interface {
	FindAllOrders(ctx context.Context, page, pageSize int64, search string) ([]domain.Order, int64, error)
	FindOrderByID(ctx context.Context, id int64) (*domain.Order, error)
	FindTrashedOrders(ctx context.Context, page, pageSize int64) ([]domain.Order, int64, error)
}

type queryService struct {
	orders repository.OrderRepository
	logger *zap.Logger
}

func NewQueryService(orders repository.OrderRepository, logger *zap.Logger) QueryService {
	return &queryService{orders: orders, logger: logger}
}

func normalizePage(page, pageSize int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}

func (s *queryService) FindAllOrders(ctx context.Context, page, pageSize int64, search string) ([]domain.Order, int64, error) {
	limit, offset := normalizePage(page, pageSize)

	orders, total, err := s.orders.FindAll(ctx, limit, offset, search)
	if err != nil {
		logx.Error(ctx, s.logger, "Error listing orders", zap.Error(err))
		return nil, 0, fmt.Errorf("error listing orders: %w", err)
	}

	return orders, total, nil
}

func (s *queryService) FindOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			logx.Warn(ctx, s.logger, "Order not found", zap.Int64("order_id", id))
			return nil, err
		}

		logx.Error(ctx, s.logger, "Error getting order", zap.Error(err))
		return nil, fmt.Errorf("error getting order by id: %w", err)
	}

	return order, nil
}

func (s *queryService) FindTrashedOrders(ctx context.Context, page, pageSize int64) ([]domain.Order, int64, error) {
	limit, offset := normalizePage(page, pageSize)

	orders, total, err := s.orders.FindTrashed(ctx, limit, offset)
	if err != nil {
		logx.Error(ctx, s.logger, "Error listing trashed orders", zap.Error(err))
		return nil, 0, fmt.Errorf("error listing trashed orders: %w", err)
	}

	return orders, total, nil
}
