package service

import (
	"context"
	"fmt"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/cache"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/domain"
)

// cachedQueryService fronts the read path with a TTL cache. Writes never
// invalidate entries, so a reader can observe pre-write data for up to the
// TTL window after a committed write. That window stacks on top of the
// eventual consistency already introduced by the event pipeline.
type cachedQueryService struct {
	next  QueryService
	store *cache.Store
}

func NewCachedQueryService(next QueryService, store *cache.Store) QueryService {
	return &cachedQueryService{next: next, store: store}
}

type cachedOrderList struct {
	Orders []domain.Order `json:"orders"`
	Total  int64          `json:"total"`
}

func (s *cachedQueryService) FindAllOrders(ctx context.Context, page, pageSize int64, search string) ([]domain.Order, int64, error) {
	key := fmt.Sprintf("orders:%d:%d:%s", page, pageSize, search)

	var cached cachedOrderList
	if err := s.store.GetJSON(ctx, key, &cached); err == nil {
		return cached.Orders, cached.Total, nil
	}

	orders, total, err := s.next.FindAllOrders(ctx, page, pageSize, search)
	if err != nil {
		return nil, 0, err
	}

	_ = s.store.SetJSON(ctx, key, cachedOrderList{Orders: orders, Total: total})

	return orders, total, nil
}

func (s *cachedQueryService) FindOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	key := fmt.Sprintf("order:%d", id)

	var cached domain.Order
	if err := s.store.GetJSON(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	order, err := s.next.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = s.store.SetJSON(ctx, key, order)

	return order, nil
}

func (s *cachedQueryService) FindTrashedOrders(ctx context.Context, page, pageSize int64) ([]domain.Order, int64, error) {
	// The trash listing backs an admin surface; it reads through.
	return s.next.FindTrashedOrders(ctx, page, pageSize)
}
