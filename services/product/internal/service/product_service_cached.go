package service

import (
	"context"
	"fmt"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/cache"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/domain"
)

// cachedProductService fronts point reads with a TTL cache. Writes never
// invalidate entries; a stale read can be served until the TTL expires.
type cachedProductService struct {
	next  ProductService
	store *cache.Store
}

func NewCachedProductService(next ProductService, store *cache.Store) ProductService {
	return &cachedProductService{next: next, store: store}
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func (s *cachedProductService) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var cached domain.Product
	if err := s.store.GetJSON(ctx, productKey(id), &cached); err == nil {
		return &cached, nil
	}

	// Miss or redis trouble, either way fall through to the repository.
	product, err := s.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = s.store.SetJSON(ctx, productKey(id), product)

	return product, nil
}

func (s *cachedProductService) Create(ctx context.Context, input *domain.CreateProductInput) (int64, error) {
	return s.next.Create(ctx, input)
}

func (s *cachedProductService) List(ctx context.Context, limit, offset int64, search string) ([]domain.Product, int64, error) {
	return s.next.List(ctx, limit, offset, search)
}

func (s *cachedProductService) DecreaseStock(ctx context.Context, id int64, quantity int32) error {
	return s.next.DecreaseStock(ctx, id, quantity)
}

func (s *cachedProductService) Delete(ctx context.Context, id int64) error {
	return s.next.Delete(ctx, id)
}
