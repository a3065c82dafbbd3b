package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pkgdomain "github.com/MamangRust/simple-microservice-ecommerce-go/pkg/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/repository"
)

type fakeStockRepo struct {
	stock map[int64]int32
}

func newFakeStockRepo(stock map[int64]int32) *fakeStockRepo {
	return &fakeStockRepo{stock: stock}
}

func (f *fakeStockRepo) Create(ctx context.Context, input *domain.CreateProductInput) (int64, error) {
	return 0, nil
}

func (f *fakeStockRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	s, ok := f.stock[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &domain.Product{ID: id, Stock: s}, nil
}

func (f *fakeStockRepo) List(ctx context.Context, limit, offset int64, search string) ([]domain.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeStockRepo) DeleteByID(ctx context.Context, id int64) error {
	return nil
}

func (f *fakeStockRepo) IncreaseStock(ctx context.Context, id int64, quantity int32) error {
	if _, ok := f.stock[id]; !ok {
		return repository.ErrProductNotFound
	}
	f.stock[id] += quantity
	return nil
}

func (f *fakeStockRepo) DecreaseStock(ctx context.Context, id int64, quantity int32) error {
	s, ok := f.stock[id]
	if !ok || s < quantity {
		return repository.ErrInsufficientStock
	}
	f.stock[id] = s - quantity
	return nil
}

func TestStockAdjuster_CreatedDecreasesStock(t *testing.T) {
	repo := newFakeStockRepo(map[int64]int32{7: 10})
	adjuster := NewStockAdjuster(repo, zap.NewNop())

	event := pkgdomain.NewOrderCreated(1, 42, []pkgdomain.OrderLineEvent{
		{ProductID: 7, Quantity: 3},
	})

	require.NoError(t, adjuster.Apply(context.Background(), event))
	require.Equal(t, int32(7), repo.stock[7])
}

func TestStockAdjuster_UpdatedAppliesSignedDelta(t *testing.T) {
	tests := []struct {
		name  string
		diff  pkgdomain.OrderLineDiff
		want  int32
		start int32
	}{
		{
			name:  "raised quantity takes more stock",
			diff:  pkgdomain.OrderLineDiff{ProductID: 7, OldQuantity: 3, NewQuantity: 5},
			start: 10,
			want:  8,
		},
		{
			name:  "lowered quantity returns stock",
			diff:  pkgdomain.OrderLineDiff{ProductID: 7, OldQuantity: 5, NewQuantity: 2},
			start: 10,
			want:  13,
		},
		{
			name:  "unchanged quantity is a no-op",
			diff:  pkgdomain.OrderLineDiff{ProductID: 7, OldQuantity: 4, NewQuantity: 4},
			start: 10,
			want:  10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeStockRepo(map[int64]int32{7: tt.start})
			adjuster := NewStockAdjuster(repo, zap.NewNop())

			event := pkgdomain.NewOrderUpdated(1, []pkgdomain.OrderLineDiff{tt.diff})

			require.NoError(t, adjuster.Apply(context.Background(), event))
			require.Equal(t, tt.want, repo.stock[7])
		})
	}
}

func TestStockAdjuster_DeletedReleasesStock(t *testing.T) {
	repo := newFakeStockRepo(map[int64]int32{7: 2, 9: 0})
	adjuster := NewStockAdjuster(repo, zap.NewNop())

	event := pkgdomain.NewOrderDeleted(1, []pkgdomain.OrderLineEvent{
		{ProductID: 7, Quantity: 3},
		{ProductID: 9, Quantity: 1},
	})

	require.NoError(t, adjuster.Apply(context.Background(), event))
	require.Equal(t, int32(5), repo.stock[7])
	require.Equal(t, int32(1), repo.stock[9])
}

func TestStockAdjuster_ReplayDoubleApplies(t *testing.T) {
	repo := newFakeStockRepo(map[int64]int32{7: 10})
	adjuster := NewStockAdjuster(repo, zap.NewNop())

	event := pkgdomain.NewOrderCreated(1, 42, []pkgdomain.OrderLineEvent{
		{ProductID: 7, Quantity: 3},
	})

	require.NoError(t, adjuster.Apply(context.Background(), event))
	require.NoError(t, adjuster.Apply(context.Background(), event))

	// No idempotency key: the same event decrements twice.
	require.Equal(t, int32(4), repo.stock[7])
}

func TestStockAdjuster_FailedLineDoesNotStopLaterLines(t *testing.T) {
	repo := newFakeStockRepo(map[int64]int32{7: 1, 9: 10})
	adjuster := NewStockAdjuster(repo, zap.NewNop())

	event := pkgdomain.NewOrderCreated(1, 42, []pkgdomain.OrderLineEvent{
		{ProductID: 7, Quantity: 5},
		{ProductID: 9, Quantity: 3},
	})

	err := adjuster.Apply(context.Background(), event)
	require.ErrorIs(t, err, repository.ErrInsufficientStock)

	// The failing line is skipped, the remaining lines are still applied.
	require.Equal(t, int32(1), repo.stock[7])
	require.Equal(t, int32(7), repo.stock[9])
}

func TestStockAdjuster_InsufficientStockSurfacesError(t *testing.T) {
	repo := newFakeStockRepo(map[int64]int32{7: 1})
	adjuster := NewStockAdjuster(repo, zap.NewNop())

	event := pkgdomain.NewOrderCreated(1, 42, []pkgdomain.OrderLineEvent{
		{ProductID: 7, Quantity: 5},
	})

	require.ErrorIs(t, adjuster.Apply(context.Background(), event), repository.ErrInsufficientStock)
}

func TestStockAdjuster_UnknownTypeRejected(t *testing.T) {
	repo := newFakeStockRepo(map[int64]int32{})
	adjuster := NewStockAdjuster(repo, zap.NewNop())

	err := adjuster.Apply(context.Background(), pkgdomain.OrderEvent{Type: "Exploded", OrderID: 1})
	require.Error(t, err)
}
