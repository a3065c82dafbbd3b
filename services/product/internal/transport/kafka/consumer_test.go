package kafka

import (
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/repository"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/service"
)

type memStockRepo struct {
	stock map[int64]int32
}

func (f *memStockRepo) Create(ctx context.Context, input *domain.CreateProductInput) (int64, error) {
	return 0, nil
}

func (f *memStockRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	s, ok := f.stock[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &domain.Product{ID: id, Stock: s}, nil
}

func (f *memStockRepo) List(ctx context.Context, limit, offset int64, search string) ([]domain.Product, int64, error) {
	return nil, 0, nil
}

func (f *memStockRepo) DeleteByID(ctx context.Context, id int64) error { return nil }

func (f *memStockRepo) IncreaseStock(ctx context.Context, id int64, quantity int32) error {
	f.stock[id] += quantity
	return nil
}

func (f *memStockRepo) DecreaseStock(ctx context.Context, id int64, quantity int32) error {
	if f.stock[id] < quantity {
		return repository.ErrInsufficientStock
	}
	f.stock[id] -= quantity
	return nil
}

func newTestConsumer(stock map[int64]int32) (*Consumer, *memStockRepo) {
	repo := &memStockRepo{stock: stock}
	adjuster := service.NewStockAdjuster(repo, zap.NewNop())
	return NewConsumer(adjuster, zap.NewNop()), repo
}

func TestProcessMessage_EmptyPayloadDropped(t *testing.T) {
	consumer, repo := newTestConsumer(map[int64]int32{7: 10})

	msg := &sarama.ConsumerMessage{Topic: "order.created", Key: []byte("1"), Value: nil}

	err := consumer.ProcessMessage(context.Background(), msg)
	require.Error(t, err)
	require.Equal(t, int32(10), repo.stock[7])
}

func TestProcessMessage_MalformedPayloadDropped(t *testing.T) {
	consumer, repo := newTestConsumer(map[int64]int32{7: 10})

	msg := &sarama.ConsumerMessage{
		Topic: "order.created",
		Key:   []byte("1"),
		Value: []byte("{not json"),
	}

	err := consumer.ProcessMessage(context.Background(), msg)
	require.Error(t, err)
	require.Equal(t, int32(10), repo.stock[7])
}

func TestProcessMessage_UnknownDiscriminantDropped(t *testing.T) {
	consumer, repo := newTestConsumer(map[int64]int32{7: 10})

	msg := &sarama.ConsumerMessage{
		Topic: "order.created",
		Key:   []byte("1"),
		Value: []byte(`{"type":"Exploded","order_id":1}`),
	}

	err := consumer.ProcessMessage(context.Background(), msg)
	require.Error(t, err)
	require.Equal(t, int32(10), repo.stock[7])
}

func TestProcessMessage_CreatedDecreasesStock(t *testing.T) {
	consumer, repo := newTestConsumer(map[int64]int32{7: 10})

	msg := &sarama.ConsumerMessage{
		Topic: "order.created",
		Key:   []byte("1"),
		Value: []byte(`{"type":"Created","order_id":1,"user_id":42,"items":[{"product_id":7,"quantity":3}]}`),
	}

	require.NoError(t, consumer.ProcessMessage(context.Background(), msg))
	require.Equal(t, int32(7), repo.stock[7])
}

func TestProcessMessage_UpdatedAppliesNetDelta(t *testing.T) {
	consumer, repo := newTestConsumer(map[int64]int32{7: 10})

	msg := &sarama.ConsumerMessage{
		Topic: "order.updated",
		Key:   []byte("1"),
		Value: []byte(`{"type":"Updated","order_id":1,"updates":[{"product_id":7,"old_quantity":3,"new_quantity":5}]}`),
	}

	require.NoError(t, consumer.ProcessMessage(context.Background(), msg))
	require.Equal(t, int32(8), repo.stock[7])
}

func TestProcessMessage_KeyMismatchIsAdvisoryOnly(t *testing.T) {
	consumer, repo := newTestConsumer(map[int64]int32{7: 10})

	// Key says order 999, payload says order 1. The payload wins and the
	// event is still applied.
	msg := &sarama.ConsumerMessage{
		Topic: "order.created",
		Key:   []byte("999"),
		Value: []byte(`{"type":"Created","order_id":1,"user_id":42,"items":[{"product_id":7,"quantity":2}]}`),
	}

	require.NoError(t, consumer.ProcessMessage(context.Background(), msg))
	require.Equal(t, int32(8), repo.stock[7])
}
