package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	pkgdomain "github.com/MamangRust/simple-microservice-ecommerce-go/pkg/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/kafka"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/logx"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/client"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/repository"
)

type CommandService interface {
	CreateOrder(ctx context.Context, userID int64, lines []domain.OrderLineInput) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID, userID int64, lines []domain.OrderLineInput) (*domain.Order, error)
	TrashOrder(ctx context.Context, id int64) (*domain.Order, error)
	RestoreOrder(ctx context.Context, id int64) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	RestoreAllOrders(ctx context.Context) (int64, error)
	DeleteAllOrders(ctx context.Context) (int64, error)
}

type commandService struct {
	orders    repository.OrderRepository
	lines     repository.OrderLineRepository
	products  client.ProductClient
	publisher kafka.Publisher
	logger    *zap.Logger
}

func NewCommandService(
	orders repository.OrderRepository,
	lines repository.OrderLineRepository,
	products client.ProductClient,
	publisher kafka.Publisher,
	logger *zap.Logger,
) CommandService {
	return &commandService{
		orders:    orders,
		lines:     lines,
		products:  products,
		publisher: publisher,
		logger:    logger,
	}
}

// validateLines fetches a fresh inventory snapshot per line and returns the
// snapshot unit price for each, in input order. Nothing has been written
// when this fails, so any error aborts the whole operation cleanly. The
// check is against a snapshot, not linearizable with concurrent writers.
func (s *commandService) validateLines(ctx context.Context, lines []domain.OrderLineInput) ([]int64, error) {
	prices := make([]int64, len(lines))

	for i, line := range lines {
		snapshot, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			logx.Warn(
				ctx,
				s.logger,
				"Inventory lookup failed",
				zap.Int64("product_id", line.ProductID),
				zap.Error(err),
			)

			return nil, fmt.Errorf("%w: product %d: %v", ErrProductUnavailable, line.ProductID, err)
		}

		if line.Quantity > snapshot.Stock {
			return nil, fmt.Errorf("product %d: %w", line.ProductID, ErrInsufficientStock)
		}

		// The unit price always comes from the snapshot, never from the
		// caller.
		prices[i] = snapshot.Price
	}

	return prices, nil
}

func (s *commandService) CreateOrder(ctx context.Context, userID int64, lines []domain.OrderLineInput) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	prices, err := s.validateLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	var total int64
	for i, line := range lines {
		total += int64(line.Quantity) * prices[i]
	}

	order := &domain.Order{UserID: userID, TotalPrice: total}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	// Lines are written one by one. A crash mid-loop leaves an order with
	// fewer lines than requested.
	items := make([]pkgdomain.OrderLineEvent, 0, len(lines))
	for i, line := range lines {
		row := &domain.OrderLine{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: prices[i],
		}
		if err := s.lines.CreateLine(ctx, row); err != nil {
			return nil, err
		}

		items = append(items, pkgdomain.OrderLineEvent{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	s.publish(ctx, pkgdomain.NewOrderCreated(order.ID, userID, items))

	logx.Info(
		ctx,
		s.logger,
		"Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Int64("total_price", total),
	)

	return order, nil
}

func (s *commandService) UpdateOrder(ctx context.Context, orderID, userID int64, lines []domain.OrderLineInput) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	existing, err := s.lines.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	oldQuantities := make(map[int64]int32, len(existing))
	for _, line := range existing {
		oldQuantities[line.ID] = line.Quantity
	}

	prices, err := s.validateLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	// Only quantity changes on lines that already exist are staged; lines
	// with no prior identity never enter the diff.
	var diffs []pkgdomain.OrderLineDiff
	for _, line := range lines {
		if oldQty, ok := oldQuantities[line.LineID]; ok && oldQty != line.Quantity {
			diffs = append(diffs, pkgdomain.OrderLineDiff{
				ProductID:   line.ProductID,
				OldQuantity: oldQty,
				NewQuantity: line.Quantity,
			})
		}
	}

	var total int64
	for i, line := range lines {
		total += int64(line.Quantity) * prices[i]
	}

	if err := s.orders.UpdateTotal(ctx, orderID, total); err != nil {
		return nil, err
	}

	for i, line := range lines {
		row := &domain.OrderLine{
			ID:        line.LineID,
			OrderID:   orderID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: prices[i],
		}

		if line.LineID != 0 {
			err = s.lines.UpdateLine(ctx, row)
		} else {
			err = s.lines.CreateLine(ctx, row)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(diffs) > 0 {
		s.publish(ctx, pkgdomain.NewOrderUpdated(orderID, diffs))
	}

	order.TotalPrice = total

	logx.Info(
		ctx,
		s.logger,
		"Order updated",
		zap.Int64("order_id", orderID),
		zap.Int64("user_id", userID),
		zap.Int("diffs", len(diffs)),
	)

	return order, nil
}

func (s *commandService) TrashOrder(ctx context.Context, id int64) (*domain.Order, error) {
	// Soft delete is a reversible flag flip; no event leaves the service.
	if err := s.orders.Trash(ctx, id); err != nil {
		return nil, err
	}

	logx.Info(ctx, s.logger, "Order trashed", zap.Int64("order_id", id))

	return s.orders.GetByID(ctx, id)
}

func (s *commandService) RestoreOrder(ctx context.Context, id int64) (*domain.Order, error) {
	if err := s.orders.Restore(ctx, id); err != nil {
		return nil, err
	}

	logx.Info(ctx, s.logger, "Order restored", zap.Int64("order_id", id))

	return s.orders.GetByID(ctx, id)
}

func (s *commandService) DeleteOrder(ctx context.Context, id int64) error {
	if _, err := s.orders.GetByID(ctx, id); err != nil {
		return err
	}

	lines, err := s.lines.ListByOrder(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}

	// Line rows go one at a time. A failure partway leaves earlier
	// deletions committed with no retry or compensation.
	for _, line := range lines {
		if err := s.lines.DeleteLine(ctx, line.ID); err != nil {
			return err
		}
	}

	released := make([]pkgdomain.OrderLineEvent, 0, len(lines))
	for _, line := range lines {
		released = append(released, pkgdomain.OrderLineEvent{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	s.publish(ctx, pkgdomain.NewOrderDeleted(id, released))

	logx.Info(ctx, s.logger, "Order deleted", zap.Int64("order_id", id))

	return nil
}

// RestoreAllOrders and DeleteAllOrders operate on every trashed row and
// bypass the event pipeline entirely.
func (s *commandService) RestoreAllOrders(ctx context.Context) (int64, error) {
	restored, err := s.orders.RestoreAll(ctx)
	if err != nil {
		return 0, err
	}

	logx.Info(ctx, s.logger, "All trashed orders restored", zap.Int64("count", restored))

	return restored, nil
}

func (s *commandService) DeleteAllOrders(ctx context.Context) (int64, error) {
	deleted, err := s.orders.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	logx.Info(ctx, s.logger, "All trashed orders deleted", zap.Int64("count", deleted))

	return deleted, nil
}

// publish is fire-and-forget: one attempt, failure logged, never surfaced.
// The write has already committed, so the caller still sees success even
// when the event is lost.
func (s *commandService) publish(ctx context.Context, event pkgdomain.OrderEvent) {
	topic, err := event.Topic()
	if err != nil {
		logx.Error(ctx, s.logger, "Unroutable order event", zap.Error(err))
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logx.Error(ctx, s.logger, "Failed to marshal order event", zap.Error(err))
		return
	}

	key := strconv.FormatInt(event.OrderID, 10)
	if err := s.publisher.Publish(ctx, topic, key, payload); err != nil {
		logx.Error(
			ctx,
			s.logger,
			"Failed to publish order event",
			zap.String("topic", topic),
			zap.Int64("order_id", event.OrderID),
			zap.Error(err),
		)
	}
}
