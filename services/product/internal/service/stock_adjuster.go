package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	pkgdomain "github.com/MamangRust/simple-microservice-ecommerce-go/pkg/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/logx"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/repository"
)

// StockAdjuster applies compensating stock mutations for order lifecycle
// events. Each line adjustment is an independent statement: a failing line
// is logged and skipped while the remaining lines are still applied, and
// committed adjustments stay committed. There is no idempotency key, so
// replaying an event applies its deltas again.
type StockAdjuster struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

func NewStockAdjuster(repo repository.ProductRepository, logger *zap.Logger) *StockAdjuster {
	return &StockAdjuster{repo: repo, logger: logger}
}

func (a *StockAdjuster) Apply(ctx context.Context, event pkgdomain.OrderEvent) error {
	switch event.Type {
	case pkgdomain.OrderEventCreated:
		return a.applyCreated(ctx, event)
	case pkgdomain.OrderEventUpdated:
		return a.applyUpdated(ctx, event)
	case pkgdomain.OrderEventDeleted:
		return a.applyDeleted(ctx, event)
	default:
		return fmt.Errorf("unknown order event type %q", event.Type)
	}
}

func (a *StockAdjuster) applyCreated(ctx context.Context, event pkgdomain.OrderEvent) error {
	var errs []error
	for _, item := range event.Items {
		if err := a.repo.DecreaseStock(ctx, item.ProductID, item.Quantity); err != nil {
			logx.Error(
				ctx,
				a.logger,
				"Failed to decrease stock for created order",
				zap.Int64("order_id", event.OrderID),
				zap.Int64("product_id", item.ProductID),
				zap.Int32("quantity", item.Quantity),
				zap.Error(err),
			)

			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logx.Info(ctx, a.logger, "Stock reserved", zap.Int64("order_id", event.OrderID))
	return nil
}

func (a *StockAdjuster) applyUpdated(ctx context.Context, event pkgdomain.OrderEvent) error {
	var errs []error
	for _, diff := range event.Updates {
		// old - new: a raised quantity takes more stock, a lowered one
		// gives it back.
		delta := diff.OldQuantity - diff.NewQuantity

		var err error
		switch {
		case delta > 0:
			err = a.repo.IncreaseStock(ctx, diff.ProductID, delta)
		case delta < 0:
			err = a.repo.DecreaseStock(ctx, diff.ProductID, -delta)
		default:
			continue
		}

		if err != nil {
			logx.Error(
				ctx,
				a.logger,
				"Failed to apply stock delta for updated order",
				zap.Int64("order_id", event.OrderID),
				zap.Int64("product_id", diff.ProductID),
				zap.Int32("old_quantity", diff.OldQuantity),
				zap.Int32("new_quantity", diff.NewQuantity),
				zap.Error(err),
			)

			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logx.Info(ctx, a.logger, "Stock adjusted", zap.Int64("order_id", event.OrderID))
	return nil
}

func (a *StockAdjuster) applyDeleted(ctx context.Context, event pkgdomain.OrderEvent) error {
	var errs []error
	for _, item := range event.DeletedItems {
		if err := a.repo.IncreaseStock(ctx, item.ProductID, item.Quantity); err != nil {
			logx.Error(
				ctx,
				a.logger,
				"Failed to release stock for deleted order",
				zap.Int64("order_id", event.OrderID),
				zap.Int64("product_id", item.ProductID),
				zap.Int32("quantity", item.Quantity),
				zap.Error(err),
			)

			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logx.Info(ctx, a.logger, "Stock released", zap.Int64("order_id", event.OrderID))
	return nil
}
