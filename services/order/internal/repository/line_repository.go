package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/logx"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/domain"
)

type OrderLineRepository interface {
	CreateLine(ctx context.Context, line *domain.OrderLine) error
	UpdateLine(ctx context.Context, line *domain.OrderLine) error
	ListByOrder(ctx context.Context, orderID int64) ([]domain.OrderLine, error)
	DeleteLine(ctx context.Context, lineID int64) error
}

type orderLineRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
	tracer trace.Tracer
}

func NewOrderLineRepository(pool *pgxpool.Pool, logger *zap.Logger) OrderLineRepository {
	return &orderLineRepository{
		pool:   pool,
		logger: logger,
		tracer: otel.Tracer("order/line_repository"),
	}
}

func (r *orderLineRepository) CreateLine(ctx context.Context, line *domain.OrderLine) error {
	ctx, span := r.tracer.Start(ctx, "OrderLineRepository.CreateLine")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("order_id", line.OrderID),
		attribute.Int64("product_id", line.ProductID),
	)

	query := `
		INSERT INTO order_lines (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at;
	`

	if err := r.pool.QueryRow(
		ctx,
		query,
		line.OrderID,
		line.ProductID,
		line.Quantity,
		line.UnitPrice,
	).Scan(&line.ID, &line.CreatedAt, &line.UpdatedAt); err != nil {
		span.RecordError(err)
		logx.Error(
			ctx,
			r.logger,
			"Failed to insert order line",
			zap.Int64("order_id", line.OrderID),
			zap.Error(err),
		)

		return fmt.Errorf("error creating order line: %w", err)
	}

	return nil
}

func (r *orderLineRepository) UpdateLine(ctx context.Context, line *domain.OrderLine) error {
	ctx, span := r.tracer.Start(ctx, "OrderLineRepository.UpdateLine")
	defer span.End()

	span.SetAttributes(attribute.Int64("id", line.ID))

	query := `
		UPDATE order_lines
		SET product_id = $2, quantity = $3, unit_price = $4, updated_at = NOW()
		WHERE id = $1;
	`

	commandTag, err := r.pool.Exec(ctx, query, line.ID, line.ProductID, line.Quantity, line.UnitPrice)
	if err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to update order line", zap.Int64("id", line.ID), zap.Error(err))

		return fmt.Errorf("error updating order line: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *orderLineRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.OrderLine, error) {
	ctx, span := r.tracer.Start(ctx, "OrderLineRepository.ListByOrder")
	defer span.End()

	span.SetAttributes(attribute.Int64("order_id", orderID))

	query := `
		SELECT id, order_id, product_id, quantity, unit_price, created_at, updated_at
		FROM order_lines
		WHERE order_id = $1
		ORDER BY id;
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to query order lines", zap.Error(err))

		return nil, fmt.Errorf("error selecting order lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var l domain.OrderLine
		if err := rows.Scan(
			&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("error scanning rows: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return lines, nil
}

func (r *orderLineRepository) DeleteLine(ctx context.Context, lineID int64) error {
	ctx, span := r.tracer.Start(ctx, "OrderLineRepository.DeleteLine")
	defer span.End()

	span.SetAttributes(attribute.Int64("id", lineID))

	query := `DELETE FROM order_lines WHERE id = $1;`

	if _, err := r.pool.Exec(ctx, query, lineID); err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to delete order line", zap.Int64("id", lineID), zap.Error(err))

		return fmt.Errorf("error deleting order line: %w", err)
	}

	return nil
}
