package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/logx"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	UpdateTotal(ctx context.Context, id, totalPrice int64) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	FindAll(ctx context.Context, limit, offset int64, search string) ([]domain.Order, int64, error)
	FindTrashed(ctx context.Context, limit, offset int64) ([]domain.Order, int64, error)
	Trash(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	RestoreAll(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type orderRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
	tracer trace.Tracer
}

func NewOrderRepository(pool *pgxpool.Pool, logger *zap.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger,
		tracer: otel.Tracer("order/repository"),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.Create")
	defer span.End()

	span.SetAttributes(attribute.Int64("user_id", order.UserID))

	query := `
		INSERT INTO orders (user_id, total_price)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at;
	`

	if err := r.pool.QueryRow(ctx, query, order.UserID, order.TotalPrice).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to insert order", zap.Error(err))

		return fmt.Errorf("error creating order: %w", err)
	}

	return nil
}

func (r *orderRepository) UpdateTotal(ctx context.Context, id, totalPrice int64) error {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.UpdateTotal")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("id", id),
		attribute.Int64("total_price", totalPrice),
	)

	query := `
		UPDATE orders
		SET total_price = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL;
	`

	commandTag, err := r.pool.Exec(ctx, query, id, totalPrice)
	if err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to update order total", zap.Int64("id", id), zap.Error(err))

		return fmt.Errorf("error updating order total: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// GetByID returns the order whatever its soft delete state; callers that
// care about trashed rows inspect DeletedAt themselves.
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.GetByID")
	defer span.End()

	span.SetAttributes(attribute.Int64("id", id))

	query := `
		SELECT id, user_id, total_price, created_at, updated_at, deleted_at
		FROM orders
		WHERE id = $1;
	`

	var o domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}

		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to get order", zap.Int64("id", id), zap.Error(err))

		return nil, fmt.Errorf("error getting order: %w", err)
	}

	return &o, nil
}

func (r *orderRepository) FindAll(ctx context.Context, limit, offset int64, search string) ([]domain.Order, int64, error) {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.FindAll")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("limit", limit),
		attribute.Int64("offset", offset),
		attribute.String("search", search),
	)

	baseQuery := `
		SELECT id, user_id, total_price, created_at, updated_at, deleted_at
		FROM orders
		WHERE deleted_at IS NULL`
	countQuery := `SELECT COUNT(*) FROM orders WHERE deleted_at IS NULL`

	var args []interface{}
	argID := 1

	if search != "" {
		filter := fmt.Sprintf(" AND CAST(user_id AS TEXT) ILIKE $%d", argID)
		baseQuery += filter
		countQuery += filter

		args = append(args, "%"+search+"%")
		argID++
	}

	baseQuery += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, limit, offset)

	return r.queryOrders(ctx, span, baseQuery, countQuery, args, search)
}

func (r *orderRepository) FindTrashed(ctx context.Context, limit, offset int64) ([]domain.Order, int64, error) {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.FindTrashed")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("limit", limit),
		attribute.Int64("offset", offset),
	)

	baseQuery := `
		SELECT id, user_id, total_price, created_at, updated_at, deleted_at
		FROM orders
		WHERE deleted_at IS NOT NULL
		ORDER BY deleted_at DESC LIMIT $1 OFFSET $2`
	countQuery := `SELECT COUNT(*) FROM orders WHERE deleted_at IS NOT NULL`

	return r.queryOrders(ctx, span, baseQuery, countQuery, []interface{}{limit, offset}, "")
}

func (r *orderRepository) queryOrders(
	ctx context.Context,
	span trace.Span,
	baseQuery, countQuery string,
	args []interface{},
	search string,
) ([]domain.Order, int64, error) {
	rows, err := r.pool.Query(ctx, baseQuery, args...)
	if err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to query orders", zap.Error(err))

		return nil, 0, fmt.Errorf("error selecting orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
		); err != nil {
			span.RecordError(err)
			return nil, 0, fmt.Errorf("error scanning rows: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	var countArgs []interface{}
	if search != "" {
		countArgs = append(countArgs, "%"+search+"%")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to count orders", zap.Error(err))

		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return orders, total, nil
}

func (r *orderRepository) Trash(ctx context.Context, id int64) error {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.Trash")
	defer span.End()

	span.SetAttributes(attribute.Int64("id", id))

	query := `
		UPDATE orders
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL;
	`

	commandTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to trash order", zap.Int64("id", id), zap.Error(err))

		return fmt.Errorf("error trashing order: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) Restore(ctx context.Context, id int64) error {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.Restore")
	defer span.End()

	span.SetAttributes(attribute.Int64("id", id))

	query := `
		UPDATE orders
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NOT NULL;
	`

	commandTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to restore order", zap.Int64("id", id), zap.Error(err))

		return fmt.Errorf("error restoring order: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// Delete removes only the order row; its lines are deleted one by one in
// the service loop.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.Delete")
	defer span.End()

	span.SetAttributes(attribute.Int64("id", id))

	query := `DELETE FROM orders WHERE id = $1;`

	commandTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to delete order", zap.Int64("id", id), zap.Error(err))

		return fmt.Errorf("error deleting order: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) RestoreAll(ctx context.Context) (int64, error) {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.RestoreAll")
	defer span.End()

	query := `
		UPDATE orders
		SET deleted_at = NULL, updated_at = NOW()
		WHERE deleted_at IS NOT NULL;
	`

	commandTag, err := r.pool.Exec(ctx, query)
	if err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to restore all orders", zap.Error(err))

		return 0, fmt.Errorf("error restoring all orders: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

func (r *orderRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.DeleteAll")
	defer span.End()

	linesQuery := `
		DELETE FROM order_lines
		WHERE order_id IN (SELECT id FROM orders WHERE deleted_at IS NOT NULL);
	`

	if _, err := r.pool.Exec(ctx, linesQuery); err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to delete lines of trashed orders", zap.Error(err))

		return 0, fmt.Errorf("error deleting lines of trashed orders: %w", err)
	}

	query := `DELETE FROM orders WHERE deleted_at IS NOT NULL;`

	commandTag, err := r.pool.Exec(ctx, query)
	if err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to delete all trashed orders", zap.Error(err))

		return 0, fmt.Errorf("error deleting all trashed orders: %w", err)
	}

	return commandTag.RowsAffected(), nil
}
