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
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, input *domain.CreateProductInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, limit, offset int64, search string) ([]domain.Product, int64, error)
	DeleteByID(ctx context.Context, id int64) error
	IncreaseStock(ctx context.Context, id int64, quantity int32) error
	DecreaseStock(ctx context.Context, id int64, quantity int32) error
}

type productRepository struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
	logger *zap.Logger
}

func NewProductRepository(pool *pgxpool.Pool, logger *zap.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger,
		tracer: otel.Tracer("product/repository"),
	}
}

func (r *productRepository) Create(ctx context.Context, input *domain.CreateProductInput) (int64, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.Create")
	defer span.End()

	span.SetAttributes(attribute.String("name", input.Name))

	query := `
		INSERT INTO products (name, description, price, stock, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	var id int64
	err := r.pool.QueryRow(
		ctx,
		query,
		input.Name,
		input.Description,
		input.Price,
		input.Stock,
		input.Category,
	).Scan(&id)
	if err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Error creating product", zap.Error(err))

		return 0, fmt.Errorf("error creating product: %w", err)
	}

	return id, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.GetByID")
	defer span.End()

	span.SetAttributes(attribute.Int64("id", id))

	query := `
		SELECT id, name, description, price, stock, category, created_at, updated_at
		FROM products
		WHERE id = $1 AND deleted_at IS NULL;
	`

	var p domain.Product
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		&p.Stock, &p.Category, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}

		span.RecordError(err)
		logx.Error(ctx, r.logger, "Error getting product", zap.Int64("id", id), zap.Error(err))

		return nil, fmt.Errorf("error getting product: %w", err)
	}

	return &p, nil
}

func (r *productRepository) List(ctx context.Context, limit, offset int64, search string) ([]domain.Product, int64, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.List")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("limit", limit),
		attribute.Int64("offset", offset),
		attribute.String("search", search),
	)

	baseQuery := `
		SELECT id, name, description, price, stock, category, created_at, updated_at
		FROM products
		WHERE deleted_at IS NULL`
	countQuery := `SELECT COUNT(*) FROM products WHERE deleted_at IS NULL`

	var args []interface{}
	argID := 1

	if search != "" {
		filter := fmt.Sprintf(" AND name ILIKE $%d", argID)
		baseQuery += filter
		countQuery += filter

		args = append(args, "%"+search+"%")
		argID++
	}

	baseQuery += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, baseQuery, args...)
	if err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Error listing products", zap.Error(err))

		return nil, 0, fmt.Errorf("error selecting products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price,
			&p.Stock, &p.Category, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			span.RecordError(err)
			logx.Error(ctx, r.logger, "Failed to scan product row", zap.Error(err))

			return nil, 0, fmt.Errorf("error scanning rows: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	var countArgs []interface{}
	if search != "" {
		countArgs = append(countArgs, args[0])
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Failed to count products", zap.Error(err))

		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	return products, total, nil
}

func (r *productRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.DeleteByID")
	defer span.End()

	span.SetAttributes(attribute.Int64("id", id))

	query := `
		UPDATE products
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL;
	`

	commandTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Error deleting product", zap.Int64("id", id), zap.Error(err))

		return fmt.Errorf("error deleting product: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *productRepository) IncreaseStock(ctx context.Context, id int64, quantity int32) error {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.IncreaseStock")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("id", id),
		attribute.Int("quantity", int(quantity)),
	)

	query := `
		UPDATE products
		SET stock = stock + $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL;
	`

	commandTag, err := r.pool.Exec(ctx, query, id, quantity)
	if err != nil {
		span.RecordError(err)
		logx.Error(ctx, r.logger, "Error increasing stock", zap.Int64("id", id), zap.Error(err))

		return fmt.Errorf("error increasing stock for product %d: %w", id, err)
	}

	if commandTag.RowsAffected() == 0 {
		logx.Warn(ctx, r.logger, "Product not found", zap.Int64("product_id", id))
		return ErrProductNotFound
	}

	return nil
}

// DecreaseStock refuses to take stock below zero. The guard lives in the
// WHERE clause so the check and the write are a single statement.
func (r *productRepository) DecreaseStock(ctx context.Context, id int64, quantity int32) error {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.DecreaseStock")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("id", id),
		attribute.Int("quantity", int(quantity)),
	)

	query := `
		UPDATE products
		SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1
			AND stock >= $2
			AND deleted_at IS NULL;
	`

	commandTag, err := r.pool.Exec(ctx, query, id, quantity)
	if err != nil {
		span.RecordError(err)
		logx.Error(
			ctx,
			r.logger,
			"Error decreasing stock",
			zap.Int64("id", id),
			zap.Int32("quantity", quantity),
			zap.Error(err),
		)

		return fmt.Errorf("error decreasing stock for product %d: %w", id, err)
	}

	if commandTag.RowsAffected() == 0 {
		return ErrInsufficientStock
	}

	return nil
}
