package handler

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/logx"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/utils"
	pb "github.com/MamangRust/simple-microservice-ecommerce-go/proto/product"
)

type ProductHandler struct {
	client   pb.ProductServiceClient
	validate *validator.Validate
	logger   *zap.Logger
	cb       *gobreaker.CircuitBreaker
}

func NewProductHandler(client pb.ProductServiceClient, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		client:   client,
		validate: validator.New(),
		logger:   logger,
		cb:       newBreaker("ProductService", logger),
	}
}

type createProductInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Stock       int32  `json:"stock" validate:"gte=0"`
	Category    string `json:"category"`
}

type decreaseStockInput struct {
	Quantity int32 `json:"quantity" validate:"required,gt=0"`
}

func (h *ProductHandler) grpcError(c *fiber.Ctx, ctx context.Context, method string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) {
		logx.Warn(ctx, h.logger, "Circuit breaker open", zap.String("method", method))

		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "product service temporarily unavailable",
		})
	}

	httpCode := utils.GRPCStatusToHTTP(err)

	logx.Warn(
		ctx,
		h.logger,
		method+" failed",
		zap.Int("http_status", httpCode),
		zap.Error(err),
	)

	return c.Status(httpCode).JSON(fiber.Map{"error": err.Error()})
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	input := new(createProductInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": utils.FormatValidationError(err),
		})
	}

	res, err := utils.ExecuteWithBreaker(h.cb, func() (*pb.ProductResponse, error) {
		return h.client.Create(ctx, &pb.CreateProductRequest{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Stock:       input.Stock,
			Category:    input.Category,
		})
	})
	if err != nil {
		return h.grpcError(c, ctx, "create product", err)
	}

	logx.Info(ctx, h.logger, "product created", zap.Int64("product_id", res.GetData().GetId()))

	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *ProductHandler) FindByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), time.Second)
	defer cancel()

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	res, err := utils.ExecuteWithBreaker(h.cb, func() (*pb.ProductResponse, error) {
		return h.client.FindById(ctx, &pb.FindByIdProductRequest{Id: id})
	})
	if err != nil {
		return h.grpcError(c, ctx, "find product", err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), time.Second)
	defer cancel()

	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseInt(c.Query("page_size", "10"), 10, 64)
	search := c.Query("search")

	res, err := utils.ExecuteWithBreaker(h.cb, func() (*pb.ListProductsResponse, error) {
		return h.client.List(ctx, &pb.ListProductsRequest{
			Page:     page,
			PageSize: pageSize,
			Search:   search,
		})
	})
	if err != nil {
		return h.grpcError(c, ctx, "list products", err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *ProductHandler) DecreaseStock(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	input := new(decreaseStockInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": utils.FormatValidationError(err),
		})
	}

	res, err := utils.ExecuteWithBreaker(h.cb, func() (*pb.ProductResponse, error) {
		return h.client.DecreaseStock(ctx, &pb.DecreaseStockRequest{
			Id:       id,
			Quantity: input.Quantity,
		})
	})
	if err != nil {
		return h.grpcError(c, ctx, "decrease stock", err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), time.Second)
	defer cancel()

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	res, err := utils.ExecuteWithBreaker(h.cb, func() (*pb.StatusResponse, error) {
		return h.client.Delete(ctx, &pb.DeleteProductRequest{Id: id})
	})
	if err != nil {
		return h.grpcError(c, ctx, "delete product", err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
