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
	"google.golang.org/grpc"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/logx"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/utils"
	pb "github.com/MamangRust/simple-microservice-ecommerce-go/proto/order"
)

type OrderHandler struct {
	client   pb.OrderServiceClient
	validate *validator.Validate
	logger   *zap.Logger
	cb       *gobreaker.CircuitBreaker
}

func NewOrderHandler(client pb.OrderServiceClient, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		client:   client,
		validate: validator.New(),
		logger:   logger,
		cb:       newBreaker("OrderService", logger),
	}
}

type orderLineInput struct {
	LineID    int64 `json:"line_id"`
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int32 `json:"quantity" validate:"required,gt=0"`
}

type orderInput struct {
	Items []orderLineInput `json:"items" validate:"required,min=1,dive"`
}

func (h *OrderHandler) grpcError(c *fiber.Ctx, ctx context.Context, method string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) {
		logx.Warn(ctx, h.logger, "Circuit breaker open", zap.String("method", method))

		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "order service temporarily unavailable",
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

func toPBItems(items []orderLineInput) []*pb.OrderLineInput {
	out := make([]*pb.OrderLineInput, 0, len(items))
	for _, item := range items {
		out = append(out, &pb.OrderLineInput{
			LineId:    item.LineID,
			ProductId: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return out
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	userID, _ := c.Locals("userId").(int64)

	input := new(orderInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": utils.FormatValidationError(err),
		})
	}

	res, err := utils.ExecuteWithBreaker(h.cb, func() (*pb.OrderResponse, error) {
		return h.client.CreateOrder(ctx, &pb.CreateOrderRequest{
			UserId: userID,
			Items:  toPBItems(input.Items),
		})
	})
	if err != nil {
		return h.grpcError(c, ctx, "create order", err)
	}

	logx.Info(ctx, h.logger, "order created", zap.Int64("order_id", res.GetData().GetId()))

	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	orderID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	userID, _ := c.Locals("userId").(int64)

	input := new(orderInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": utils.FormatValidationError(err),
		})
	}

	res, err := utils.ExecuteWithBreaker(h.cb, func() (*pb.OrderResponse, error) {
		return h.client.UpdateOrder(ctx, &pb.UpdateOrderRequest{
			OrderId: orderID,
			UserId:  userID,
			Items:   toPBItems(input.Items),
		})
	})
	if err != nil {
		return h.grpcError(c, ctx, "update order", err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *OrderHandler) idRequest(c *fiber.Ctx, method string, call func(ctx context.Context, req *pb.OrderIdRequest, opts ...grpc.CallOption) (*pb.OrderResponse, error)) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	orderID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	res, err := utils.ExecuteWithBreaker(h.cb, func() (*pb.OrderResponse, error) {
		return call(ctx, &pb.OrderIdRequest{OrderId: orderID})
	})
	if err != nil {
		return h.grpcError(c, ctx, method, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *OrderHandler) Trash(c *fiber.Ctx) error {
	return h.idRequest(c, "trash order", h.client.TrashOrder)
}

func (h *OrderHandler) Restore(c *fiber.Ctx) error {
	return h.idRequest(c, "restore order", h.client.RestoreOrder)
}

func (h *OrderHandler) FindByID(c *fiber.Ctx) error {
	return h.idRequest(c, "find order", h.client.FindOrderById)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	orderID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	res, err := utils.ExecuteWithBreaker(h.cb, func() (*pb.StatusResponse, error) {
		return h.client.DeleteOrder(ctx, &pb.OrderIdRequest{OrderId: orderID})
	})
	if err != nil {
		return h.grpcError(c, ctx, "delete order", err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *OrderHandler) RestoreAll(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	res, err := utils.ExecuteWithBreaker(h.cb, func() (*pb.StatusResponse, error) {
		return h.client.RestoreAllOrders(ctx, &pb.Empty{})
	})
	if err != nil {
		return h.grpcError(c, ctx, "restore all orders", err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *OrderHandler) DeleteAll(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	res, err := utils.ExecuteWithBreaker(h.cb, func() (*pb.StatusResponse, error) {
		return h.client.DeleteAllOrders(ctx, &pb.Empty{})
	})
	if err != nil {
		return h.grpcError(c, ctx, "delete all orders", err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseInt(c.Query("page_size", "10"), 10, 64)
	search := c.Query("search")

	res, err := utils.ExecuteWithBreaker(h.cb, func() (*pb.FindAllOrdersResponse, error) {
		return h.client.FindAllOrders(ctx, &pb.FindAllOrdersRequest{
			Page:     page,
			PageSize: pageSize,
			Search:   search,
		})
	})
	if err != nil {
		return h.grpcError(c, ctx, "list orders", err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
