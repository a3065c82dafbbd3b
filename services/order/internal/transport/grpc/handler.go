package grpc

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/status"

	pb "github.com/MamangRust/simple-microservice-ecommerce-go/proto/order"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/service"
)

type OrderHandler struct {
	pb.UnimplementedOrderServiceServer
	commands service.CommandService
	queries  service.QueryService
	logger   *zap.Logger
}

func NewOrderHandler(commands service.CommandService, queries service.QueryService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{commands: commands, queries: queries, logger: logger}
}

func toOrderData(o *domain.Order) *pb.OrderData {
	data := &pb.OrderData{
		Id:         o.ID,
		UserId:     o.UserID,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  o.UpdatedAt.Format(time.RFC3339),
	}
	if o.DeletedAt != nil {
		data.DeletedAt = o.DeletedAt.Format(time.RFC3339)
	}
	return data
}

func toLineInputs(items []*pb.OrderLineInput) []domain.OrderLineInput {
	lines := make([]domain.OrderLineInput, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.OrderLineInput{
			LineID:    item.LineId,
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
		})
	}
	return lines
}

func (h *OrderHandler) fail(method string, err error, fields ...zap.Field) error {
	code := mapErrorCode(err)

	fields = append(fields,
		zap.String("method", method),
		zap.String("status_code", code.String()),
		zap.Error(err),
	)
	h.logger.Error(method+" failed", fields...)

	return status.Error(code, err.Error())
}

func (h *OrderHandler) CreateOrder(ctx context.Context, req *pb.CreateOrderRequest) (*pb.OrderResponse, error) {
	order, err := h.commands.CreateOrder(ctx, req.UserId, toLineInputs(req.Items))
	if err != nil {
		return nil, h.fail("CreateOrder", err, zap.Int64("user_id", req.UserId))
	}

	return &pb.OrderResponse{
		Status:  "success",
		Message: "order created",
		Data:    toOrderData(order),
	}, nil
}

func (h *OrderHandler) UpdateOrder(ctx context.Context, req *pb.UpdateOrderRequest) (*pb.OrderResponse, error) {
	order, err := h.commands.UpdateOrder(ctx, req.OrderId, req.UserId, toLineInputs(req.Items))
	if err != nil {
		return nil, h.fail("UpdateOrder", err, zap.Int64("order_id", req.OrderId))
	}

	return &pb.OrderResponse{
		Status:  "success",
		Message: "order updated",
		Data:    toOrderData(order),
	}, nil
}

func (h *OrderHandler) TrashOrder(ctx context.Context, req *pb.OrderIdRequest) (*pb.OrderResponse, error) {
	order, err := h.commands.TrashOrder(ctx, req.OrderId)
	if err != nil {
		return nil, h.fail("TrashOrder", err, zap.Int64("order_id", req.OrderId))
	}

	return &pb.OrderResponse{
		Status:  "success",
		Message: "order trashed",
		Data:    toOrderData(order),
	}, nil
}

func (h *OrderHandler) RestoreOrder(ctx context.Context, req *pb.OrderIdRequest) (*pb.OrderResponse, error) {
	order, err := h.commands.RestoreOrder(ctx, req.OrderId)
	if err != nil {
		return nil, h.fail("RestoreOrder", err, zap.Int64("order_id", req.OrderId))
	}

	return &pb.OrderResponse{
		Status:  "success",
		Message: "order restored",
		Data:    toOrderData(order),
	}, nil
}

func (h *OrderHandler) DeleteOrder(ctx context.Context, req *pb.OrderIdRequest) (*pb.StatusResponse, error) {
	if err := h.commands.DeleteOrder(ctx, req.OrderId); err != nil {
		return nil, h.fail("DeleteOrder", err, zap.Int64("order_id", req.OrderId))
	}

	return &pb.StatusResponse{
		Status:  "success",
		Message: "order deleted",
	}, nil
}

func (h *OrderHandler) RestoreAllOrders(ctx context.Context, _ *pb.Empty) (*pb.StatusResponse, error) {
	restored, err := h.commands.RestoreAllOrders(ctx)
	if err != nil {
		return nil, h.fail("RestoreAllOrders", err)
	}

	return &pb.StatusResponse{
		Status:  "success",
		Message: fmt.Sprintf("restored %d orders", restored),
	}, nil
}

func (h *OrderHandler) DeleteAllOrders(ctx context.Context, _ *pb.Empty) (*pb.StatusResponse, error) {
	deleted, err := h.commands.DeleteAllOrders(ctx)
	if err != nil {
		return nil, h.fail("DeleteAllOrders", err)
	}

	return &pb.StatusResponse{
		Status:  "success",
		Message: fmt.Sprintf("deleted %d orders", deleted),
	}, nil
}

func (h *OrderHandler) FindAllOrders(ctx context.Context, req *pb.FindAllOrdersRequest) (*pb.FindAllOrdersResponse, error) {
	orders, total, err := h.queries.FindAllOrders(ctx, req.Page, req.PageSize, req.Search)
	if err != nil {
		return nil, h.fail("FindAllOrders", err)
	}

	data := make([]*pb.OrderData, 0, len(orders))
	for i := range orders {
		data = append(data, toOrderData(&orders[i]))
	}

	return &pb.FindAllOrdersResponse{
		Status:  "success",
		Message: "orders listed",
		Data:    data,
		Total:   total,
	}, nil
}

func (h *OrderHandler) FindOrderById(ctx context.Context, req *pb.OrderIdRequest) (*pb.OrderResponse, error) {
	order, err := h.queries.FindOrderByID(ctx, req.OrderId)
	if err != nil {
		return nil, h.fail("FindOrderById", err, zap.Int64("order_id", req.OrderId))
	}

	return &pb.OrderResponse{
		Status:  "success",
		Message: "order found",
		Data:    toOrderData(order),
	}, nil
}
