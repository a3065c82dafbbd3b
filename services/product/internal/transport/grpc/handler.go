package grpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/status"

	pb "github.com/MamangRust/simple-microservice-ecommerce-go/proto/product"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/service"
)

type ProductHandler struct {
	pb.UnimplementedProductServiceServer
	service service.ProductService
	logger  *zap.Logger
}

func NewProductHandler(service service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{service: service, logger: logger}
}

func (h *ProductHandler) FindById(ctx context.Context, req *pb.FindByIdProductRequest) (*pb.ProductResponse, error) {
	product, err := h.service.FindByID(ctx, req.Id)
	if err != nil {
		code := mapErrorCode(err)

		h.logger.Error(
			"find product failed",
			zap.String("method", "FindById"),
			zap.Int64("product_id", req.Id),
			zap.String("status_code", code.String()),
			zap.Error(err),
		)

		return nil, status.Error(code, err.Error())
	}

	return &pb.ProductResponse{
		Status:  "success",
		Message: "product found",
		Data: &pb.ProductData{
			Id:    product.ID,
			Name:  product.Name,
			Price: product.Price,
			Stock: product.Stock,
		},
	}, nil
}

func (h *ProductHandler) Create(ctx context.Context, req *pb.CreateProductRequest) (*pb.ProductResponse, error) {
	input := domain.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
	}

	id, err := h.service.Create(ctx, &input)
	if err != nil {
		code := mapErrorCode(err)

		h.logger.Error(
			"create product failed",
			zap.String("method", "Create"),
			zap.String("name", req.Name),
			zap.String("status_code", code.String()),
			zap.Error(err),
		)

		return nil, status.Error(code, err.Error())
	}

	return &pb.ProductResponse{
		Status:  "success",
		Message: "product created",
		Data: &pb.ProductData{
			Id:    id,
			Name:  req.Name,
			Price: req.Price,
			Stock: req.Stock,
		},
	}, nil
}

func (h *ProductHandler) DecreaseStock(ctx context.Context, req *pb.DecreaseStockRequest) (*pb.ProductResponse, error) {
	if err := h.service.DecreaseStock(ctx, req.Id, req.Quantity); err != nil {
		code := mapErrorCode(err)

		h.logger.Error(
			"decrease stock failed",
			zap.String("method", "DecreaseStock"),
			zap.Int64("product_id", req.Id),
			zap.Int32("quantity", req.Quantity),
			zap.String("status_code", code.String()),
			zap.Error(err),
		)

		return nil, status.Error(code, err.Error())
	}

	product, err := h.service.FindByID(ctx, req.Id)
	if err != nil {
		code := mapErrorCode(err)
		return nil, status.Error(code, err.Error())
	}

	return &pb.ProductResponse{
		Status:  "success",
		Message: "stock decreased",
		Data: &pb.ProductData{
			Id:    product.ID,
			Name:  product.Name,
			Price: product.Price,
			Stock: product.Stock,
		},
	}, nil
}

func (h *ProductHandler) Delete(ctx context.Context, req *pb.DeleteProductRequest) (*pb.StatusResponse, error) {
	if err := h.service.Delete(ctx, req.Id); err != nil {
		code := mapErrorCode(err)

		h.logger.Error(
			"delete product failed",
			zap.String("method", "Delete"),
			zap.Int64("product_id", req.Id),
			zap.String("status_code", code.String()),
			zap.Error(err),
		)

		return nil, status.Error(code, err.Error())
	}

	return &pb.StatusResponse{
		Status:  "success",
		Message: "product deleted",
	}, nil
}

func (h *ProductHandler) List(ctx context.Context, req *pb.ListProductsRequest) (*pb.ListProductsResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	products, total, err := h.service.List(ctx, pageSize, (page-1)*pageSize, req.Search)
	if err != nil {
		code := mapErrorCode(err)

		h.logger.Error(
			"list products failed",
			zap.String("method", "List"),
			zap.Int64("page", req.Page),
			zap.Int64("page_size", req.PageSize),
			zap.String("status_code", code.String()),
			zap.Error(err),
		)

		return nil, status.Error(code, err.Error())
	}

	data := make([]*pb.ProductData, 0, len(products))
	for _, p := range products {
		data = append(data, &pb.ProductData{
			Id:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Stock: p.Stock,
		})
	}

	return &pb.ListProductsResponse{
		Status:  "success",
		Message: "products listed",
		Data:    data,
		Total:   total,
	}, nil
}
