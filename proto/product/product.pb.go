// Message bindings for proto/product/product.proto, maintained by hand in the
// legacy struct-tag layout. Regenerate with the directives in
// proto/generate.go when the definitions change.

package product

import (
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/protoadapt"
)

type FindByIdProductRequest struct {
	Id int64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *FindByIdProductRequest) Reset()         { *m = FindByIdProductRequest{} }
func (m *FindByIdProductRequest) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*FindByIdProductRequest) ProtoMessage()    {}

func (m *FindByIdProductRequest) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

type ProductData struct {
	Id    int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name  string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Price int64  `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
	Stock int32  `protobuf:"varint,4,opt,name=stock,proto3" json:"stock,omitempty"`
}

func (m *ProductData) Reset()         { *m = ProductData{} }
func (m *ProductData) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*ProductData) ProtoMessage()    {}

func (m *ProductData) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *ProductData) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *ProductData) GetPrice() int64 {
	if m != nil {
		return m.Price
	}
	return 0
}

func (m *ProductData) GetStock() int32 {
	if m != nil {
		return m.Stock
	}
	return 0
}

type ProductResponse struct {
	Status  string       `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Message string       `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Data    *ProductData `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ProductResponse) Reset()         { *m = ProductResponse{} }
func (m *ProductResponse) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*ProductResponse) ProtoMessage()    {}

func (m *ProductResponse) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *ProductResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *ProductResponse) GetData() *ProductData {
	if m != nil {
		return m.Data
	}
	return nil
}

type CreateProductRequest struct {
	Name        string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description string `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Price       int64  `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
	Stock       int32  `protobuf:"varint,4,opt,name=stock,proto3" json:"stock,omitempty"`
	Category    string `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
}

func (m *CreateProductRequest) Reset()         { *m = CreateProductRequest{} }
func (m *CreateProductRequest) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*CreateProductRequest) ProtoMessage()    {}

func (m *CreateProductRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *CreateProductRequest) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

func (m *CreateProductRequest) GetPrice() int64 {
	if m != nil {
		return m.Price
	}
	return 0
}

func (m *CreateProductRequest) GetStock() int32 {
	if m != nil {
		return m.Stock
	}
	return 0
}

func (m *CreateProductRequest) GetCategory() string {
	if m != nil {
		return m.Category
	}
	return ""
}

type DecreaseStockRequest struct {
	Id       int64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Quantity int32 `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *DecreaseStockRequest) Reset()         { *m = DecreaseStockRequest{} }
func (m *DecreaseStockRequest) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*DecreaseStockRequest) ProtoMessage()    {}

func (m *DecreaseStockRequest) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *DecreaseStockRequest) GetQuantity() int32 {
	if m != nil {
		return m.Quantity
	}
	return 0
}

type DeleteProductRequest struct {
	Id int64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *DeleteProductRequest) Reset()         { *m = DeleteProductRequest{} }
func (m *DeleteProductRequest) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*DeleteProductRequest) ProtoMessage()    {}

func (m *DeleteProductRequest) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

type StatusResponse struct {
	Status  string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *StatusResponse) Reset()         { *m = StatusResponse{} }
func (m *StatusResponse) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*StatusResponse) ProtoMessage()    {}

func (m *StatusResponse) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *StatusResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type ListProductsRequest struct {
	Page     int64  `protobuf:"varint,1,opt,name=page,proto3" json:"page,omitempty"`
	PageSize int64  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Search   string `protobuf:"bytes,3,opt,name=search,proto3" json:"search,omitempty"`
}

func (m *ListProductsRequest) Reset()         { *m = ListProductsRequest{} }
func (m *ListProductsRequest) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*ListProductsRequest) ProtoMessage()    {}

func (m *ListProductsRequest) GetPage() int64 {
	if m != nil {
		return m.Page
	}
	return 0
}

func (m *ListProductsRequest) GetPageSize() int64 {
	if m != nil {
		return m.PageSize
	}
	return 0
}

func (m *ListProductsRequest) GetSearch() string {
	if m != nil {
		return m.Search
	}
	return ""
}

type ListProductsResponse struct {
	Status  string         `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Message string         `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Data    []*ProductData `protobuf:"bytes,3,rep,name=data,proto3" json:"data,omitempty"`
	Total   int64          `protobuf:"varint,4,opt,name=total,proto3" json:"total,omitempty"`
}

func (m *ListProductsResponse) Reset()         { *m = ListProductsResponse{} }
func (m *ListProductsResponse) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*ListProductsResponse) ProtoMessage()    {}

func (m *ListProductsResponse) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *ListProductsResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *ListProductsResponse) GetData() []*ProductData {
	if m != nil {
		return m.Data
	}
	return nil
}

func (m *ListProductsResponse) GetTotal() int64 {
	if m != nil {
		return m.Total
	}
	return 0
}
