// Message bindings for proto/order/order.proto, maintained by hand in the
// legacy struct-tag layout. Regenerate with the directives in
// proto/generate.go when the definitions change.

package order

import (
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/protoadapt"
)

type OrderLineInput struct {
	LineId    int64 `protobuf:"varint,1,opt,name=line_id,json=lineId,proto3" json:"line_id,omitempty"`
	ProductId int64 `protobuf:"varint,2,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Quantity  int32 `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *OrderLineInput) Reset()         { *m = OrderLineInput{} }
func (m *OrderLineInput) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*OrderLineInput) ProtoMessage()    {}

func (m *OrderLineInput) GetLineId() int64 {
	if m != nil {
		return m.LineId
	}
	return 0
}

func (m *OrderLineInput) GetProductId() int64 {
	if m != nil {
		return m.ProductId
	}
	return 0
}

func (m *OrderLineInput) GetQuantity() int32 {
	if m != nil {
		return m.Quantity
	}
	return 0
}

type CreateOrderRequest struct {
	UserId int64             `protobuf:"varint,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Items  []*OrderLineInput `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
}

func (m *CreateOrderRequest) Reset()         { *m = CreateOrderRequest{} }
func (m *CreateOrderRequest) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*CreateOrderRequest) ProtoMessage()    {}

func (m *CreateOrderRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *CreateOrderRequest) GetItems() []*OrderLineInput {
	if m != nil {
		return m.Items
	}
	return nil
}

type UpdateOrderRequest struct {
	OrderId int64             `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	UserId  int64             `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Items   []*OrderLineInput `protobuf:"bytes,3,rep,name=items,proto3" json:"items,omitempty"`
}

func (m *UpdateOrderRequest) Reset()         { *m = UpdateOrderRequest{} }
func (m *UpdateOrderRequest) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*UpdateOrderRequest) ProtoMessage()    {}

func (m *UpdateOrderRequest) GetOrderId() int64 {
	if m != nil {
		return m.OrderId
	}
	return 0
}

func (m *UpdateOrderRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *UpdateOrderRequest) GetItems() []*OrderLineInput {
	if m != nil {
		return m.Items
	}
	return nil
}

type OrderData struct {
	Id         int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId     int64  `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TotalPrice int64  `protobuf:"varint,3,opt,name=total_price,json=totalPrice,proto3" json:"total_price,omitempty"`
	CreatedAt  string `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt  string `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	DeletedAt  string `protobuf:"bytes,6,opt,name=deleted_at,json=deletedAt,proto3" json:"deleted_at,omitempty"`
}

func (m *OrderData) Reset()         { *m = OrderData{} }
func (m *OrderData) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*OrderData) ProtoMessage()    {}

func (m *OrderData) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *OrderData) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *OrderData) GetTotalPrice() int64 {
	if m != nil {
		return m.TotalPrice
	}
	return 0
}

func (m *OrderData) GetCreatedAt() string {
	if m != nil {
		return m.CreatedAt
	}
	return ""
}

func (m *OrderData) GetUpdatedAt() string {
	if m != nil {
		return m.UpdatedAt
	}
	return ""
}

func (m *OrderData) GetDeletedAt() string {
	if m != nil {
		return m.DeletedAt
	}
	return ""
}

type OrderResponse struct {
	Status  string     `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Message string     `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Data    *OrderData `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *OrderResponse) Reset()         { *m = OrderResponse{} }
func (m *OrderResponse) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*OrderResponse) ProtoMessage()    {}

func (m *OrderResponse) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *OrderResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *OrderResponse) GetData() *OrderData {
	if m != nil {
		return m.Data
	}
	return nil
}

type OrderIdRequest struct {
	OrderId int64 `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
}

func (m *OrderIdRequest) Reset()         { *m = OrderIdRequest{} }
func (m *OrderIdRequest) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*OrderIdRequest) ProtoMessage()    {}

func (m *OrderIdRequest) GetOrderId() int64 {
	if m != nil {
		return m.OrderId
	}
	return 0
}

type Empty struct{}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*Empty) ProtoMessage()    {}

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

type FindAllOrdersRequest struct {
	Page     int64  `protobuf:"varint,1,opt,name=page,proto3" json:"page,omitempty"`
	PageSize int64  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Search   string `protobuf:"bytes,3,opt,name=search,proto3" json:"search,omitempty"`
}

func (m *FindAllOrdersRequest) Reset()         { *m = FindAllOrdersRequest{} }
func (m *FindAllOrdersRequest) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*FindAllOrdersRequest) ProtoMessage()    {}

func (m *FindAllOrdersRequest) GetPage() int64 {
	if m != nil {
		return m.Page
	}
	return 0
}

func (m *FindAllOrdersRequest) GetPageSize() int64 {
	if m != nil {
		return m.PageSize
	}
	return 0
}

func (m *FindAllOrdersRequest) GetSearch() string {
	if m != nil {
		return m.Search
	}
	return ""
}

type FindAllOrdersResponse struct {
	Status  string       `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Message string       `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Data    []*OrderData `protobuf:"bytes,3,rep,name=data,proto3" json:"data,omitempty"`
	Total   int64        `protobuf:"varint,4,opt,name=total,proto3" json:"total,omitempty"`
}

func (m *FindAllOrdersResponse) Reset()         { *m = FindAllOrdersResponse{} }
func (m *FindAllOrdersResponse) String() string { return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m)) }
func (*FindAllOrdersResponse) ProtoMessage()    {}

func (m *FindAllOrdersResponse) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *FindAllOrdersResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *FindAllOrdersResponse) GetData() []*OrderData {
	if m != nil {
		return m.Data
	}
	return nil
}

func (m *FindAllOrdersResponse) GetTotal() int64 {
	if m != nil {
		return m.Total
	}
	return 0
}
