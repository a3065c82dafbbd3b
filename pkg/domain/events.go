package domain

import (
	"encoding/json"
	"fmt"
)

// Topics carrying order lifecycle events. Messages are keyed by the
// stringified order id so updates to one order stay on one partition.
const (
	TopicOrderCreated = "order.created"
	TopicOrderUpdated = "order.updated"
	TopicOrderDeleted = "order.deleted"
)

const (
	OrderEventCreated = "Created"
	OrderEventUpdated = "Updated"
	OrderEventDeleted = "Deleted"
)

type OrderLineEvent struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

type OrderLineDiff struct {
	ProductID   int64 `json:"product_id"`
	OldQuantity int32 `json:"old_quantity"`
	NewQuantity int32 `json:"new_quantity"`
}

// OrderEvent is a tagged union over the three lifecycle variants. The Type
// field is the explicit discriminant; which of the payload slices is set
// depends on it. Events are transient: serialized, published, never stored.
type OrderEvent struct {
	Type    string `json:"type"`
	OrderID int64  `json:"order_id"`

	// Created only.
	UserID int64            `json:"user_id,omitempty"`
	Items  []OrderLineEvent `json:"items,omitempty"`

	// Updated only.
	Updates []OrderLineDiff `json:"updates,omitempty"`

	// Deleted only. Quantities are the pre-deletion values so the consumer
	// can credit stock back.
	DeletedItems []OrderLineEvent `json:"deleted_items,omitempty"`
}

func NewOrderCreated(orderID, userID int64, items []OrderLineEvent) OrderEvent {
	return OrderEvent{
		Type:    OrderEventCreated,
		OrderID: orderID,
		UserID:  userID,
		Items:   items,
	}
}

func NewOrderUpdated(orderID int64, updates []OrderLineDiff) OrderEvent {
	return OrderEvent{
		Type:    OrderEventUpdated,
		OrderID: orderID,
		Updates: updates,
	}
}

func NewOrderDeleted(orderID int64, deletedItems []OrderLineEvent) OrderEvent {
	return OrderEvent{
		Type:         OrderEventDeleted,
		OrderID:      orderID,
		DeletedItems: deletedItems,
	}
}

// Topic returns the topic an event variant is published to.
func (e OrderEvent) Topic() (string, error) {
	switch e.Type {
	case OrderEventCreated:
		return TopicOrderCreated, nil
	case OrderEventUpdated:
		return TopicOrderUpdated, nil
	case OrderEventDeleted:
		return TopicOrderDeleted, nil
	default:
		return "", fmt.Errorf("unknown order event type %q", e.Type)
	}
}

// DecodeOrderEvent parses an event payload and rejects unknown
// discriminants so consumers never act on half-understood messages.
func DecodeOrderEvent(payload []byte) (OrderEvent, error) {
	var event OrderEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return OrderEvent{}, fmt.Errorf("unmarshal order event: %w", err)
	}

	switch event.Type {
	case OrderEventCreated, OrderEventUpdated, OrderEventDeleted:
	default:
		return OrderEvent{}, fmt.Errorf("unknown order event type %q", event.Type)
	}

	return event, nil
}
