package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderEvent_CreatedWireFormat(t *testing.T) {
	event := NewOrderCreated(17, 42, []OrderLineEvent{
		{ProductID: 7, Quantity: 3},
	})

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(payload, &raw))
	require.Equal(t, "Created", raw["type"])
	require.EqualValues(t, 17, raw["order_id"])
	require.EqualValues(t, 42, raw["user_id"])
	require.NotContains(t, raw, "updates")
	require.NotContains(t, raw, "deleted_items")

	decoded, err := DecodeOrderEvent(payload)
	require.NoError(t, err)
	require.Equal(t, event, decoded)
}

func TestOrderEvent_UpdatedCarriesOnlyDiffs(t *testing.T) {
	event := NewOrderUpdated(5, []OrderLineDiff{
		{ProductID: 7, OldQuantity: 3, NewQuantity: 5},
	})

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	decoded, err := DecodeOrderEvent(payload)
	require.NoError(t, err)
	require.Equal(t, OrderEventUpdated, decoded.Type)
	require.Len(t, decoded.Updates, 1)
	require.Empty(t, decoded.Items)
	require.Empty(t, decoded.DeletedItems)
}

func TestDecodeOrderEvent_RejectsUnknownType(t *testing.T) {
	_, err := DecodeOrderEvent([]byte(`{"type":"Cancelled","order_id":1}`))
	require.Error(t, err)
}

func TestDecodeOrderEvent_RejectsGarbage(t *testing.T) {
	_, err := DecodeOrderEvent([]byte("not-json"))
	require.Error(t, err)
}

func TestOrderEvent_TopicPerVariant(t *testing.T) {
	cases := []struct {
		event OrderEvent
		topic string
	}{
		{NewOrderCreated(1, 2, nil), TopicOrderCreated},
		{NewOrderUpdated(1, nil), TopicOrderUpdated},
		{NewOrderDeleted(1, nil), TopicOrderDeleted},
	}

	for _, tc := range cases {
		topic, err := tc.event.Topic()
		require.NoError(t, err)
		require.Equal(t, tc.topic, topic)
	}

	_, err := OrderEvent{Type: "Unknown"}.Topic()
	require.Error(t, err)
}
