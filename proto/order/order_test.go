package order

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
)

func TestCreateOrderRequestRoundTripsThroughWireFormat(t *testing.T) {
	in := &CreateOrderRequest{
		UserId: 42,
		Items: []*OrderLineInput{
			{ProductId: 9, Quantity: 2},
			{ProductId: 7, Quantity: 1},
		},
	}

	raw, err := proto.Marshal(protoadapt.MessageV2Of(in))
	require.NoError(t, err)

	out := &CreateOrderRequest{}
	require.NoError(t, proto.Unmarshal(raw, protoadapt.MessageV2Of(out)))

	require.Equal(t, in.GetUserId(), out.GetUserId())
	require.Len(t, out.GetItems(), 2)
	require.Equal(t, int64(9), out.GetItems()[0].GetProductId())
	require.Equal(t, int32(1), out.GetItems()[1].GetQuantity())
}

func TestOrderDataStringRendersFields(t *testing.T) {
	msg := &OrderData{Id: 7, UserId: 42}

	s := msg.String()
	require.Contains(t, s, "id:7")
	require.Contains(t, s, "user_id:42")
}
