package tests

import (
	"strconv"

	pkgdomain "github.com/MamangRust/simple-microservice-ecommerce-go/pkg/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/service"
)

func (s *IntegrationTestSuite) TestCreateOrder_Success() {
	order, err := s.CommandService.CreateOrder(s.Ctx, 42, []domain.OrderLineInput{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})
	s.Require().NoError(err)
	s.Require().NotZero(order.ID)

	// 2 * 12900 + 1 * 4500, unit prices come from the inventory snapshot.
	s.Require().Equal(int64(30300), order.TotalPrice)

	var lineCount int64
	err = s.DbPool.QueryRow(s.Ctx, `SELECT COUNT(*) FROM order_lines WHERE order_id = $1`, order.ID).
		Scan(&lineCount)
	s.Require().NoError(err)
	s.Require().Equal(int64(2), lineCount)

	var unitPrice int64
	err = s.DbPool.QueryRow(
		s.Ctx,
		`SELECT unit_price FROM order_lines WHERE order_id = $1 AND product_id = 1`,
		order.ID,
	).Scan(&unitPrice)
	s.Require().NoError(err)
	s.Require().Equal(int64(12900), unitPrice)
}

func (s *IntegrationTestSuite) TestCreateOrder_PublishesCreatedEvent() {
	order, err := s.CommandService.CreateOrder(s.Ctx, 42, []domain.OrderLineInput{
		{ProductID: 1, Quantity: 3},
	})
	s.Require().NoError(err)

	key, event := s.awaitEvent(pkgdomain.TopicOrderCreated, order.ID)
	s.Require().Equal(strconv.FormatInt(order.ID, 10), key)
	s.Require().Equal(pkgdomain.OrderEventCreated, event.Type)
	s.Require().Equal(int64(42), event.UserID)
	s.Require().Len(event.Items, 1)
	s.Require().Equal(int64(1), event.Items[0].ProductID)
	s.Require().Equal(int32(3), event.Items[0].Quantity)
}

func (s *IntegrationTestSuite) TestCreateOrder_EmptyLinesRejected() {
	order, err := s.CommandService.CreateOrder(s.Ctx, 42, nil)
	s.Require().ErrorIs(err, service.ErrEmptyOrder)
	s.Require().Nil(order)
}

func (s *IntegrationTestSuite) TestCreateOrder_InsufficientStockAborts() {
	order, err := s.CommandService.CreateOrder(s.Ctx, 42, []domain.OrderLineInput{
		{ProductID: 3, Quantity: 100},
	})
	s.Require().ErrorIs(err, service.ErrInsufficientStock)
	s.Require().Nil(order)

	var count int64
	err = s.DbPool.QueryRow(s.Ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	s.Require().NoError(err)
	s.Require().Zero(count)
}

func (s *IntegrationTestSuite) TestCreateOrder_UnknownProductAborts() {
	order, err := s.CommandService.CreateOrder(s.Ctx, 42, []domain.OrderLineInput{
		{ProductID: 999, Quantity: 1},
	})
	s.Require().ErrorIs(err, service.ErrProductUnavailable)
	s.Require().Nil(order)
}
