package tests

import (
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/domain"
)

func (s *IntegrationTestSuite) TestOrderCreatedEvent_ReservesStock() {
	keyboard := s.createProduct("Keyboard", 10)
	mouse := s.createProduct("Mouse", 4)

	event := domain.NewOrderCreated(1, 42, []domain.OrderLineEvent{
		{ProductID: keyboard, Quantity: 3},
		{ProductID: mouse, Quantity: 1},
	})

	s.Require().NoError(s.StockAdjuster.Apply(s.Ctx, event))
	s.Require().Equal(int32(7), s.stockOf(keyboard))
	s.Require().Equal(int32(3), s.stockOf(mouse))
}

func (s *IntegrationTestSuite) TestOrderUpdatedEvent_AppliesNetDelta() {
	keyboard := s.createProduct("Keyboard", 10)
	mouse := s.createProduct("Mouse", 10)

	event := domain.NewOrderUpdated(1, []domain.OrderLineDiff{
		{ProductID: keyboard, OldQuantity: 2, NewQuantity: 5},
		{ProductID: mouse, OldQuantity: 4, NewQuantity: 1},
	})

	s.Require().NoError(s.StockAdjuster.Apply(s.Ctx, event))
	s.Require().Equal(int32(7), s.stockOf(keyboard))
	s.Require().Equal(int32(13), s.stockOf(mouse))
}

func (s *IntegrationTestSuite) TestOrderDeletedEvent_ReleasesStock() {
	keyboard := s.createProduct("Keyboard", 0)

	event := domain.NewOrderDeleted(1, []domain.OrderLineEvent{
		{ProductID: keyboard, Quantity: 6},
	})

	s.Require().NoError(s.StockAdjuster.Apply(s.Ctx, event))
	s.Require().Equal(int32(6), s.stockOf(keyboard))
}

func (s *IntegrationTestSuite) TestOrderCreatedEvent_PartialFailureLeavesEarlierWrites() {
	keyboard := s.createProduct("Keyboard", 10)
	mouse := s.createProduct("Mouse", 1)
	monitor := s.createProduct("Monitor", 8)

	event := domain.NewOrderCreated(1, 42, []domain.OrderLineEvent{
		{ProductID: keyboard, Quantity: 3},
		{ProductID: mouse, Quantity: 5},
		{ProductID: monitor, Quantity: 2},
	})

	// Each line is an independent write: the keyboard adjustment stays
	// committed, the failing mouse line is skipped and the monitor line
	// after it is still applied.
	s.Require().Error(s.StockAdjuster.Apply(s.Ctx, event))
	s.Require().Equal(int32(7), s.stockOf(keyboard))
	s.Require().Equal(int32(1), s.stockOf(mouse))
	s.Require().Equal(int32(6), s.stockOf(monitor))
}

func (s *IntegrationTestSuite) TestOrderCreatedEvent_ReplayDoubleApplies() {
	keyboard := s.createProduct("Keyboard", 10)

	event := domain.NewOrderCreated(1, 42, []domain.OrderLineEvent{
		{ProductID: keyboard, Quantity: 3},
	})

	s.Require().NoError(s.StockAdjuster.Apply(s.Ctx, event))
	s.Require().NoError(s.StockAdjuster.Apply(s.Ctx, event))
	s.Require().Equal(int32(4), s.stockOf(keyboard))
}
