package tests

import (
	pkgdomain "github.com/MamangRust/simple-microservice-ecommerce-go/pkg/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/repository"
)

func (s *IntegrationTestSuite) createOrder(userID int64, lines []domain.OrderLineInput) *domain.Order {
	s.T().Helper()

	order, err := s.CommandService.CreateOrder(s.Ctx, userID, lines)
	s.Require().NoError(err)

	return order
}

func (s *IntegrationTestSuite) TestUpdateOrder_PublishesQuantityDiffs() {
	order := s.createOrder(42, []domain.OrderLineInput{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})

	existing, err := s.LineRepo.ListByOrder(s.Ctx, order.ID)
	s.Require().NoError(err)
	s.Require().Len(existing, 2)

	updated, err := s.CommandService.UpdateOrder(s.Ctx, order.ID, 42, []domain.OrderLineInput{
		{LineID: existing[0].ID, ProductID: existing[0].ProductID, Quantity: 5},
		{LineID: existing[1].ID, ProductID: existing[1].ProductID, Quantity: 1},
	})
	s.Require().NoError(err)
	s.Require().Equal(int64(5*12900+1*4500), updated.TotalPrice)

	_, event := s.awaitEvent(pkgdomain.TopicOrderUpdated, order.ID)
	s.Require().Equal(pkgdomain.OrderEventUpdated, event.Type)
	s.Require().Len(event.Updates, 1)
	s.Require().Equal(existing[0].ProductID, event.Updates[0].ProductID)
	s.Require().Equal(int32(2), event.Updates[0].OldQuantity)
	s.Require().Equal(int32(5), event.Updates[0].NewQuantity)
}

func (s *IntegrationTestSuite) TestUpdateOrder_NewLinePersistedWithoutDiff() {
	order := s.createOrder(42, []domain.OrderLineInput{
		{ProductID: 1, Quantity: 2},
	})

	existing, err := s.LineRepo.ListByOrder(s.Ctx, order.ID)
	s.Require().NoError(err)

	// The quantity change on the existing line triggers the event; the new
	// line rides along in the write but never shows up in the diff.
	_, err = s.CommandService.UpdateOrder(s.Ctx, order.ID, 42, []domain.OrderLineInput{
		{LineID: existing[0].ID, ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 4},
	})
	s.Require().NoError(err)

	lines, err := s.LineRepo.ListByOrder(s.Ctx, order.ID)
	s.Require().NoError(err)
	s.Require().Len(lines, 2)

	_, event := s.awaitEvent(pkgdomain.TopicOrderUpdated, order.ID)
	s.Require().Len(event.Updates, 1)
	s.Require().Equal(int64(1), event.Updates[0].ProductID)
}

func (s *IntegrationTestSuite) TestDeleteOrder_PublishesPreDeletionLines() {
	order := s.createOrder(42, []domain.OrderLineInput{
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 1},
	})

	s.Require().NoError(s.CommandService.DeleteOrder(s.Ctx, order.ID))

	var count int64
	err := s.DbPool.QueryRow(s.Ctx, `SELECT COUNT(*) FROM orders WHERE id = $1`, order.ID).
		Scan(&count)
	s.Require().NoError(err)
	s.Require().Zero(count)

	err = s.DbPool.QueryRow(s.Ctx, `SELECT COUNT(*) FROM order_lines WHERE order_id = $1`, order.ID).
		Scan(&count)
	s.Require().NoError(err)
	s.Require().Zero(count)

	_, event := s.awaitEvent(pkgdomain.TopicOrderDeleted, order.ID)
	s.Require().Equal(pkgdomain.OrderEventDeleted, event.Type)
	s.Require().Len(event.DeletedItems, 2)
}

func (s *IntegrationTestSuite) TestTrashAndRestore_Order() {
	order := s.createOrder(42, []domain.OrderLineInput{
		{ProductID: 1, Quantity: 1},
	})

	trashed, err := s.CommandService.TrashOrder(s.Ctx, order.ID)
	s.Require().NoError(err)
	s.Require().NotNil(trashed.DeletedAt)

	_, _, err = s.QueryService.FindAllOrders(s.Ctx, 1, 10, "")
	s.Require().NoError(err)

	orders, total, err := s.QueryService.FindTrashedOrders(s.Ctx, 1, 10)
	s.Require().NoError(err)
	s.Require().Equal(int64(1), total)
	s.Require().Len(orders, 1)

	restored, err := s.CommandService.RestoreOrder(s.Ctx, order.ID)
	s.Require().NoError(err)
	s.Require().Nil(restored.DeletedAt)

	_, total, err = s.QueryService.FindTrashedOrders(s.Ctx, 1, 10)
	s.Require().NoError(err)
	s.Require().Zero(total)
}

func (s *IntegrationTestSuite) TestBulkRestoreAndPurge() {
	first := s.createOrder(42, []domain.OrderLineInput{{ProductID: 1, Quantity: 1}})
	second := s.createOrder(43, []domain.OrderLineInput{{ProductID: 2, Quantity: 2}})

	_, err := s.CommandService.TrashOrder(s.Ctx, first.ID)
	s.Require().NoError(err)
	_, err = s.CommandService.TrashOrder(s.Ctx, second.ID)
	s.Require().NoError(err)

	restored, err := s.CommandService.RestoreAllOrders(s.Ctx)
	s.Require().NoError(err)
	s.Require().Equal(int64(2), restored)

	_, err = s.CommandService.TrashOrder(s.Ctx, first.ID)
	s.Require().NoError(err)

	purged, err := s.CommandService.DeleteAllOrders(s.Ctx)
	s.Require().NoError(err)
	s.Require().Equal(int64(1), purged)

	var lineCount int64
	err = s.DbPool.QueryRow(s.Ctx, `SELECT COUNT(*) FROM order_lines WHERE order_id = $1`, first.ID).
		Scan(&lineCount)
	s.Require().NoError(err)
	s.Require().Zero(lineCount)

	_, err = s.OrderRepo.GetByID(s.Ctx, second.ID)
	s.Require().NoError(err)
}

func (s *IntegrationTestSuite) TestFindOrderByID_NotFound() {
	order, err := s.QueryService.FindOrderByID(s.Ctx, 99999)
	s.Require().ErrorIs(err, repository.ErrOrderNotFound)
	s.Require().Nil(order)
}
