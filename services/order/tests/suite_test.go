package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/cache"
	pkgdomain "github.com/MamangRust/simple-microservice-ecommerce-go/pkg/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/kafka"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/testsuite"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/repository"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/service"
)

// stubProductClient stands in for the product service RPC so the suite can
// run against order infrastructure alone.
type stubProductClient struct {
	snapshots map[int64]*domain.ProductSnapshot
}

func (c *stubProductClient) FindByID(ctx context.Context, id int64) (*domain.ProductSnapshot, error) {
	snapshot, ok := c.snapshots[id]
	if !ok {
		return nil, fmt.Errorf("product %d not found", id)
	}

	copied := *snapshot
	return &copied, nil
}

type IntegrationTestSuite struct {
	testsuite.BaseSuite

	OrderRepo      repository.OrderRepository
	LineRepo       repository.OrderLineRepository
	CommandService service.CommandService
	QueryService   service.QueryService
	Products       *stubProductClient
	Publisher      kafka.Publisher
}

func (s *IntegrationTestSuite) SetupSuite() {
	s.BaseSuite.SetupInfrastructure("../migrations")
}

func (s *IntegrationTestSuite) TearDownSuite() {
	s.BaseSuite.TearDownInfrastructure()
}

func (s *IntegrationTestSuite) SetupTest() {
	s.BaseSuite.TruncateTable("order_lines")
	s.BaseSuite.TruncateTable("orders")
	s.BaseSuite.FlushRedis()

	logger := zap.NewNop()

	s.Products = &stubProductClient{snapshots: map[int64]*domain.ProductSnapshot{
		1: {ID: 1, Name: "Keyboard", Price: 12900, Stock: 50},
		2: {ID: 2, Name: "Mouse", Price: 4500, Stock: 20},
		3: {ID: 3, Name: "Monitor", Price: 39900, Stock: 5},
	}}

	var err error
	s.Publisher, err = kafka.NewPublisher(s.KafkaBrokers)
	s.Require().NoError(err, "failed to create kafka publisher")

	s.OrderRepo = repository.NewOrderRepository(s.DbPool, logger)
	s.LineRepo = repository.NewOrderLineRepository(s.DbPool, logger)

	s.CommandService = service.NewCommandService(s.OrderRepo, s.LineRepo, s.Products, s.Publisher, logger)

	store := cache.NewStore(s.Redis, 5*time.Minute)
	s.QueryService = service.NewCachedQueryService(service.NewQueryService(s.OrderRepo, logger), store)
}

func (s *IntegrationTestSuite) TearDownTest() {
	if s.Publisher != nil {
		s.Require().NoError(s.Publisher.Close())
	}
}

// awaitEvent scans a topic from the beginning and returns the decoded event
// for the given order, failing the test if it does not show up in time.
// Topics accumulate messages across tests, so filtering by order id keeps
// tests from picking up each other's events.
func (s *IntegrationTestSuite) awaitEvent(topic string, orderID int64) (string, pkgdomain.OrderEvent) {
	s.T().Helper()

	config := sarama.NewConfig()
	config.Consumer.Return.Errors = true

	consumer, err := sarama.NewConsumer(s.KafkaBrokers, config)
	s.Require().NoError(err)
	defer consumer.Close()

	partition, err := consumer.ConsumePartition(topic, 0, sarama.OffsetOldest)
	s.Require().NoError(err)
	defer partition.Close()

	deadline := time.After(15 * time.Second)

	for {
		select {
		case msg := <-partition.Messages():
			event, err := pkgdomain.DecodeOrderEvent(msg.Value)
			s.Require().NoError(err)
			if event.OrderID == orderID {
				return string(msg.Key), event
			}
		case err := <-partition.Errors():
			s.Require().NoError(err)
		case <-deadline:
			s.Require().Fail("timed out waiting for message on " + topic)
			return "", pkgdomain.OrderEvent{}
		}
	}
}

func TestIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration suite in short mode")
	}
	suite.Run(t, new(IntegrationTestSuite))
}
