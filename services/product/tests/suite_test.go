package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/cache"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/testsuite"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/repository"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/service"
)

type IntegrationTestSuite struct {
	testsuite.BaseSuite

	ProductRepo          repository.ProductRepository
	ProductService       service.ProductService
	CachedProductService service.ProductService
	StockAdjuster        *service.StockAdjuster
}

func (s *IntegrationTestSuite) SetupSuite() {
	s.BaseSuite.SetupInfrastructure("../migrations")
}

func (s *IntegrationTestSuite) TearDownSuite() {
	s.BaseSuite.TearDownInfrastructure()
}

func (s *IntegrationTestSuite) SetupTest() {
	s.BaseSuite.TruncateTable("products")
	s.BaseSuite.FlushRedis()

	logger := zap.NewNop()
	store := cache.NewStore(s.Redis, 5*time.Minute)

	s.ProductRepo = repository.NewProductRepository(s.DbPool, logger)
	s.ProductService = service.NewProductService(s.ProductRepo, logger)
	s.CachedProductService = service.NewCachedProductService(s.ProductService, store)
	s.StockAdjuster = service.NewStockAdjuster(s.ProductRepo, logger)
}

func TestIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration suite in short mode")
	}
	suite.Run(t, new(IntegrationTestSuite))
}
