package tests

import (
	"fmt"

	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/repository"
)

func (s *IntegrationTestSuite) TestCreateProduct_Success() {
	input := &domain.CreateProductInput{
		Name:        "Mechanical Keyboard",
		Description: "Hot-swappable 75% board",
		Price:       12900,
		Stock:       25,
		Category:    "Peripherals",
	}

	id, err := s.ProductService.Create(s.Ctx, input)
	s.Require().NoError(err)
	s.Require().NotZero(id)

	var dbName string
	var dbPrice int64
	var dbStock int32

	query := `
		SELECT name, price, stock
		FROM products
		WHERE id = $1
	`
	err = s.DbPool.QueryRow(s.Ctx, query, id).Scan(&dbName, &dbPrice, &dbStock)
	s.Require().NoError(err)
	s.Require().Equal(input.Name, dbName)
	s.Require().Equal(input.Price, dbPrice)
	s.Require().Equal(input.Stock, dbStock)
}

func (s *IntegrationTestSuite) TestCreateProductInvalidInput_Failed() {
	input := &domain.CreateProductInput{
		Name:  "x",
		Price: 0,
	}

	id, err := s.ProductService.Create(s.Ctx, input)
	s.Require().Error(err)
	s.Require().Zero(id)

	var count int64
	err = s.DbPool.QueryRow(s.Ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	s.Require().NoError(err)
	s.Require().Zero(count)
}

func (s *IntegrationTestSuite) TestFindByID_Success() {
	input := &domain.CreateProductInput{
		Name:     "USB-C Dock",
		Price:    8900,
		Stock:    10,
		Category: "Peripherals",
	}

	id, err := s.ProductService.Create(s.Ctx, input)
	s.Require().NoError(err)

	product, err := s.CachedProductService.FindByID(s.Ctx, id)
	s.Require().NoError(err)
	s.Require().Equal(id, product.ID)
	s.Require().Equal(input.Name, product.Name)
	s.Require().Equal(input.Price, product.Price)
	s.Require().Equal(input.Stock, product.Stock)

	val, err := s.Redis.Get(s.Ctx, fmt.Sprintf("product:%d", id)).Result()
	s.Require().NoError(err)
	s.Require().NotEmpty(val)
}

func (s *IntegrationTestSuite) TestFindByID_NotFound() {
	product, err := s.ProductService.FindByID(s.Ctx, 999)
	s.Require().Error(err)
	s.Require().Nil(product)
	s.Require().ErrorIs(err, repository.ErrProductNotFound)
}

func (s *IntegrationTestSuite) TestFindByID_CacheServesStaleReads() {
	id, err := s.ProductService.Create(s.Ctx, &domain.CreateProductInput{
		Name:  "Webcam",
		Price: 4500,
		Stock: 10,
	})
	s.Require().NoError(err)

	cached, err := s.CachedProductService.FindByID(s.Ctx, id)
	s.Require().NoError(err)
	s.Require().Equal(int32(10), cached.Stock)

	// Writes never touch the cache, so reads within the TTL keep the old
	// stock count.
	s.Require().NoError(s.ProductService.DecreaseStock(s.Ctx, id, 4))

	cached, err = s.CachedProductService.FindByID(s.Ctx, id)
	s.Require().NoError(err)
	s.Require().Equal(int32(10), cached.Stock)

	fresh, err := s.ProductService.FindByID(s.Ctx, id)
	s.Require().NoError(err)
	s.Require().Equal(int32(6), fresh.Stock)
}

func (s *IntegrationTestSuite) TestList_SearchAndPagination() {
	for i := 1; i <= 5; i++ {
		_, err := s.ProductService.Create(s.Ctx, &domain.CreateProductInput{
			Name:     fmt.Sprintf("Monitor %d", i),
			Price:    int64(10000 * i),
			Stock:    int32(i),
			Category: "Displays",
		})
		s.Require().NoError(err)
	}
	_, err := s.ProductService.Create(s.Ctx, &domain.CreateProductInput{
		Name:  "Desk Lamp",
		Price: 2500,
		Stock: 3,
	})
	s.Require().NoError(err)

	products, total, err := s.ProductService.List(s.Ctx, 2, 0, "Monitor")
	s.Require().NoError(err)
	s.Require().Equal(int64(5), total)
	s.Require().Len(products, 2)

	products, total, err = s.ProductService.List(s.Ctx, 10, 4, "Monitor")
	s.Require().NoError(err)
	s.Require().Equal(int64(5), total)
	s.Require().Len(products, 1)
}

func (s *IntegrationTestSuite) TestDelete_SoftDeleteHidesProduct() {
	id, err := s.ProductService.Create(s.Ctx, &domain.CreateProductInput{
		Name:  "Old Mouse",
		Price: 900,
		Stock: 1,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.ProductService.Delete(s.Ctx, id))

	_, err = s.ProductService.FindByID(s.Ctx, id)
	s.Require().ErrorIs(err, repository.ErrProductNotFound)

	var deletedAt *string
	err = s.DbPool.QueryRow(s.Ctx, `SELECT deleted_at::TEXT FROM products WHERE id = $1`, id).
		Scan(&deletedAt)
	s.Require().NoError(err)
	s.Require().NotNil(deletedAt)
}
