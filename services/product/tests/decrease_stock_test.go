package tests

import (
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/repository"
)

func (s *IntegrationTestSuite) createProduct(name string, stock int32) int64 {
	s.T().Helper()

	id, err := s.ProductService.Create(s.Ctx, &domain.CreateProductInput{
		Name:  name,
		Price: 1000,
		Stock: stock,
	})
	s.Require().NoError(err)

	return id
}

func (s *IntegrationTestSuite) stockOf(id int64) int32 {
	s.T().Helper()

	var stock int32
	err := s.DbPool.QueryRow(s.Ctx, `SELECT stock FROM products WHERE id = $1`, id).Scan(&stock)
	s.Require().NoError(err)

	return stock
}

func (s *IntegrationTestSuite) TestDecreaseStock_Success() {
	id := s.createProduct("Headphones", 10)

	s.Require().NoError(s.ProductService.DecreaseStock(s.Ctx, id, 4))
	s.Require().Equal(int32(6), s.stockOf(id))
}

func (s *IntegrationTestSuite) TestDecreaseStock_Insufficient() {
	id := s.createProduct("Headphones", 3)

	err := s.ProductService.DecreaseStock(s.Ctx, id, 5)
	s.Require().ErrorIs(err, repository.ErrInsufficientStock)
	s.Require().Equal(int32(3), s.stockOf(id))
}

func (s *IntegrationTestSuite) TestDecreaseStock_ExactlyToZero() {
	id := s.createProduct("Headphones", 5)

	s.Require().NoError(s.ProductService.DecreaseStock(s.Ctx, id, 5))
	s.Require().Equal(int32(0), s.stockOf(id))
}

func (s *IntegrationTestSuite) TestIncreaseStock_Success() {
	id := s.createProduct("Headphones", 2)

	s.Require().NoError(s.ProductRepo.IncreaseStock(s.Ctx, id, 7))
	s.Require().Equal(int32(9), s.stockOf(id))
}
