package service

import (
	"strings"
	"time"

	"github.com/minicart/internal/models"
	"github.com/minicart/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品目录服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List 全量商品列表
func (s *ProductService) List() ([]models.Product, error) {
	return s.productRepo.List()
}

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	Name  string
	Price models.Money
}

// Create 创建商品。名称不允许为空，价格不允许为负；名称不要求唯一。
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if input.Price.Decimal.LessThan(decimal.Zero) {
		return nil, ErrProductPriceInvalid
	}

	now := time.Now()
	product := &models.Product{
		Name:      name,
		Price:     input.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}
