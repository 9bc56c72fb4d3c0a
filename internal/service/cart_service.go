package service

import (
	"time"

	"github.com/minicart/internal/models"
	"github.com/minicart/internal/repository"
)

// CartLine 购物车行（用于响应）
type CartLine struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// AddCartItemInput 加购输入
type AddCartItemInput struct {
	CustomerID uint
	ProductID  uint
	Quantity   int
}

// CartService 购物车服务
type CartService struct {
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, customerRepo repository.CustomerRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// AddItem 追加购物车项。
// 客户或商品不存在时直接报错且不写任何行；重复加购同一商品不合并，各记一行。
func (s *CartService) AddItem(input AddCartItemInput) (*models.CartItem, error) {
	if input.Quantity < 1 {
		return nil, ErrQuantityInvalid
	}
	customer, err := s.customerRepo.GetByID(input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	item := &models.CartItem{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Quantity:   input.Quantity,
		CreatedAt:  time.Now(),
	}
	if err := s.cartRepo.Append(item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListByCustomer 获取客户当前购物车行
func (s *CartService) ListByCustomer(customerID uint) ([]CartLine, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	items, err := s.cartRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return lines, nil
}
