package service

import (
	"strings"
	"time"

	"github.com/minicart/internal/models"
	"github.com/minicart/internal/repository"
)

// CustomerService 客户服务
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService 创建客户服务
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// List 全量客户列表
func (s *CustomerService) List() ([]models.Customer, error) {
	return s.customerRepo.List()
}

// Create 创建客户。名称不允许为空。
func (s *CustomerService) Create(name string) (*models.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCustomerNameRequired
	}

	now := time.Now()
	customer := &models.Customer{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}
