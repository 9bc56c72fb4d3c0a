package repository

import (
	"errors"

	"github.com/minicart/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	List() ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	Create(order *models.Order) error
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// List 全量订单列表（跨客户，不过滤）
func (r *GormOrderRepository) List() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("id asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID 根据 ID 获取订单，未找到返回 nil
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Create 创建订单（订单一经创建不再变更）
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}
