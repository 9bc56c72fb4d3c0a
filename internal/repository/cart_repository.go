package repository

import (
	"github.com/minicart/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByCustomer(customerID uint) ([]models.CartItem, error)
	Append(item *models.CartItem) error
	ClearByCustomer(customerID uint) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByCustomer 获取客户购物车项（含商品）
func (r *GormCartRepository) ListByCustomer(customerID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("customer_id = ?", customerID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Append 追加一条购物车项。
// 同一客户对同一商品的重复加购不合并，每次各记一行。
func (r *GormCartRepository) Append(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// ClearByCustomer 清空客户购物车
func (r *GormCartRepository) ClearByCustomer(customerID uint) error {
	return r.db.Where("customer_id = ?", customerID).Delete(&models.CartItem{}).Error
}
