package models

import "time"

// CartItem 购物车项
// 注意：(customer_id, product_id) 不加唯一索引，重复加购各记一行，结账时整体清空。
type CartItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`            // 主键
	CustomerID uint      `gorm:"not null;index" json:"customer_id"` // 客户ID
	ProductID  uint      `gorm:"not null" json:"product_id"`      // 商品ID
	Quantity   int       `gorm:"not null" json:"quantity"`        // 数量
	CreatedAt  time.Time `gorm:"index" json:"-"`                  // 创建时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
