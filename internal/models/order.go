package models

import "time"

// Order 订单表（结账后只增不改）
type Order struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                      // 主键
	OrderNo     string    `gorm:"uniqueIndex;not null" json:"order_no"`                      // 订单编号
	CustomerID  uint      `gorm:"index;not null" json:"customer_id"`                         // 客户ID
	TotalAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 结账总额
	CreatedAt   time.Time `gorm:"index" json:"-"`                                            // 创建时间
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
