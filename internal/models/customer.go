package models

import "time"

// Customer 客户表
type Customer struct {
	ID        uint      `gorm:"primarykey" json:"id"`                  // 主键
	Name      string    `gorm:"type:varchar(80);not null" json:"name"` // 客户名称
	CreatedAt time.Time `gorm:"index" json:"-"`                        // 创建时间
	UpdatedAt time.Time `json:"-"`                                     // 更新时间

	Cart   []CartItem `gorm:"foreignKey:CustomerID" json:"-"` // 购物车项
	Orders []Order    `gorm:"foreignKey:CustomerID" json:"-"` // 历史订单
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
