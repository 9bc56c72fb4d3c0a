package models

import "time"

// Product 商品表
type Product struct {
	ID        uint      `gorm:"primarykey" json:"id"`                           // 主键
	Name      string    `gorm:"type:varchar(80);not null" json:"name"`          // 商品名称（不要求唯一）
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	CreatedAt time.Time `gorm:"index" json:"-"`                                 // 创建时间
	UpdatedAt time.Time `json:"-"`                                              // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
