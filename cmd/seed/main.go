package main

import (
	"github.com/minicart/internal/config"
	"github.com/minicart/internal/logger"
	"github.com/minicart/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 示例商品
	products := []models.Product{
		{Name: "apple", Price: models.NewMoneyFromFloat(2.5)},
		{Name: "pear", Price: models.NewMoneyFromFloat(3)},
		{Name: "notebook", Price: models.NewMoneyFromFloat(5)},
	}
	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", product.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			} else {
				stdLog.Printf("Created product: %s", product.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Name)
		}
	}

	// 示例客户
	customers := []models.Customer{
		{Name: "alice"},
		{Name: "bob"},
	}
	for _, customer := range customers {
		var existing models.Customer
		if err := models.DB.Where("name = ?", customer.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&customer).Error; err != nil {
				stdLog.Printf("Failed to create customer %s: %v", customer.Name, err)
			} else {
				stdLog.Printf("Created customer: %s", customer.Name)
			}
		} else {
			stdLog.Printf("Customer already exists: %s", customer.Name)
		}
	}

	stdLog.Println("Seed completed")
}
