package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/minicart/internal/models"
	"github.com/minicart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*ProductService, *CustomerService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Customer{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	return NewProductService(productRepo), NewCustomerService(customerRepo), db
}

func TestCreateProduct(t *testing.T) {
	productSvc, _, _ := setupProductServiceTest(t)

	product, err := productSvc.Create(CreateProductInput{
		Name:  "apple",
		Price: models.NewMoneyFromFloat(2.5),
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.ID == 0 {
		t.Fatalf("expected assigned product id")
	}
	if !product.Price.Decimal.Equal(decimal.NewFromFloat(2.5)) {
		t.Fatalf("expected price 2.5, got %s", product.Price.Decimal.String())
	}
}

func TestCreateProductValidation(t *testing.T) {
	productSvc, _, db := setupProductServiceTest(t)

	if _, err := productSvc.Create(CreateProductInput{Name: "  ", Price: models.NewMoneyFromFloat(1)}); !errors.Is(err, ErrProductNameRequired) {
		t.Fatalf("expected ErrProductNameRequired, got %v", err)
	}
	if _, err := productSvc.Create(CreateProductInput{Name: "x", Price: models.NewMoneyFromFloat(-1)}); !errors.Is(err, ErrProductPriceInvalid) {
		t.Fatalf("expected ErrProductPriceInvalid, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		t.Fatalf("count products failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no products, got %d", count)
	}
}

func TestListProductsOrderedByID(t *testing.T) {
	productSvc, _, _ := setupProductServiceTest(t)

	names := []string{"pear", "apple", "mango"}
	for _, name := range names {
		if _, err := productSvc.Create(CreateProductInput{Name: name, Price: models.NewMoneyFromFloat(1)}); err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	products, err := productSvc.List()
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	for i := 1; i < len(products); i++ {
		if products[i].ID <= products[i-1].ID {
			t.Fatalf("expected ascending ids, got %d then %d", products[i-1].ID, products[i].ID)
		}
	}
}

func TestCreateCustomer(t *testing.T) {
	_, customerSvc, _ := setupProductServiceTest(t)

	customer, err := customerSvc.Create("alice")
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	if customer.ID == 0 {
		t.Fatalf("expected assigned customer id")
	}

	if _, err := customerSvc.Create("   "); !errors.Is(err, ErrCustomerNameRequired) {
		t.Fatalf("expected ErrCustomerNameRequired, got %v", err)
	}
}
