package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/minicart/internal/models"
	"github.com/minicart/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Customer{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cartRepo := repository.NewCartRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	return NewCartService(cartRepo, customerRepo, productRepo), db
}

func TestAddItemAppendsWithoutMerging(t *testing.T) {
	svc, db := setupCartServiceTest(t)

	customer := models.Customer{Name: "alice"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	product := models.Product{Name: "apple", Price: models.NewMoneyFromFloat(2.5)}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Quantity: 1}); err != nil {
			t.Fatalf("add item failed: %v", err)
		}
	}

	lines, err := svc.ListByCustomer(customer.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 cart lines, got %d", len(lines))
	}
	for _, line := range lines {
		if line.ProductID != product.ID || line.Quantity != 1 {
			t.Fatalf("unexpected cart line: %+v", line)
		}
	}
}

func TestAddItemQuantityInvalid(t *testing.T) {
	svc, db := setupCartServiceTest(t)

	customer := models.Customer{Name: "bob"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	product := models.Product{Name: "pear", Price: models.NewMoneyFromFloat(3)}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	for _, quantity := range []int{0, -1} {
		if _, err := svc.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Quantity: quantity}); !errors.Is(err, ErrQuantityInvalid) {
			t.Fatalf("quantity %d: expected ErrQuantityInvalid, got %v", quantity, err)
		}
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no cart items, got %d", count)
	}
}

func TestAddItemUnknownCustomerOrProduct(t *testing.T) {
	svc, db := setupCartServiceTest(t)

	customer := models.Customer{Name: "carol"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	product := models.Product{Name: "mug", Price: models.NewMoneyFromFloat(4)}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	if _, err := svc.AddItem(AddCartItemInput{CustomerID: 9999, ProductID: product.ID, Quantity: 1}); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: 9999, Quantity: 1}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no cart items, got %d", count)
	}
}

func TestListByCustomerUnknownCustomer(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	if _, err := svc.ListByCustomer(9999); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestListByCustomerEmptyCart(t *testing.T) {
	svc, db := setupCartServiceTest(t)

	customer := models.Customer{Name: "dave"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	lines, err := svc.ListByCustomer(customer.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(lines))
	}
}
