package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/minicart/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_repository_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Customer{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart tables failed: %v", err)
	}
	return NewCartRepository(db), db
}

func createCartCustomer(t *testing.T, db *gorm.DB, name string) *models.Customer {
	t.Helper()
	customer := &models.Customer{Name: name}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	return customer
}

func createCartProduct(t *testing.T, db *gorm.DB, name string, price float64) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Price: models.NewMoneyFromFloat(price)}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestAppendKeepsSeparateRows(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	customer := createCartCustomer(t, db, "alice")
	product := createCartProduct(t, db, "apple", 2.5)

	for i := 0; i < 2; i++ {
		if err := repo.Append(&models.CartItem{CustomerID: customer.ID, ProductID: product.ID, Quantity: 1}); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	items, err := repo.ListByCustomer(customer.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(items))
	}
	if items[0].ID == items[1].ID {
		t.Fatalf("expected distinct row ids")
	}
}

func TestListByCustomerPreloadsProduct(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	customer := createCartCustomer(t, db, "bob")
	product := createCartProduct(t, db, "pear", 3)

	if err := repo.Append(&models.CartItem{CustomerID: customer.ID, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	items, err := repo.ListByCustomer(customer.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 row, got %d", len(items))
	}
	if items[0].Product == nil || items[0].Product.Name != "pear" {
		t.Fatalf("expected preloaded product, got %+v", items[0].Product)
	}
}

func TestClearByCustomerOnlyTouchesOwnRows(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	alice := createCartCustomer(t, db, "alice")
	bob := createCartCustomer(t, db, "bob")
	product := createCartProduct(t, db, "mug", 4)

	if err := repo.Append(&models.CartItem{CustomerID: alice.ID, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := repo.Append(&models.CartItem{CustomerID: bob.ID, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	if err := repo.ClearByCustomer(alice.ID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	aliceItems, err := repo.ListByCustomer(alice.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(aliceItems) != 0 {
		t.Fatalf("expected cleared cart, got %d rows", len(aliceItems))
	}
	bobItems, err := repo.ListByCustomer(bob.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(bobItems) != 1 {
		t.Fatalf("expected bob cart untouched, got %d rows", len(bobItems))
	}
}
