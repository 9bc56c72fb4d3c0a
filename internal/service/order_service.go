package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/minicart/internal/logger"
	"github.com/minicart/internal/models"
	"github.com/minicart/internal/queue"
	"github.com/minicart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutResult 结账结果
type CheckoutResult struct {
	OrderID     uint         `json:"order_id"`
	TotalAmount models.Money `json:"total_amount"`
}

// OrderService 订单服务
type OrderService struct {
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	queueClient  *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, customerRepo repository.CustomerRepository, productRepo repository.ProductRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		queueClient:  queueClient,
	}
}

// List 全量订单列表
func (s *OrderService) List() ([]models.Order, error) {
	return s.orderRepo.List()
}

// Checkout 将客户当前购物车一次性转为订单。
// 读取购物车、按商品当前价格汇总、写入订单、清空购物车，四步在同一事务内完成，
// 整体提交或整体回滚。总额按结账时点的商品价格计算，加购之后的调价按新价生效。
func (s *OrderService) Checkout(customerID uint) (*CheckoutResult, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	now := time.Now()
	order := &models.Order{
		OrderNo:    generateOrderNo(),
		CustomerID: customer.ID,
		CreatedAt:  now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		items, err := cartRepo.ListByCustomer(customer.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		total := decimal.Zero
		for _, item := range items {
			product := item.Product
			if product == nil || product.ID == 0 {
				p, err := productRepo.GetByID(item.ProductID)
				if err != nil {
					return err
				}
				if p == nil {
					return ErrProductNotFound
				}
				product = p
			}
			total = total.Add(product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		order.TotalAmount = models.NewMoneyFromDecimal(total)

		if err := orderRepo.Create(order); err != nil {
			return err
		}
		return cartRepo.ClearByCustomer(customer.ID)
	})
	if err != nil {
		return nil, err
	}

	// 回执任务尽力投递，失败只记日志，不影响已提交的订单
	if enqueueErr := s.queueClient.EnqueueOrderPlaced(queue.OrderPlacedPayload{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		OrderNo:    order.OrderNo,
	}); enqueueErr != nil {
		logger.Warnw("order_placed_enqueue_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"error", enqueueErr,
		)
	}

	return &CheckoutResult{
		OrderID:     order.ID,
		TotalAmount: order.TotalAmount,
	}, nil
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("MC%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
