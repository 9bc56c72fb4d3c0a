package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minicart/internal/logger"
	"github.com/minicart/internal/models"
	"github.com/minicart/internal/provider"
	"github.com/minicart/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlaced, c.handleOrderPlaced)
}

func (c *Consumer) handleOrderPlaced(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_placed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderPlacedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_placed_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_placed_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_placed_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_placed_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	logger.Infow("order_receipt",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"customer_id", order.CustomerID,
		"summary", buildOrderReceiptSummary(order),
	)
	return nil
}

// buildOrderReceiptSummary 生成订单回执摘要
func buildOrderReceiptSummary(order *models.Order) string {
	if order == nil {
		return ""
	}
	return fmt.Sprintf("order %s: customer=%d total=%s", order.OrderNo, order.CustomerID, order.TotalAmount.Decimal.Round(2).String())
}
