package queue

import (
	"encoding/json"

	"github.com/minicart/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlaced 下单回执任务
	TaskOrderPlaced = constants.TaskOrderPlaced
)

// OrderPlacedPayload 下单回执任务载荷
type OrderPlacedPayload struct {
	OrderID    uint   `json:"order_id"`
	CustomerID uint   `json:"customer_id"`
	OrderNo    string `json:"order_no"`
}

// NewOrderPlacedTask 构造下单回执任务
func NewOrderPlacedTask(payload OrderPlacedPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlaced, data), nil
}
