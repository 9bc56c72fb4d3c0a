package public

import (
	"github.com/minicart/internal/http/response"
	"github.com/minicart/internal/models"

	"github.com/gin-gonic/gin"
)

// OrderResponse 订单响应
type OrderResponse struct {
	ID          uint         `json:"id"`
	CustomerID  uint         `json:"customer_id"`
	TotalAmount models.Money `json:"total_amount"`
}

// CheckoutResponse 结账响应
type CheckoutResponse struct {
	OrderID     uint         `json:"order_id"`
	TotalAmount models.Money `json:"total_amount"`
}

// Checkout 将客户购物车转为订单
func (h *Handler) Checkout(c *gin.Context) {
	customerID, ok := pathID(c, "id", "Customer not found")
	if !ok {
		return
	}

	result, err := h.OrderService.Checkout(customerID)
	if err != nil {
		respondWithMappedError(c, err)
		return
	}
	response.Created(c, CheckoutResponse{
		OrderID:     result.OrderID,
		TotalAmount: result.TotalAmount,
	})
}

// ListOrders 全量订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.OrderService.List()
	if err != nil {
		respondWithMappedError(c, err)
		return
	}
	resp := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, OrderResponse{
			ID:          order.ID,
			CustomerID:  order.CustomerID,
			TotalAmount: order.TotalAmount,
		})
	}
	response.OK(c, resp)
}
