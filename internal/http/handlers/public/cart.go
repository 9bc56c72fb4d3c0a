package public

import (
	"github.com/minicart/internal/http/response"
	"github.com/minicart/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CartItemResponse 购物车项响应
type CartItemResponse struct {
	CustomerID uint `json:"customer_id"`
	ProductID  uint `json:"product_id"`
	Quantity   int  `json:"quantity"`
}

// CartLineResponse 购物车行响应
type CartLineResponse struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// AddCartItem 追加购物车项
func (h *Handler) AddCartItem(c *gin.Context) {
	customerID, ok := pathID(c, "id", "Customer not found")
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.CartService.AddItem(service.AddCartItemInput{
		CustomerID: customerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		respondWithMappedError(c, err)
		return
	}
	response.Created(c, CartItemResponse{
		CustomerID: item.CustomerID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
	})
}

// GetCart 获取客户购物车
func (h *Handler) GetCart(c *gin.Context) {
	customerID, ok := pathID(c, "id", "Customer not found")
	if !ok {
		return
	}

	lines, err := h.CartService.ListByCustomer(customerID)
	if err != nil {
		respondWithMappedError(c, err)
		return
	}
	resp := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		resp = append(resp, CartLineResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	response.OK(c, resp)
}
