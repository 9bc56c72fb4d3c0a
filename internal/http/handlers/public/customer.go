package public

import (
	"github.com/minicart/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CreateCustomerRequest 创建客户请求
type CreateCustomerRequest struct {
	Name string `json:"name"`
}

// CustomerResponse 客户响应
type CustomerResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ListCustomers 客户列表
func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.CustomerService.List()
	if err != nil {
		respondWithMappedError(c, err)
		return
	}
	resp := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		resp = append(resp, CustomerResponse{
			ID:   customer.ID,
			Name: customer.Name,
		})
	}
	response.OK(c, resp)
}

// CreateCustomer 创建客户
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.CustomerService.Create(req.Name)
	if err != nil {
		respondWithMappedError(c, err)
		return
	}
	response.Created(c, CustomerResponse{
		ID:   customer.ID,
		Name: customer.Name,
	})
}
