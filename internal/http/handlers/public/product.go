package public

import (
	"github.com/minicart/internal/http/response"
	"github.com/minicart/internal/models"
	"github.com/minicart/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Name  string        `json:"name"`
	Price *models.Money `json:"price"`
}

// ProductResponse 商品响应
type ProductResponse struct {
	ID    uint         `json:"id"`
	Name  string       `json:"name"`
	Price models.Money `json:"price"`
}

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.ProductService.List()
	if err != nil {
		respondWithMappedError(c, err)
		return
	}
	resp := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, ProductResponse{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
		})
	}
	response.OK(c, resp)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Price == nil {
		response.BadRequest(c, "Product price is required")
		return
	}

	product, err := h.ProductService.Create(service.CreateProductInput{
		Name:  req.Name,
		Price: *req.Price,
	})
	if err != nil {
		respondWithMappedError(c, err)
		return
	}
	response.Created(c, ProductResponse{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	})
}
