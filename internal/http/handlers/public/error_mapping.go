package public

import (
	"errors"
	"net/http"

	"github.com/minicart/internal/http/response"
	"github.com/minicart/internal/logger"
	"github.com/minicart/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到 HTTP 状态码与对外文案的映射关系。
type mappedHandlerError struct {
	target  error
	status  int
	message string
}

var commonErrorRules = []mappedHandlerError{
	{target: service.ErrProductNameRequired, status: http.StatusBadRequest, message: "Product name is required"},
	{target: service.ErrProductPriceInvalid, status: http.StatusBadRequest, message: "Product price must not be negative"},
	{target: service.ErrCustomerNameRequired, status: http.StatusBadRequest, message: "Customer name is required"},
	{target: service.ErrQuantityInvalid, status: http.StatusBadRequest, message: "Quantity must be at least 1"},
	{target: service.ErrCartEmpty, status: http.StatusBadRequest, message: "Cart is empty"},
	{target: service.ErrCustomerNotFound, status: http.StatusNotFound, message: "Customer not found"},
	{target: service.ErrProductNotFound, status: http.StatusNotFound, message: "Product not found"},
}

func respondWithMappedError(c *gin.Context, err error) {
	for _, rule := range commonErrorRules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.status, rule.message)
			return
		}
	}
	logger.Errorw("request_failed",
		"path", c.FullPath(),
		"error", err,
	)
	response.InternalError(c, "internal server error")
}
