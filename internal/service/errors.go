package service

import "errors"

// 业务语义错误，由 handler 层通过 errors.Is 映射为 HTTP 状态码。
var (
	ErrProductNameRequired  = errors.New("product name is required")
	ErrProductPriceInvalid  = errors.New("product price must not be negative")
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrQuantityInvalid      = errors.New("quantity must be at least 1")
	ErrCartEmpty            = errors.New("cart is empty")
)
