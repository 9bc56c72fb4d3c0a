package router

import (
	"fmt"
	"strings"

	"github.com/minicart/internal/cache"
	"github.com/minicart/internal/config"
	publichandlers "github.com/minicart/internal/http/handlers/public"
	"github.com/minicart/internal/logger"
	"github.com/minicart/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "mc"
	}
	cartRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:cart", redisPrefix),
		WindowSeconds: cfg.Checkout.RateLimit.WindowSeconds,
		MaxRequests:   cfg.Checkout.RateLimit.MaxRequests,
	}
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Checkout.RateLimit.WindowSeconds,
		MaxRequests:   cfg.Checkout.RateLimit.MaxRequests,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/products", publicHandler.ListProducts)
	r.POST("/products", publicHandler.CreateProduct)
	r.GET("/customers", publicHandler.ListCustomers)
	r.POST("/customers", publicHandler.CreateCustomer)
	r.POST("/customers/:id/cart",
		RateLimitMiddleware(cache.Client(), cartRule, KeyByIP),
		publicHandler.AddCartItem,
	)
	r.GET("/customers/:id/cart", publicHandler.GetCart)
	r.POST("/customers/:id/checkout",
		RateLimitMiddleware(cache.Client(), checkoutRule, KeyByIP),
		publicHandler.Checkout,
	)
	r.GET("/orders", publicHandler.ListOrders)

	return r
}
