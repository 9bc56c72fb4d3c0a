package provider

import (
	"github.com/minicart/internal/cache"
	"github.com/minicart/internal/config"
	"github.com/minicart/internal/logger"
	"github.com/minicart/internal/models"
	"github.com/minicart/internal/queue"
	"github.com/minicart/internal/repository"
	"github.com/minicart/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo  repository.ProductRepository
	CustomerRepo repository.CustomerRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository

	// Services
	ProductService  *service.ProductService
	CustomerService *service.CustomerService
	CartService     *service.CartService
	OrderService    *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.CustomerRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.CustomerRepo, c.ProductRepo, c.QueueClient)
}
