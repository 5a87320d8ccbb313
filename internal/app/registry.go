package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-hena-store/internal/cart"
	"go-hena-store/internal/catalog"
	"go-hena-store/internal/checkout"
	"go-hena-store/internal/middleware"
	"go-hena-store/internal/notify"
	"go-hena-store/internal/order"
	"go-hena-store/internal/outbox"
	"go-hena-store/internal/supabase"
)

type moduleDeps struct {
	DB       *sql.DB
	Redis    *redis.Client
	Notifier notify.Client
	Gateway  supabase.Client
	Logger   *zap.Logger
}

func registerModules(router *gin.Engine, deps moduleDeps) {
	router.Use(middleware.CartSession())

	// --- Repositories ---
	orderRepo := order.NewRepository(deps.DB)
	outboxRepo := outbox.NewRepository(deps.DB)

	// --- Services ---
	catalogService := catalog.NewService(catalog.Seed())
	cartManager := cart.NewManager(cart.NewRedisStoreFactory(deps.Redis), deps.Logger)
	orderService := order.NewService(order.Deps{
		DB:         deps.DB,
		Repo:       orderRepo,
		OutboxRepo: outboxRepo,
		Logger:     deps.Logger,
	})
	checkoutService := checkout.NewService(checkout.Deps{
		Notifier: deps.Notifier,
		Gateway:  deps.Gateway,
		Orders:   orderService,
		Logger:   deps.Logger,
	})

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartManager, catalogService)
	checkoutHandler := checkout.NewHandler(checkoutService, cartManager, deps.Logger)
	orderHandler := order.NewHandler(orderService, deps.Logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		checkout.RegisterRoutes(api, checkoutHandler, deps.Gateway)
		order.RegisterRoutes(api, orderHandler, deps.Gateway)
	}
}
