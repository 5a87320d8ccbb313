package order

import (
	"github.com/gin-gonic/gin"

	"go-hena-store/internal/middleware"
	"go-hena-store/internal/supabase"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, gateway supabase.Client) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth(gateway))
	{
		orders.GET("", handler.List)
		orders.GET("/:number", handler.Detail)
	}
}
