package checkout

import (
	"github.com/gin-gonic/gin"

	"go-hena-store/internal/middleware"
	"go-hena-store/internal/supabase"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, gateway supabase.Client) {
	co := r.Group("/checkout")
	co.Use(middleware.RequireAuth(gateway))
	{
		co.POST("", handler.PlaceOrder)
		co.GET("/session", handler.SessionState)
		co.POST("/acknowledge", handler.Acknowledge)
	}
}
