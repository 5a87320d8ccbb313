package cart

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Detail)
		cart.DELETE("", h.Clear)
		cart.POST("/items", h.AddItem)
		cart.PUT("/items/:index", h.UpdateQuantity)
		cart.DELETE("/items/:index", h.RemoveItem)
		cart.POST("/items/:index/save", h.SaveForLater)
		cart.GET("/saved", h.Saved)
		cart.POST("/saved/:index/move", h.MoveToCart)
	}
}
