package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

// CartSession assigns every visitor a stable session id so their cart
// survives across requests. Guests get one too; no login required to
// shop.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetCookie(sessionCookie, id, 60*60*24*30, "/", "", false, true)
		}

		c.Set("session_id", id)
		c.Next()
	}
}
