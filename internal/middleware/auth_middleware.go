package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-hena-store/internal/pkg/response"
	"go-hena-store/internal/supabase"
)

// RequireAuth resolves the caller through the auth gateway. Token
// verification stays with the gateway; this service only forwards the
// bearer token and trusts the identity it gets back.
func RequireAuth(gateway supabase.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			e := supabase.ErrUnauthorized
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		user, err := gateway.CurrentUser(c.Request.Context(), token)
		if err != nil {
			e := supabase.ErrUnauthorized
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("access_token", token)

		c.Next()
	}
}
