package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartSessionCookie = "cart_session"

// CartSession carries the anonymous cart identity: an opaque token in a
// cookie, issued lazily on first touch. Authenticated requests get one too;
// cart resolution prefers the user id when both are present.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cartSessionCookie)
		if err != nil || token == "" {
			token = uuid.NewString()
			c.SetCookie(cartSessionCookie, token, 30*24*3600, "/", "", false, true)
		}
		c.Set("session_id", token)
		c.Next()
	}
}
