package handler

import (
	"net/http"

	"hackpass/internal/session"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// RequireSession 除了登入頁和靜態資源，所有請求都要有 session；
// 沒有就導回登入頁
func RequireSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		identity, err := store.Get(c, token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// RequireAdmin 特權操作的守門，掛在 RequireSession 之後
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil || !identity.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Unauthorized: Admin access required",
			})
			return
		}
		c.Next()
	}
}

func SetIdentity(c *gin.Context, identity *session.Identity) {
	c.Set(identityKey, identity)
}

func CurrentIdentity(c *gin.Context) *session.Identity {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := value.(*session.Identity)
	return identity
}
