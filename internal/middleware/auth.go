package middleware

import (
	"net/http"

	"agencyx/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		userID := sess.Get("user_id")
		if userID == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No autenticado"})
			return
		}
		c.Next()
	}
}

// RequireAccepted corta el acceso al espacio de trabajo a las cuentas que
// siguen pendientes de aprobación.
func RequireAccepted() gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, ok := c.Get("CurrentUser")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No autenticado"})
			return
		}
		user, ok := userVal.(models.User)
		if !ok || user.Status != models.StatusAccepted {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Cuenta pendiente de aprobación"})
			return
		}
		c.Next()
	}
}

func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := map[models.UserRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleVal := sess.Get("role")
		roleStr, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No autenticado"})
			return
		}
		role := models.UserRole(roleStr)

		if _, ok := roleSet[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Permisos insuficientes"})
			return
		}
		c.Next()
	}
}
