package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/repositories"
	"github.com/linskybing/syncbridge-go/utils"
)

// LoadCurrentUser resolves the JWT claims into a database user and
// stashes it for handlers. Runs after JWTAuthMiddleware.
func LoadCurrentUser(repos *repositories.Repos) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		user, err := repos.User.FindByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account disabled"})
			return
		}

		c.Set("currentUser", &user)
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := utils.GetCurrentUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !user.HasRole(models.UserRoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}
