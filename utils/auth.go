package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/types"
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

func GetUserIDFromContext(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// GetCurrentUser returns the user loaded by the LoadCurrentUser
// middleware.
func GetCurrentUser(c *gin.Context) (*models.User, error) {
	userVal, exists := c.Get("currentUser")
	if !exists {
		return nil, errors.New("current user not found in context")
	}

	user, ok := userVal.(*models.User)
	if !ok {
		return nil, errors.New("invalid current user type")
	}

	return user, nil
}
