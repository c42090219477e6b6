package pkg

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ParseAndValidate(c *gin.Context, dto interface{}) error {
	if err := c.ShouldBindJSON(dto); err != nil {
		return err
	}
	return validate.Struct(dto)
}

// ParseFormAndValidate binds multipart/urlencoded form fields instead of a
// JSON body (used by the application submit endpoint).
func ParseFormAndValidate(c *gin.Context, dto interface{}) error {
	if err := c.ShouldBind(dto); err != nil {
		return err
	}
	return validate.Struct(dto)
}

// GetUserID extracts the authenticated user ID set by the auth middleware.
// Writes a 401 and returns false when missing.
func GetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return 0, false
	}
	return id, true
}

// GetUserRole extracts the authenticated user's role from the context.
func GetUserRole(c *gin.Context) string {
	v, exists := c.Get("userRole")
	if !exists {
		return ""
	}
	role, _ := v.(string)
	return role
}
