package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/validation"
)

// BindJSON decodes the request body into obj and validates it. On failure the
// error envelope is written and false is returned.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Invalid request format").
			WithDetails(map[string]interface{}{"body": err.Error()}))
		return false
	}
	if err := validation.Check(obj); err != nil {
		HandleAPIError(c, err)
		return false
	}
	return true
}
