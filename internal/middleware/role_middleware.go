package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kaan/stucomas/internal/app/models/dto"
)

// RoleHeaderName is the out-of-band caller-supplied role claim. It is not a
// verified credential, only a coarse authorization check.
const RoleHeaderName = "X-Role"

// RoleHeader rejects requests whose X-Role header is present and does not
// match the required role (case-insensitively). Requests without the header
// pass through.
func RoleHeader(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetHeader(RoleHeaderName)
		if role != "" && !strings.EqualFold(role, required) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden,
				fmt.Sprintf("Only the %s role can perform this action", required))
			errorDetail = errorDetail.WithDetails("role header mismatch")

			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}
