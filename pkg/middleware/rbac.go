package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sukryu/pAdmin/pkg/errors"
)

// RequireRole lets a request through when the authenticated user holds any of
// roles. It runs after JWTAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextUserID); !ok {
			abort(c, errors.ErrInvalidToken.WithReason("unauthorized"))
			return
		}

		held := c.GetStringSlice(ContextRoles)
		for _, want := range roles {
			for _, have := range held {
				if have == want {
					c.Next()
					return
				}
			}
		}
		abort(c, errors.ErrForbidden)
	}
}
