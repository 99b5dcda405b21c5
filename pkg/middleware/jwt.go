package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sukryu/pAdmin/pkg/errors"
	"github.com/sukryu/pAdmin/pkg/utils/jwt"
)

const (
	ContextUserID = "userID"
	ContextRoles  = "roles"
)

func JWTAuth(jwtManager *jwt.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, errors.ErrInvalidToken.WithReason("authorization header required"))
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || scheme != "Bearer" || token == "" {
			abort(c, errors.ErrInvalidToken.WithReason("invalid authorization header"))
			return
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			var se *errors.StatusError
			if !stderrors.As(err, &se) {
				se = errors.ErrInvalidToken.WithReason(err.Error())
			}
			abort(c, se)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRoles, claims.Roles)
		c.Next()
	}
}
