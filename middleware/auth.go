package middleware

import (
	"net/http"
	"strings"
	"time"

	"Tripper/pkg/context"
	"Tripper/pkg/jwt"
	"Tripper/pkg/response"

	"github.com/gin-gonic/gin"
)

// access token 剩余有效期低于该值时旁路续签，新 token 放响应头
const renewBuffer = 5 * time.Minute

func Auth(secret []byte, accessExpire time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "登录已过期")
			return
		}

		if claims.ExpiresAt != nil && time.Until(claims.ExpiresAt.Time) < renewBuffer {
			if newToken, err := jwt.GenerateToken(secret, claims.UserID, jwt.TypeAccess, accessExpire); err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}
