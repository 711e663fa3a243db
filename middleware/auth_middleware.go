package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"newsapi/api/v1/response"
	"newsapi/internal/auth"
)

// AuthMiddleware 校验 Bearer 令牌。上游配置了 jwt 策略但默认对全部路由关闭
// （auth.enabled: false），与原系统逐路由 auth:false 的行为保持一致；
// 打开开关后所有业务路由要求有效且未被吊销的令牌。
func AuthMiddleware(tm *auth.TokenManager, bl *auth.Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("missing token"))
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if revoked, _ := bl.Contains(token); revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("token invalid"))
			return
		}

		claims, err := tm.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("invalid token"))
			return
		}

		c.Set("user", claims.User)
		c.Next()
	}
}
