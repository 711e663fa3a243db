package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"newsapi/api/v1/response"
)

// ErrorHandler 把 panic 转换为统一的 JSON 错误响应
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered", zap.Any("error", rec))
				c.JSON(http.StatusInternalServerError, response.Fail("服务器异常"))
				c.Abort()
			}
		}()
		c.Next()
	}
}
