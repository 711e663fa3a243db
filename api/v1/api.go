package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"newsapi/api/v1/response"
	"newsapi/internal/metrics"
	"newsapi/service"
)

// 基础设施失败对客户端统一呈现为内部错误，细节只进日志。
const internalErrMsg = "内部数据库错误"

// respondErr 把服务层错误映射到响应包裹：
// 业务拒绝（重复注册）走正常传输 + 失败状态码；
// 参数类错误（id 格式、id/ids 冲突、时间格式）是客户端错误；
// 其余一律视为基础设施失败。
func respondErr(c *gin.Context, endpoint string, err error) {
	switch {
	case errors.Is(err, service.ErrPhoneRegistered):
		metrics.IncRequest(endpoint, "rejected")
		c.JSON(http.StatusOK, response.Fail(err.Error()))
	case errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrConflictingIDFilters),
		errors.Is(err, service.ErrInvalidTimeRange):
		metrics.IncRequest(endpoint, "bad_request")
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
	default:
		metrics.IncRequest(endpoint, "internal_error")
		c.JSON(http.StatusInternalServerError, response.Fail(internalErrMsg))
	}
}

func respondBadRequest(c *gin.Context, endpoint string, err error) {
	metrics.IncRequest(endpoint, "bad_request")
	c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
}
