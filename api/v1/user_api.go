package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsapi/api/v1/request"
	"newsapi/api/v1/response"
	"newsapi/internal/metrics"
	"newsapi/service"
)

// UserAPI 聚合用户相关的 HTTP Handler。
type UserAPI struct {
	service *service.UserService
}

func NewUserAPI(s *service.UserService) *UserAPI {
	return &UserAPI{service: s}
}

// Query 查询用户，GET 走 query string，POST 走 JSON body。
func (u *UserAPI) Query(c *gin.Context) {
	var req request.UserQuery
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(&req)
	} else {
		err = c.ShouldBindJSON(&req)
	}
	if err != nil {
		respondBadRequest(c, "queryUsers", err)
		return
	}

	total, users, err := u.service.Query(c.Request.Context(), req)
	if err != nil {
		respondErr(c, "queryUsers", err)
		return
	}
	metrics.IncRequest("queryUsers", "success")
	c.JSON(http.StatusOK, response.OkWithTotal(users, total))
}

// Create 注册用户。重复手机号是业务拒绝：HTTP 200 + code -1 + 提示语。
func (u *UserAPI) Create(c *gin.Context) {
	var req request.CreateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "createUser", err)
		return
	}

	id, err := u.service.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, "createUser", err)
		return
	}
	metrics.IncRequest("createUser", "success")
	c.JSON(http.StatusOK, response.Ok(gin.H{"insertedId": id}))
}

// Update 按白名单修改用户。
func (u *UserAPI) Update(c *gin.Context) {
	var req request.UpdateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "updateUser", err)
		return
	}

	res, err := u.service.Update(c.Request.Context(), req)
	if err != nil {
		respondErr(c, "updateUser", err)
		return
	}
	metrics.IncRequest("updateUser", "success")
	c.JSON(http.StatusOK, response.Ok(res))
}
