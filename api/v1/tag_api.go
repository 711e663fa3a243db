package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsapi/api/v1/request"
	"newsapi/api/v1/response"
	"newsapi/internal/metrics"
	"newsapi/service"
)

// TagAPI 聚合标签相关的 HTTP Handler。
type TagAPI struct {
	service *service.TagService
}

func NewTagAPI(s *service.TagService) *TagAPI {
	return &TagAPI{service: s}
}

// Query 查询标签；id 与 ids 同时出现是参数错误。
func (t *TagAPI) Query(c *gin.Context) {
	var req request.TagQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "queryTags", err)
		return
	}

	total, tags, err := t.service.Query(c.Request.Context(), req)
	if err != nil {
		respondErr(c, "queryTags", err)
		return
	}
	metrics.IncRequest("queryTags", "success")
	c.JSON(http.StatusOK, response.OkWithTotal(tags, total))
}

// Create 创建标签。
func (t *TagAPI) Create(c *gin.Context) {
	var req request.CreateTag
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "createTag", err)
		return
	}

	id, err := t.service.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, "createTag", err)
		return
	}
	metrics.IncRequest("createTag", "success")
	c.JSON(http.StatusOK, response.Ok(gin.H{"insertedId": id}))
}

// Update 按白名单修改标签。
func (t *TagAPI) Update(c *gin.Context) {
	var req request.UpdateTag
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "updateTag", err)
		return
	}

	res, err := t.service.Update(c.Request.Context(), req)
	if err != nil {
		respondErr(c, "updateTag", err)
		return
	}
	metrics.IncRequest("updateTag", "success")
	c.JSON(http.StatusOK, response.Ok(res))
}

// Delete 删除标签。
func (t *TagAPI) Delete(c *gin.Context) {
	var req request.DeleteTag
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "deleteTag", err)
		return
	}

	res, err := t.service.Delete(c.Request.Context(), req.ID)
	if err != nil {
		respondErr(c, "deleteTag", err)
		return
	}
	metrics.IncRequest("deleteTag", "success")
	c.JSON(http.StatusOK, response.Ok(res))
}
