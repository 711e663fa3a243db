package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsapi/api/v1/request"
	"newsapi/api/v1/response"
	"newsapi/internal/metrics"
	"newsapi/service"
)

// ArticleAPI 聚合文章相关的 HTTP Handler。
type ArticleAPI struct {
	service *service.ArticleService
}

func NewArticleAPI(s *service.ArticleService) *ArticleAPI {
	return &ArticleAPI{service: s}
}

// Query 查询文章，返回的 tags 已解析为完整标签对象。
func (a *ArticleAPI) Query(c *gin.Context) {
	var req request.ArticleQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "queryArticles", err)
		return
	}

	total, articles, err := a.service.Query(c.Request.Context(), req)
	if err != nil {
		respondErr(c, "queryArticles", err)
		return
	}
	metrics.IncRequest("queryArticles", "success")
	c.JSON(http.StatusOK, response.OkWithTotal(articles, total))
}

// Create 创建文章。
func (a *ArticleAPI) Create(c *gin.Context) {
	var req request.CreateArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "createArticle", err)
		return
	}

	id, err := a.service.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, "createArticle", err)
		return
	}
	metrics.IncRequest("createArticle", "success")
	c.JSON(http.StatusOK, response.Ok(gin.H{"insertedId": id}))
}

// Update 按白名单修改文章，发布动作由服务端派生 publishTime。
func (a *ArticleAPI) Update(c *gin.Context) {
	var req request.UpdateArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "updateArticle", err)
		return
	}

	res, err := a.service.Update(c.Request.Context(), req)
	if err != nil {
		respondErr(c, "updateArticle", err)
		return
	}
	metrics.IncRequest("updateArticle", "success")
	c.JSON(http.StatusOK, response.Ok(res))
}

// Delete 删除文章。
func (a *ArticleAPI) Delete(c *gin.Context) {
	var req request.DeleteArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "deleteArticle", err)
		return
	}

	res, err := a.service.Delete(c.Request.Context(), req.ID)
	if err != nil {
		respondErr(c, "deleteArticle", err)
		return
	}
	metrics.IncRequest("deleteArticle", "success")
	c.JSON(http.StatusOK, response.Ok(res))
}
