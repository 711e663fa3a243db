package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"newsapi/api/v1/request"
	"newsapi/dao"
	"newsapi/internal/metrics"
	"newsapi/internal/query"
	"newsapi/model"
)

// 时间范围过滤接受的两种输入格式
var timeLayouts = []string{"2006-01-02 15:04:05", "2006-01-02"}

// ArticleService 承载文章侧的谓词构建、标签联表与发布时间派生。
type ArticleService struct {
	articles dao.Gateway
	timezone string
	loc      *time.Location
	log      *zap.Logger
}

func NewArticleService(articles dao.Gateway, timezone string, log *zap.Logger) *ArticleService {
	return &ArticleService{
		articles: articles,
		timezone: timezone,
		loc:      offsetLocation(timezone),
		log:      log,
	}
}

// offsetLocation 把 "+08:00" 形式的偏移量转成定位区；解析失败退回 UTC。
func offsetLocation(tz string) *time.Location {
	if len(tz) != 6 || (tz[0] != '+' && tz[0] != '-') {
		return time.UTC
	}
	hh, err1 := strconv.Atoi(tz[1:3])
	mm, err2 := strconv.Atoi(tz[4:6])
	if err1 != nil || err2 != nil {
		return time.UTC
	}
	offset := hh*3600 + mm*60
	if tz[0] == '-' {
		offset = -offset
	}
	return time.FixedZone(tz, offset)
}

func (s *ArticleService) parseTime(v string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, v, s.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidTimeRange, v)
}

// buildArticleFilter 只为实际出现的字段生成谓词子句。
// flag 以指针判存在，flag=0（草稿）是合法过滤值；
// 时间范围仅在两端齐备时生效，闭区间约束 publishTime。
func (s *ArticleService) buildArticleFilter(req request.ArticleQuery) (bson.M, error) {
	filter := bson.M{}
	if req.ID != "" {
		oid, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		filter["_id"] = oid
	}
	if req.Flag != nil {
		filter["flag"] = *req.Flag
	}
	if req.Search != "" {
		re := primitive.Regex{Pattern: req.Search}
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"intro": re},
			bson.M{"cont": re},
		}
	}
	if len(req.Tags) > 0 {
		filter["tags"] = bson.M{"$in": req.Tags}
	}
	if req.StartTime != "" && req.EndTime != "" {
		start, err := s.parseTime(req.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := s.parseTime(req.EndTime)
		if err != nil {
			return nil, err
		}
		filter["publishTime"] = bson.M{"$gte": start, "$lte": end}
	}
	return filter, nil
}

// Query 返回分页前的匹配总数和一页文章。管道依次：匹配 → 标签左联 →
// publishTime 按配置时区渲染 → publishTime 降序、createTime 降序兜底 → 分页。
func (s *ArticleService) Query(ctx context.Context, req request.ArticleQuery) (int64, []model.ArticleDetail, error) {
	filter, err := s.buildArticleFilter(req)
	if err != nil {
		return 0, nil, err
	}

	total, err := s.articles.Count(ctx, filter)
	if err != nil {
		s.fail("count articles", err)
		return 0, nil, err
	}

	pipeline := query.New().
		Match(filter).
		LookupTags(dao.CollTags, "tags", "tags").
		FormatDate("publishTime", s.timezone).
		Sort(bson.D{{Key: "publishTime", Value: -1}, {Key: "createTime", Value: -1}}).
		Paginate(req.Page, req.Limit).
		Stages()

	articles := make([]model.ArticleDetail, 0)
	if err := s.articles.Aggregate(ctx, pipeline, &articles); err != nil {
		s.fail("aggregate articles", err)
		return 0, nil, err
	}
	return total, articles, nil
}

// Create 构建落库记录：可选字段补默认值，createTime 立即打戳；
// 创建即发布时 publishTime 同步写入，否则留空等待发布动作派生。
func (s *ArticleService) Create(ctx context.Context, req request.CreateArticle) (primitive.ObjectID, error) {
	flag := 0
	if req.Flag != nil {
		flag = *req.Flag
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	article := model.Article{
		Title:      req.Title,
		Cover:      req.Cover,
		Author:     req.Author,
		Intro:      req.Intro,
		Cont:       req.Cont,
		Tags:       tags,
		Flag:       flag,
		CreateTime: now,
	}
	if flag != 0 {
		article.PublishTime = now
	}

	id, err := s.articles.InsertOne(ctx, article)
	if err != nil {
		s.fail("insert article", err)
		return primitive.NilObjectID, err
	}
	return id, nil
}

// Update 应用白名单内出现的字段并追加 modTime。
// flag 被置为发布且库内尚无 publishTime 时，由服务端打上发布时间；
// 已发布的文章再次提交 flag=1 不会覆盖原有 publishTime。
func (s *ArticleService) Update(ctx context.Context, req request.UpdateArticle) (*mongo.UpdateResult, error) {
	oid, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	u := query.NewUpdate()
	query.Field(u, "title", req.Title)
	query.Field(u, "cover", req.Cover)
	query.Field(u, "intro", req.Intro)
	query.Field(u, "tags", req.Tags)
	query.Field(u, "cont", req.Cont)
	query.Field(u, "flag", req.Flag)

	if req.Flag != nil && *req.Flag != 0 {
		var existing model.Article
		err := s.articles.FindOne(ctx, bson.M{"_id": oid}, &existing)
		switch {
		case err == nil:
			if existing.PublishTime.IsZero() {
				u.Stamp("publishTime", time.Now())
			}
		case errors.Is(err, mongo.ErrNoDocuments):
			// 记录不存在，updateOne 自然匹配不到，无需派生
		default:
			s.fail("load article", err)
			return nil, err
		}
	}
	u.StampModTime(time.Now())

	res, err := s.articles.UpdateOne(ctx, bson.M{"_id": oid}, u.Doc())
	if err != nil {
		s.fail("update article", err)
		return nil, err
	}
	return res, nil
}

// Delete 按主键删除文章。
func (s *ArticleService) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.articles.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		s.fail("delete article", err)
		return nil, err
	}
	return res, nil
}

func (s *ArticleService) fail(op string, err error) {
	metrics.IncStoreFailure(dao.CollArticles)
	s.log.Error(op, zap.Error(err))
}
