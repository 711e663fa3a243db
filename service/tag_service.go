package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"newsapi/api/v1/request"
	"newsapi/dao"
	"newsapi/internal/metrics"
	"newsapi/internal/query"
	"newsapi/model"
)

// TagService 承载标签侧的谓词构建和白名单更新。
// 标签查询不需要联表和派生字段，用带排序/分页选项的 find 即可。
type TagService struct {
	tags dao.Gateway
	log  *zap.Logger
}

func NewTagService(tags dao.Gateway, log *zap.Logger) *TagService {
	return &TagService{tags: tags, log: log}
}

// buildTagFilter 生成标签谓词；id 与 ids 互斥。
func buildTagFilter(req request.TagQuery) (bson.M, error) {
	if req.ID != "" && len(req.IDs) > 0 {
		return nil, ErrConflictingIDFilters
	}
	filter := bson.M{}
	if req.ID != "" {
		oid, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		filter["_id"] = oid
	}
	if len(req.IDs) > 0 {
		oids := make([]primitive.ObjectID, 0, len(req.IDs))
		for _, id := range req.IDs {
			oid, err := parseID(id)
			if err != nil {
				return nil, err
			}
			oids = append(oids, oid)
		}
		filter["_id"] = bson.M{"$in": oids}
	}
	return filter, nil
}

// Query 返回分页前的匹配总数和一页标签，按创建时间降序。
func (s *TagService) Query(ctx context.Context, req request.TagQuery) (int64, []model.Tag, error) {
	filter, err := buildTagFilter(req)
	if err != nil {
		return 0, nil, err
	}

	total, err := s.tags.Count(ctx, filter)
	if err != nil {
		s.fail("count tags", err)
		return 0, nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createTime", Value: -1}})
	if req.Page != nil && req.Limit != nil && *req.Page > 0 && *req.Limit > 0 {
		opts.SetSkip((*req.Page - 1) * *req.Limit).SetLimit(*req.Limit)
	}

	tags := make([]model.Tag, 0)
	if err := s.tags.Find(ctx, filter, &tags, opts); err != nil {
		s.fail("find tags", err)
		return 0, nil, err
	}
	return total, tags, nil
}

// Create 创建标签，color 缺省为空串。
func (s *TagService) Create(ctx context.Context, req request.CreateTag) (primitive.ObjectID, error) {
	tag := model.Tag{
		Name:       req.Name,
		Color:      req.Color,
		CreateTime: time.Now(),
	}
	id, err := s.tags.InsertOne(ctx, tag)
	if err != nil {
		s.fail("insert tag", err)
		return primitive.NilObjectID, err
	}
	return id, nil
}

// Update 应用白名单内出现的字段（仅 name、color）并追加 modTime。
func (s *TagService) Update(ctx context.Context, req request.UpdateTag) (*mongo.UpdateResult, error) {
	oid, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	u := query.NewUpdate()
	query.Field(u, "name", req.Name)
	query.Field(u, "color", req.Color)
	u.StampModTime(time.Now())

	res, err := s.tags.UpdateOne(ctx, bson.M{"_id": oid}, u.Doc())
	if err != nil {
		s.fail("update tag", err)
		return nil, err
	}
	return res, nil
}

// Delete 按主键删除标签；引用它的文章保持原样，联表时悬空引用解析为空。
func (s *TagService) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.tags.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		s.fail("delete tag", err)
		return nil, err
	}
	return res, nil
}

func (s *TagService) fail(op string, err error) {
	metrics.IncStoreFailure(dao.CollTags)
	s.log.Error(op, zap.Error(err))
}
