package service

import (
	"context"
	"errors"
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
	"newsapi/utils"
)

// UserService 承载用户侧的谓词构建、管道组装与白名单更新。
type UserService struct {
	users dao.Gateway
	log   *zap.Logger
}

func NewUserService(users dao.Gateway, log *zap.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// buildUserFilter 只为实际出现的字段生成谓词子句。
func buildUserFilter(req request.UserQuery) (bson.M, error) {
	filter := bson.M{}
	if req.ID != "" {
		oid, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		filter["_id"] = oid
	}
	if req.Nick != "" {
		filter["nick"] = primitive.Regex{Pattern: req.Nick}
	}
	if req.Phone != "" {
		filter["phone"] = req.Phone
	}
	return filter, nil
}

// Query 返回分页前的匹配总数和一页用户。
// 管道无条件剔除 password 并把 phone 改写为掩码展示值。
func (s *UserService) Query(ctx context.Context, req request.UserQuery) (int64, []model.User, error) {
	filter, err := buildUserFilter(req)
	if err != nil {
		return 0, nil, err
	}

	total, err := s.users.Count(ctx, filter)
	if err != nil {
		s.fail("count users", err)
		return 0, nil, err
	}

	pipeline := query.New().
		Match(filter).
		Exclude("password").
		MaskPhone("phone").
		Paginate(req.Page, req.Limit).
		Stages()

	users := make([]model.User, 0)
	if err := s.users.Aggregate(ctx, pipeline, &users); err != nil {
		s.fail("aggregate users", err)
		return 0, nil, err
	}
	return total, users, nil
}

// Create 注册用户。先按 phone 探测重复，命中返回业务拒绝而不是异常；
// 并发窗口由 users.phone 的唯一索引兜底，索引冲突同样折叠为 ErrPhoneRegistered。
func (s *UserService) Create(ctx context.Context, req request.CreateUser) (primitive.ObjectID, error) {
	var existing model.User
	err := s.users.FindOne(ctx, bson.M{"phone": req.Phone}, &existing)
	if err == nil {
		return primitive.NilObjectID, ErrPhoneRegistered
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		s.fail("probe phone", err)
		return primitive.NilObjectID, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return primitive.NilObjectID, err
	}

	gender := 1
	if req.Gender != nil {
		gender = *req.Gender
	}
	user := model.User{
		Phone:      req.Phone,
		Password:   hashed,
		Nick:       req.Nick,
		Udesc:      req.Udesc,
		Avatar:     req.Avatar,
		Gender:     gender,
		Birthday:   req.Birthday,
		CreateTime: time.Now(),
	}

	id, err := s.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrPhoneRegistered
		}
		s.fail("insert user", err)
		return primitive.NilObjectID, err
	}
	return id, nil
}

// Update 应用白名单内出现的字段并追加 modTime。
// 密码修改同样走哈希，不落明文。
func (s *UserService) Update(ctx context.Context, req request.UpdateUser) (*mongo.UpdateResult, error) {
	oid, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	u := query.NewUpdate()
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		u.Stamp("password", hashed)
	}
	query.Field(u, "nick", req.Nick)
	query.Field(u, "udesc", req.Udesc)
	query.Field(u, "avatar", req.Avatar)
	query.Field(u, "gender", req.Gender)
	query.Field(u, "birthday", req.Birthday)
	u.StampModTime(time.Now())

	res, err := s.users.UpdateOne(ctx, bson.M{"_id": oid}, u.Doc())
	if err != nil {
		s.fail("update user", err)
		return nil, err
	}
	return res, nil
}

func (s *UserService) fail(op string, err error) {
	metrics.IncStoreFailure(dao.CollUsers)
	s.log.Error(op, zap.Error(err))
}
