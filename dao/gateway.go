package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Gateway 是文档库集合的访问契约。服务层只依赖这个接口，
// 谓词和管道的构建因此可以脱离真实存储进行测试。
type Gateway interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
	Find(ctx context.Context, filter bson.M, out any, opts ...*options.FindOptions) error
	FindOne(ctx context.Context, filter bson.M, out any) error
	Aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error
	InsertOne(ctx context.Context, doc any) (primitive.ObjectID, error)
	UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error)
}

// Collection 用 *mongo.Collection 实现 Gateway。
type Collection struct {
	coll *mongo.Collection
}

// NewCollection 包装一个集合句柄
func NewCollection(coll *mongo.Collection) *Collection {
	return &Collection{coll: coll}
}

// Count 用裸谓词统计匹配总数（分页前）。
func (c *Collection) Count(ctx context.Context, filter bson.M) (int64, error) {
	return c.coll.CountDocuments(ctx, filter)
}

// Find 查询并把全部结果解码进 out（指向切片的指针）。
func (c *Collection) Find(ctx context.Context, filter bson.M, out any, opts ...*options.FindOptions) error {
	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

// FindOne 查询单条记录；无匹配时返回 mongo.ErrNoDocuments。
func (c *Collection) FindOne(ctx context.Context, filter bson.M, out any) error {
	return c.coll.FindOne(ctx, filter).Decode(out)
}

// Aggregate 在服务端执行聚合管道并解码全部结果。
func (c *Collection) Aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cursor, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

// InsertOne 插入文档并返回生成的主键。
func (c *Collection) InsertOne(ctx context.Context, doc any) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateOne 按谓词更新单条记录。
func (c *Collection) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	return c.coll.UpdateOne(ctx, filter, update)
}

// DeleteOne 按谓词删除单条记录。
func (c *Collection) DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	return c.coll.DeleteOne(ctx, filter)
}
