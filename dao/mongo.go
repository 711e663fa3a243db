package dao

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"newsapi/config"
)

const (
	CollUsers    = "users"
	CollArticles = "articles"
	CollTags     = "tags"
)

// Connect 建立 Mongo 连接并 ping 确认可用。
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client.Database(cfg.Database), nil
}

// Collections 聚合三个集合的 Gateway，按实体注入到服务层。
type Collections struct {
	Users    Gateway
	Articles Gateway
	Tags     Gateway
}

func NewCollections(db *mongo.Database) *Collections {
	return &Collections{
		Users:    NewCollection(db.Collection(CollUsers)),
		Articles: NewCollection(db.Collection(CollArticles)),
		Tags:     NewCollection(db.Collection(CollTags)),
	}
}

// EnsureIndexes 建立 users.phone 的唯一索引。注册时的先查后写存在并发窗口，
// 重复手机号最终由该索引兜底。
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
