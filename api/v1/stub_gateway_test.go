package v1

import (
	"context"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// stubGateway 给 Handler 层测试提供一个不依赖真实存储的文档库。
type stubGateway struct {
	total       int64
	countFilter bson.M

	findOneDoc any // 为空时 FindOne 返回 mongo.ErrNoDocuments

	findDocs any
	aggDocs  any

	inserts   int
	updateSet bson.M
}

func (s *stubGateway) Count(_ context.Context, filter bson.M) (int64, error) {
	s.countFilter = filter
	return s.total, nil
}

func (s *stubGateway) Find(_ context.Context, _ bson.M, out any, _ ...*options.FindOptions) error {
	if s.findDocs != nil {
		reflect.ValueOf(out).Elem().Set(reflect.ValueOf(s.findDocs))
	}
	return nil
}

func (s *stubGateway) FindOne(_ context.Context, _ bson.M, out any) error {
	if s.findOneDoc == nil {
		return mongo.ErrNoDocuments
	}
	reflect.ValueOf(out).Elem().Set(reflect.ValueOf(s.findOneDoc))
	return nil
}

func (s *stubGateway) Aggregate(_ context.Context, _ mongo.Pipeline, out any) error {
	if s.aggDocs != nil {
		reflect.ValueOf(out).Elem().Set(reflect.ValueOf(s.aggDocs))
	}
	return nil
}

func (s *stubGateway) InsertOne(_ context.Context, _ any) (primitive.ObjectID, error) {
	s.inserts++
	return primitive.NewObjectID(), nil
}

func (s *stubGateway) UpdateOne(_ context.Context, _ bson.M, update bson.M) (*mongo.UpdateResult, error) {
	s.updateSet = update["$set"].(bson.M)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubGateway) DeleteOne(_ context.Context, _ bson.M) (*mongo.DeleteResult, error) {
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}
