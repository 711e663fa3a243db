package service

import (
	"context"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeGateway 在内存里记录收到的谓词、管道和更新文档，按需回放预置结果，
// 让谓词/管道/白名单逻辑脱离真实存储验证。
type fakeGateway struct {
	countFilter bson.M
	countTotal  int64
	countErr    error

	findFilter bson.M
	findOpts   []*options.FindOptions
	findDocs   any
	findErr    error

	findOneFilter bson.M
	findOneDoc    any
	findOneErr    error
	findOneCalls  int

	aggPipeline mongo.Pipeline
	aggDocs     any
	aggErr      error

	insertedDocs []any
	insertID     primitive.ObjectID
	insertErr    error

	updateFilter bson.M
	updateDoc    bson.M
	updateRes    *mongo.UpdateResult
	updateErr    error

	deleteFilter bson.M
	deleteRes    *mongo.DeleteResult
	deleteErr    error
}

func (f *fakeGateway) Count(_ context.Context, filter bson.M) (int64, error) {
	f.countFilter = filter
	return f.countTotal, f.countErr
}

func (f *fakeGateway) Find(_ context.Context, filter bson.M, out any, opts ...*options.FindOptions) error {
	f.findFilter = filter
	f.findOpts = opts
	if f.findErr != nil {
		return f.findErr
	}
	if f.findDocs != nil {
		reflect.ValueOf(out).Elem().Set(reflect.ValueOf(f.findDocs))
	}
	return nil
}

func (f *fakeGateway) FindOne(_ context.Context, filter bson.M, out any) error {
	f.findOneCalls++
	f.findOneFilter = filter
	if f.findOneErr != nil {
		return f.findOneErr
	}
	if f.findOneDoc != nil {
		reflect.ValueOf(out).Elem().Set(reflect.ValueOf(f.findOneDoc))
	}
	return nil
}

func (f *fakeGateway) Aggregate(_ context.Context, pipeline mongo.Pipeline, out any) error {
	f.aggPipeline = pipeline
	if f.aggErr != nil {
		return f.aggErr
	}
	if f.aggDocs != nil {
		reflect.ValueOf(out).Elem().Set(reflect.ValueOf(f.aggDocs))
	}
	return nil
}

func (f *fakeGateway) InsertOne(_ context.Context, doc any) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	f.insertedDocs = append(f.insertedDocs, doc)
	if f.insertID.IsZero() {
		f.insertID = primitive.NewObjectID()
	}
	return f.insertID, nil
}

func (f *fakeGateway) UpdateOne(_ context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	f.updateFilter = filter
	f.updateDoc = update
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateRes == nil {
		f.updateRes = &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}
	}
	return f.updateRes, nil
}

func (f *fakeGateway) DeleteOne(_ context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	f.deleteFilter = filter
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	if f.deleteRes == nil {
		f.deleteRes = &mongo.DeleteResult{DeletedCount: 1}
	}
	return f.deleteRes, nil
}

// setOf 取出 updateOne 文档里的 $set 部分
func setOf(update bson.M) bson.M {
	return update["$set"].(bson.M)
}

func int64p(v int64) *int64 { return &v }
func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }
