// Package query 把聚合管道的各个阶段建成可组合的构建器，
// 谓词 → [脱敏] → [派生字段/联表] → [排序] → [分页] 的顺序由调用方声明，
// 不依赖任何数据库连接，可独立测试。
package query

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DateLayout 是 $dateToString 使用的固定展示格式。
const DateLayout = "%Y-%m-%d %H:%M:%S"

// Pipeline 按追加顺序收集聚合阶段。
type Pipeline struct {
	stages mongo.Pipeline
}

func New() *Pipeline {
	return &Pipeline{}
}

// Match 追加 $match 阶段，应用谓词。
func (p *Pipeline) Match(filter bson.M) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$match", Value: filter}})
	return p
}

// Exclude 追加 $project 阶段，从结果中剔除指定字段。
func (p *Pipeline) Exclude(fields ...string) *Pipeline {
	proj := bson.M{}
	for _, f := range fields {
		proj[f] = 0
	}
	p.stages = append(p.stages, bson.D{{Key: "$project", Value: proj}})
	return p
}

// MaskPhone 把手机号字段改写为掩码展示值：保留前 3 位和第 7 位之后的部分，
// 中间固定替换为 ****。长度不足时 $substr 返回空串，短号码会被尽量掩掉。
func (p *Pipeline) MaskPhone(field string) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$addFields", Value: bson.M{
		field: bson.M{"$concat": bson.A{
			bson.M{"$substr": bson.A{"$" + field, 0, 3}},
			"****",
			bson.M{"$substr": bson.A{"$" + field, 7, 11}},
		}},
	}}})
	return p
}

// LookupTags 把 localField 里的 id 字符串数组左联到 from 集合，
// 输出完整文档数组到 as。解析不到的 id 不产生元素，也不报错。
func (p *Pipeline) LookupTags(from, localField, as string) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$lookup", Value: bson.M{
		"from": from,
		"let":  bson.M{"refs": "$" + localField},
		"pipeline": bson.A{
			bson.M{"$match": bson.M{"$expr": bson.M{"$in": bson.A{
				bson.M{"$toString": "$_id"},
				bson.M{"$ifNull": bson.A{"$$refs", bson.A{}}},
			}}}},
		},
		"as": as,
	}}})
	return p
}

// FormatDate 把日期字段按 DateLayout 和给定时区渲染为字符串，缺失时为空串。
func (p *Pipeline) FormatDate(field, timezone string) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$addFields", Value: bson.M{
		field: bson.M{"$dateToString": bson.M{
			"date":     "$" + field,
			"format":   DateLayout,
			"timezone": timezone,
			"onNull":   "",
		}},
	}}})
	return p
}

// Sort 追加 $sort 阶段；keys 的顺序即排序优先级。
func (p *Pipeline) Sort(keys bson.D) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$sort", Value: keys}})
	return p
}

// Paginate 仅在 page 和 limit 同时给出且为正时追加 $skip/$limit，
// skip = (page-1)*limit。缺任意一个则返回完整匹配集。
func (p *Pipeline) Paginate(page, limit *int64) *Pipeline {
	if page == nil || limit == nil || *page <= 0 || *limit <= 0 {
		return p
	}
	p.stages = append(p.stages,
		bson.D{{Key: "$skip", Value: (*page - 1) * *limit}},
		bson.D{{Key: "$limit", Value: *limit}},
	)
	return p
}

// Stages 返回按顺序组装好的管道。
func (p *Pipeline) Stages() mongo.Pipeline {
	return p.stages
}
