package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func int64p(v int64) *int64 { return &v }

func stageKeys(p *Pipeline) []string {
	keys := make([]string, 0, len(p.Stages()))
	for _, stage := range p.Stages() {
		keys = append(keys, stage[0].Key)
	}
	return keys
}

func TestPipelineStageOrder(t *testing.T) {
	p := New().
		Match(bson.M{"flag": 1}).
		LookupTags("tags", "tags", "tags").
		FormatDate("publishTime", "+08:00").
		Sort(bson.D{{Key: "publishTime", Value: -1}, {Key: "createTime", Value: -1}}).
		Paginate(int64p(2), int64p(5))

	assert.Equal(t, []string{"$match", "$lookup", "$addFields", "$sort", "$skip", "$limit"}, stageKeys(p))
}

func TestPaginateMath(t *testing.T) {
	// total=25, limit=10, page=3 → skip=20, take=10
	p := New().Paginate(int64p(3), int64p(10))
	stages := p.Stages()
	require.Len(t, stages, 2)
	assert.Equal(t, "$skip", stages[0][0].Key)
	assert.Equal(t, int64(20), stages[0][0].Value)
	assert.Equal(t, "$limit", stages[1][0].Key)
	assert.Equal(t, int64(10), stages[1][0].Value)
}

func TestPaginateRequiresBothValues(t *testing.T) {
	assert.Empty(t, New().Paginate(int64p(3), nil).Stages())
	assert.Empty(t, New().Paginate(nil, int64p(10)).Stages())
	assert.Empty(t, New().Paginate(nil, nil).Stages())
	assert.Empty(t, New().Paginate(int64p(0), int64p(10)).Stages())
}

func TestExcludeBuildsZeroProjection(t *testing.T) {
	stages := New().Exclude("password").Stages()
	require.Len(t, stages, 1)
	assert.Equal(t, "$project", stages[0][0].Key)
	assert.Equal(t, bson.M{"password": 0}, stages[0][0].Value)
}

func TestMaskPhoneStage(t *testing.T) {
	stages := New().MaskPhone("phone").Stages()
	require.Len(t, stages, 1)
	assert.Equal(t, "$addFields", stages[0][0].Key)

	fields := stages[0][0].Value.(bson.M)
	concat := fields["phone"].(bson.M)["$concat"].(bson.A)
	require.Len(t, concat, 3)
	assert.Equal(t, bson.A{"$phone", 0, 3}, concat[0].(bson.M)["$substr"])
	assert.Equal(t, "****", concat[1])
	assert.Equal(t, bson.A{"$phone", 7, 11}, concat[2].(bson.M)["$substr"])
}

func TestLookupTagsStage(t *testing.T) {
	stages := New().LookupTags("tags", "tags", "tags").Stages()
	require.Len(t, stages, 1)

	lookup := stages[0][0].Value.(bson.M)
	assert.Equal(t, "tags", lookup["from"])
	assert.Equal(t, "tags", lookup["as"])
	assert.Equal(t, bson.M{"refs": "$tags"}, lookup["let"])
	// 内层 $match 走 $expr + $in，悬空引用不产生元素也不报错
	inner := lookup["pipeline"].(bson.A)[0].(bson.M)["$match"].(bson.M)
	assert.Contains(t, inner, "$expr")
}

func TestFormatDateStage(t *testing.T) {
	stages := New().FormatDate("publishTime", "+08:00").Stages()
	require.Len(t, stages, 1)

	spec := stages[0][0].Value.(bson.M)["publishTime"].(bson.M)["$dateToString"].(bson.M)
	assert.Equal(t, "$publishTime", spec["date"])
	assert.Equal(t, DateLayout, spec["format"])
	assert.Equal(t, "+08:00", spec["timezone"])
	assert.Equal(t, "", spec["onNull"])
}
