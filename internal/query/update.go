package query

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Update 收集白名单内、且在请求里实际出现的字段，生成 $set 更新文档。
// 白名单就是调用方写下的 Field 调用本身：没写的字段（id、createTime、
// 文章的 author 等）客户端传什么都不会进入更新。
type Update struct {
	set bson.M
}

func NewUpdate() *Update {
	return &Update{set: bson.M{}}
}

// Field 在指针非空时写入字段，空指针视为"未提供"而不是零值。
func Field[T any](u *Update, key string, v *T) {
	if v != nil {
		u.set[key] = *v
	}
}

// Stamp 无条件写入字段（modTime、派生的 publishTime）。
func (u *Update) Stamp(key string, v any) {
	u.set[key] = v
}

// Has 报告字段是否已被收集。
func (u *Update) Has(key string) bool {
	_, ok := u.set[key]
	return ok
}

// Doc 返回 updateOne 使用的 {$set: ...} 文档。
func (u *Update) Doc() bson.M {
	return bson.M{"$set": u.set}
}

// StampModTime 是所有更新路径共用的收尾：追加修改时间。
func (u *Update) StampModTime(now time.Time) *Update {
	u.set["modTime"] = now
	return u
}
