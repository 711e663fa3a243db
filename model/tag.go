package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag 标签模型
// 删除标签不会级联修改引用它的文章，悬空引用在 $lookup 时解析为空。
type Tag struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Color      string             `bson:"color" json:"color"`
	CreateTime time.Time          `bson:"createTime" json:"createTime"`
	ModTime    time.Time          `bson:"modTime,omitempty" json:"modTime,omitempty"`
}
