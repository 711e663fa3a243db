package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 用户模型
// phone 是业务唯一键；password 永远不出现在 JSON 响应里。
// 查询管道会把 phone 改写为 138****1234 形式的掩码展示值。
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Phone      string             `bson:"phone" json:"phone"`
	Password   string             `bson:"password,omitempty" json:"-"`
	Nick       string             `bson:"nick" json:"nick"`
	Udesc      string             `bson:"udesc" json:"udesc"`
	Avatar     string             `bson:"avatar" json:"avatar"`
	Gender     int                `bson:"gender" json:"gender"` // 0-女, 1-男
	Birthday   string             `bson:"birthday" json:"birthday"`
	CreateTime time.Time          `bson:"createTime" json:"createTime"`
	ModTime    time.Time          `bson:"modTime,omitempty" json:"modTime,omitempty"`
}
