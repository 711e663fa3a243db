package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article 文章模型（存储形态）
// tags 保存 Tag 的 id 字符串，查询时通过 $lookup 解析成完整标签；
// publishTime 在 flag 首次置为已发布时由服务端写入，之后不再覆盖。
type Article struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Cover       string             `bson:"cover" json:"cover"`
	Author      string             `bson:"author" json:"author"`
	Intro       string             `bson:"intro" json:"intro"`
	Cont        string             `bson:"cont" json:"cont"`
	Tags        []string           `bson:"tags" json:"tags"`
	Flag        int                `bson:"flag" json:"flag"` // 0-未发布, 1-已发布
	PublishTime time.Time          `bson:"publishTime,omitempty" json:"publishTime,omitempty"`
	CreateTime  time.Time          `bson:"createTime" json:"createTime"`
	ModTime     time.Time          `bson:"modTime,omitempty" json:"modTime,omitempty"`
}

// ArticleDetail 查询管道的输出形态：tags 已被 $lookup 解析为完整标签，
// publishTime 已被 $dateToString 按配置时区格式化为字符串（未发布为空串）。
type ArticleDetail struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Cover       string             `bson:"cover" json:"cover"`
	Author      string             `bson:"author" json:"author"`
	Intro       string             `bson:"intro" json:"intro"`
	Cont        string             `bson:"cont" json:"cont"`
	Tags        []Tag              `bson:"tags" json:"tags"`
	Flag        int                `bson:"flag" json:"flag"`
	PublishTime string             `bson:"publishTime" json:"publishTime"`
	CreateTime  time.Time          `bson:"createTime" json:"createTime"`
	ModTime     time.Time          `bson:"modTime,omitempty" json:"modTime,omitempty"`
}
