package request

// ArticleQuery 查询文章的过滤条件。
// flag 用指针承载：flag=0（草稿）是合法过滤值，必须与"未传"区分开。
// startTime/endTime 需成对出现才生效，闭区间约束 publishTime。
type ArticleQuery struct {
	ID        string   `json:"id"`
	Flag      *int     `json:"flag"`
	Search    string   `json:"search"` // 模糊匹配标题、简介、内容
	Tags      []string `json:"tags"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Page      *int64   `json:"page"`
	Limit     *int64   `json:"limit"`
}

// CreateArticle 创建文章载荷。
type CreateArticle struct {
	Title  string   `json:"title" binding:"required"`
	Cover  string   `json:"cover"`
	Author string   `json:"author"`
	Intro  string   `json:"intro"`
	Cont   string   `json:"cont" binding:"required"`
	Tags   []string `json:"tags"`
	Flag   *int     `json:"flag"` // 缺省为 0（未发布）
}

// UpdateArticle 修改文章载荷。author 创建后不可变，故意不在此列；
// publishTime 由服务端派生，客户端提交无效。
type UpdateArticle struct {
	ID    string    `json:"id" binding:"required"`
	Title *string   `json:"title"`
	Cover *string   `json:"cover"`
	Intro *string   `json:"intro"`
	Tags  *[]string `json:"tags"`
	Cont  *string   `json:"cont"`
	Flag  *int      `json:"flag"`
}

// DeleteArticle 删除文章载荷。
type DeleteArticle struct {
	ID string `json:"id" binding:"required"`
}
