package request

// TagQuery 查询标签的过滤条件；id 与 ids 互斥，同时给出视为参数错误。
type TagQuery struct {
	ID    string   `json:"id"`
	IDs   []string `json:"ids"`
	Page  *int64   `json:"page"`
	Limit *int64   `json:"limit"`
}

// CreateTag 创建标签载荷。
type CreateTag struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// UpdateTag 修改标签载荷，可修改字段仅 name 和 color。
type UpdateTag struct {
	ID    string  `json:"id" binding:"required"`
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// DeleteTag 删除标签载荷；不级联清理文章里的引用。
type DeleteTag struct {
	ID string `json:"id" binding:"required"`
}
