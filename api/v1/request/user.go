package request

// UserQuery 查询用户的过滤条件，字段全部可选。
// page/limit 用指针区分"未传"和 0；多余的未知字段由绑定直接忽略。
type UserQuery struct {
	ID    string `form:"id" json:"id"`
	Nick  string `form:"nick" json:"nick"` // 模糊查询
	Phone string `form:"phone" json:"phone"`
	Page  *int64 `form:"page" json:"page"`
	Limit *int64 `form:"limit" json:"limit"`
}

// CreateUser 注册载荷；除 phone 外均可缺省。
type CreateUser struct {
	Phone    string `json:"phone" binding:"required,mobile"`
	Password string `json:"password"`
	Nick     string `json:"nick"`
	Udesc    string `json:"udesc"`
	Avatar   string `json:"avatar"`
	Gender   *int   `json:"gender"` // 0-女, 1-男，缺省为 1
	Birthday string `json:"birthday"`
}

// UpdateUser 修改载荷；指针为空表示未提供。
// 可修改字段只有这几个，id/createTime 等传了也不会生效。
type UpdateUser struct {
	ID       string  `json:"id" binding:"required"`
	Password *string `json:"password"`
	Nick     *string `json:"nick"`
	Udesc    *string `json:"udesc"`
	Avatar   *string `json:"avatar"`
	Gender   *int    `json:"gender"`
	Birthday *string `json:"birthday"`
}
