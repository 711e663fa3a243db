package response

// 与客户端约定的统一响应包裹：{code, total?, data?, msg?}
const (
	CodeSuccess = 0
	CodeFailure = -1
)

type Envelope struct {
	Code  int    `json:"code"`
	Total *int64 `json:"total,omitempty"`
	Data  any    `json:"data,omitempty"`
	Msg   string `json:"msg,omitempty"`
}

// Ok 返回携带数据的成功响应
func Ok(data any) Envelope {
	return Envelope{Code: CodeSuccess, Data: data}
}

// OkWithTotal 返回查询响应：一页数据加分页前的匹配总数
func OkWithTotal(data any, total int64) Envelope {
	return Envelope{Code: CodeSuccess, Total: &total, Data: data}
}

// Fail 返回失败响应
func Fail(msg string) Envelope {
	return Envelope{Code: CodeFailure, Msg: msg}
}
