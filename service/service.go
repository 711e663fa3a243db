package service

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 业务拒绝与参数错误使用哨兵错误区分于基础设施失败：
// 前者由 API 层映射为正常传输 + 失败状态码或 400，后者统一 500。
var (
	// ErrPhoneRegistered 手机号重复注册的业务拒绝
	ErrPhoneRegistered = errors.New("该手机号已注册")
	// ErrInvalidID 主键格式非法
	ErrInvalidID = errors.New("无效的id")
	// ErrConflictingIDFilters queryTags 同时给出 id 和 ids
	ErrConflictingIDFilters = errors.New("id与ids不能同时使用")
	// ErrInvalidTimeRange startTime/endTime 无法解析
	ErrInvalidTimeRange = errors.New("时间范围格式错误")
)

// parseID 把 id 字符串转换为存储主键；格式非法返回 ErrInvalidID 而不是崩溃。
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return oid, nil
}
