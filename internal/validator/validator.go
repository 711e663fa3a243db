package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var mobileRe = regexp.MustCompile(`^1[3-9]\d{9}$`)

// IsMobile 是注册请求绑定使用的手机号校验规则
func IsMobile(fl validator.FieldLevel) bool {
	return mobileRe.MatchString(fl.Field().String())
}
