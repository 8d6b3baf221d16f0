// Package ginadapter 把请求绑定/校验失败转换为错误集合并渲染为 HTTP 响应
package ginadapter

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"katydid-common-model/pkg/errs"
	"katydid-common-model/pkg/errs/core"
	"katydid-common-model/pkg/errs/formatter"
)

// tagKinds 验证标签到错误种类的映射，未收录的标签回落到 KindInvalid
var tagKinds = map[string]core.Kind{
	"required": core.KindRequired,
	"min":      core.KindTooShort,
	"max":      core.KindTooLong,
	"len":      core.KindWrongLength,
	"numeric":  core.KindNotANumber,
	"number":   core.KindNotANumber,
	"unique":   core.KindTaken,
}

// KindForTag 验证标签对应的错误种类
func KindForTag(tag string) core.Kind {
	if k, ok := tagKinds[tag]; ok {
		return k
	}
	return core.KindInvalid
}

// Collect 把结构体校验失败转换为挂在 target 上的错误集合
//
// verr 为 validator.ValidationErrors 时逐字段转换：
// 标签映射为错误种类，数值参数（min=3 等）进入上下文的 count 键参与插值；
// 其他错误挂到 base 上作为整体错误
func Collect(target any, verr error, opts ...errs.Option) *errs.Errors {
	e := errs.New(core.NewReflectModel(target), opts...)
	if verr == nil {
		return e
	}

	var verrs validator.ValidationErrors
	if !errors.As(verr, &verrs) {
		_, _ = e.Add(core.AttributeBase, verr.Error(), nil)
		return e
	}

	for _, fe := range verrs {
		var ctx core.Context
		if param := fe.Param(); len(param) > 0 {
			ctx = core.NewContext(1)
			if n, err := strconv.Atoi(param); err == nil {
				ctx.Set("count", n)
			} else {
				ctx.Set("param", param)
			}
		}
		_, _ = e.Add(core.Underscore(fe.Field()), KindForTag(fe.Tag()), ctx)
	}
	return e
}

// Render 以 422 渲染错误集合快照并中止后续处理
func Render(c *gin.Context, e *errs.Errors) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, formatter.NewSnapshot(e))
}

// BindJSON 绑定 JSON 请求体并校验
// 失败时转换为错误集合、渲染 422 并返回 false，调用方应直接返回
func BindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		Render(c, Collect(target, err))
		return false
	}
	return true
}
