package formatter

import (
	"encoding/json"

	"katydid-common-model/pkg/errs"
	"katydid-common-model/pkg/errs/core"
)

// Snapshot 错误集合的无损快照
// 职责：提供两个可序列化视图——本地化文案视图和机器可读明细视图
// 供外部 JSON/XML 渲染使用，本身不承担任何传输格式
type Snapshot struct {
	// Messages 属性到本地化文案列表
	Messages map[string][]string `json:"messages"`
	// Details 属性到 {kind, ...上下文} 明细列表（不做本地化）
	Details map[string][]core.Context `json:"details"`
}

// NewSnapshot 对错误集合取快照
// 文案在取快照时刻解析，之后宿主对象的变化不再影响快照内容
func NewSnapshot(e *errs.Errors) *Snapshot {
	return &Snapshot{
		Messages: e.Messages(),
		Details:  e.Details(),
	}
}

// JSON 序列化为 JSON 字节
func (s *Snapshot) JSON() ([]byte, error) {
	return json.Marshal(s)
}
