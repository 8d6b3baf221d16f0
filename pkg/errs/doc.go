// Package errs 提供模型层的错误收集与本地化文案解析
//
// # 概述
//
// errs 包为宿主对象（模型）维护一个有序的错误集合：调用方把带种类和
// 上下文的错误挂到具名属性上，之后可以按属性/种类/上下文过滤查询，
// 并把错误渲染为人类可读（可本地化）的文案。
//
// # 核心特性
//
//   - 有序多重集：记录顺序等于添加顺序，允许重复，删除稳定
//   - 消息来源归一化：符号种类 / 字面文案 / 延迟生成函数，构造时定型
//   - 文案解析：按（模型范围 → 属性 → 种类）的键序走翻译目录，支持复数
//   - 跨集合导入/合并/深拷贝，支持嵌套对象错误的命名空间改挂
//   - 严格校验逃生口：strict 选项下 Add 不记录错误而直接返回致命错误
//
// # 快速开始
//
//	type User struct {
//	    Name string
//	}
//
//	// 实现 core.Model 接口（略）
//
//	func (u *User) check() error {
//	    e := errs.New(u)
//	    if len(u.Name) == 0 {
//	        _, _ = e.Add("name", core.KindBlank, nil)
//	    }
//	    if len(u.Name) > 20 {
//	        _, _ = e.Add("name", core.KindTooLong, core.Context{"count": 20})
//	    }
//	    if e.HasErrors() {
//	        return e // "Name can't be blank; ..."
//	    }
//	    return nil
//	}
//
// 集合非线程安全，同一宿主的并发访问需要外部加锁。
package errs
