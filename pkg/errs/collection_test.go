package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katydid-common-model/pkg/errs/core"
)

// testPerson 测试宿主模型
// 属性标签保持原样（小写），便于断言完整文案
type testPerson struct {
	Name  string
	Email string
}

func (p *testPerson) ModelName() string { return "Person" }

func (p *testPerson) AttributeValue(name string) any {
	switch name {
	case "name":
		return p.Name
	case "email":
		return p.Email
	}
	return nil
}

func (p *testPerson) HumanAttributeName(name string) string { return name }

func (p *testPerson) LookupScopes() []string { return []string{"person"} }

func newTestErrors() (*testPerson, *Errors) {
	p := &testPerson{Name: "kat", Email: "kat@example.com"}
	return p, New(p)
}

func TestAdd_DefaultKind(t *testing.T) {
	_, e := newTestErrors()

	rec, err := e.Add("name", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, core.KindInvalid, rec.Kind())
	assert.Equal(t, "is invalid", rec.Message())
	assert.NotEmpty(t, rec.Message())
}

func TestAdd_LiteralMessage(t *testing.T) {
	_, e := newTestErrors()

	rec, err := e.Add("name", "custom msg", nil)
	require.NoError(t, err)
	assert.Equal(t, core.KindInvalid, rec.Kind())
	assert.Equal(t, "custom msg", rec.Message())
}

func TestAdd_MessageOverrideInContext(t *testing.T) {
	_, e := newTestErrors()

	rec, err := e.Add("name", core.KindBlank, core.Context{core.CtxKeyMessage: "cannot be nil"})
	require.NoError(t, err)
	assert.Equal(t, core.KindBlank, rec.Kind())
	assert.Equal(t, "cannot be nil", rec.Message())

	assert.Equal(t, []string{"name cannot be nil"}, e.FullMessages())
	assert.Equal(t, map[string][]core.Context{
		"name": {{"kind": core.KindBlank}},
	}, e.Details())
}

func TestAdd_KindOverrideInContext(t *testing.T) {
	_, e := newTestErrors()

	// message 键为符号种类时覆盖错误种类
	rec, err := e.Add("name", core.KindInvalid, core.Context{core.CtxKeyMessage: core.KindBlank})
	require.NoError(t, err)
	assert.Equal(t, core.KindBlank, rec.Kind())
	assert.Equal(t, "can't be blank", rec.Message())
}

func TestAdd_DeferredMessage(t *testing.T) {
	p, e := newTestErrors()

	fn := MessageFunc(func(owner core.Model, ctx core.Context) any {
		return fmt.Sprintf("bad value %v", owner.AttributeValue("name"))
	})
	rec, err := e.Add("name", fn, nil)
	require.NoError(t, err)
	assert.Equal(t, "bad value kat", rec.Message())

	// 宿主状态变化后重新解析
	p.Name = "dog"
	assert.Equal(t, "bad value dog", rec.Message())
}

func TestAdd_PluralizedCount(t *testing.T) {
	_, e := newTestErrors()

	rec, err := e.Add("name", core.KindTooLong, core.Context{"count": 25})
	require.NoError(t, err)
	assert.Equal(t, "is too long (maximum is 25 characters)", rec.Message())

	one, err := e.Add("name", core.KindTooLong, core.Context{"count": 1})
	require.NoError(t, err)
	assert.Equal(t, "is too long (maximum is 1 character)", one.Message())
}

func TestWhere_Reflexive(t *testing.T) {
	_, e := newTestErrors()

	rec, err := e.Add("name", core.KindBlank, nil)
	require.NoError(t, err)

	matched := e.Where("name", core.KindBlank, nil)
	require.Len(t, matched, 1)
	assert.Same(t, rec, matched[0])

	// 通配查询
	assert.Len(t, e.Where("", "", nil), 1)
	assert.Len(t, e.Where("name", "", nil), 1)
	// 不匹配的维度
	assert.Empty(t, e.Where("email", core.KindBlank, nil))
	assert.Empty(t, e.Where("name", core.KindTaken, nil))
}

func TestAdded(t *testing.T) {
	_, e := newTestErrors()

	_, err := e.Add("name", core.KindTooLong, core.Context{"count": 25})
	require.NoError(t, err)

	assert.True(t, e.Added("name", core.KindTooLong, core.Context{"count": 25}))
	assert.False(t, e.Added("name", core.KindTooLong, core.Context{"count": 24}))
	assert.False(t, e.Added("email", core.KindTooLong, core.Context{"count": 25}))
}

func TestAdded_LiteralComparesResolvedText(t *testing.T) {
	_, e := newTestErrors()

	_, err := e.Add("name", "custom msg", nil)
	require.NoError(t, err)
	_, err = e.Add("email", core.KindBlank, nil)
	require.NoError(t, err)

	// 字面形式按解析后的文案比对
	assert.True(t, e.Added("name", "custom msg", nil))
	assert.False(t, e.Added("name", "other msg", nil))
	// 符号种类添加的错误同样以文案可查
	assert.True(t, e.Added("email", "can't be blank", nil))
}

func TestDelete(t *testing.T) {
	_, e := newTestErrors()

	_, _ = e.Add("name", core.KindBlank, nil)
	_, _ = e.Add("name", core.KindTooLong, core.Context{"count": 3})
	_, _ = e.Add("email", core.KindBlank, nil)

	removed := e.Delete("name", "", nil)
	assert.Equal(t, []string{"can't be blank", "is too long (maximum is 3 characters)"}, removed)

	assert.False(t, e.Added("name", nil, nil))
	assert.Equal(t, 1, e.Count())
	assert.True(t, e.Include("email"))

	// 删除不存在的属性：空结果，不报错
	assert.Empty(t, e.Delete("missing", "", nil))
}

func TestGrouping(t *testing.T) {
	_, e := newTestErrors()

	_, _ = e.Add("name", core.KindBlank, nil)
	_, _ = e.Add("name", "custom msg", nil)
	_, _ = e.Add("email", core.KindInvalid, nil)

	msgs := e.Messages()
	assert.Equal(t, []string{"can't be blank", "custom msg"}, msgs["name"])
	assert.Equal(t, []string{"is invalid"}, msgs["email"])

	full := e.GroupedFullMessages()
	assert.Equal(t, []string{"name can't be blank", "name custom msg"}, full["name"])
	assert.Equal(t, []string{"email is invalid"}, full["email"])

	assert.Equal(t, []string{"name can't be blank", "name custom msg"}, e.FullMessagesFor("name"))
	assert.Equal(t, []string{"name", "email"}, e.AttributeNames())

	group := e.Group()
	assert.Len(t, group["name"], 2)
	assert.Len(t, group["email"], 1)
}

func TestEach(t *testing.T) {
	_, e := newTestErrors()

	_, _ = e.Add("name", core.KindBlank, nil)
	_, _ = e.Add("name", core.KindInvalid, nil)
	_, _ = e.Add("email", core.KindBlank, nil)

	var attrs []string
	var msgs []string
	e.Each(func(attribute, message string) {
		attrs = append(attrs, attribute)
		msgs = append(msgs, message)
	})
	// 同一属性的多条错误展开为多对，顺序等于添加顺序
	assert.Equal(t, []string{"name", "name", "email"}, attrs)
	assert.Equal(t, []string{"can't be blank", "is invalid", "can't be blank"}, msgs)

	count := 0
	e.EachRecord(func(rec *Record) { count++ })
	assert.Equal(t, 3, count)
}

func TestMerge(t *testing.T) {
	_, a := newTestErrors()
	_, b := newTestErrors()

	_, _ = a.Add("name", core.KindBlank, nil)
	_, _ = a.Add("email", core.KindTooLong, core.Context{"count": 5})

	b.Merge(a)

	// 源集合不受影响
	assert.Equal(t, 2, a.Count())
	assert.Equal(t, 2, b.Count())
	assert.True(t, b.Added("name", core.KindBlank, nil))
	assert.True(t, b.Added("email", core.KindTooLong, core.Context{"count": 5}))
}

func TestCopyFrom_DeepIndependent(t *testing.T) {
	src := &testPerson{Name: "src"}
	dst := &testPerson{Name: "dst"}
	a := New(src)
	b := New(dst)

	_, _ = a.Add("name", core.KindTooLong, core.Context{"count": 3})
	b.CopyFrom(a)

	require.Equal(t, 1, b.Count())
	copied := b.Records()[0]
	assert.Equal(t, "name", copied.Attribute())
	assert.Equal(t, core.KindTooLong, copied.Kind())
	// 拷贝指向新宿主
	assert.Same(t, core.Model(dst), copied.Owner())

	// 修改拷贝的上下文不影响源集合
	copied.Context().Set("count", 99)
	assert.True(t, a.Added("name", core.KindTooLong, core.Context{"count": 3}))
	assert.False(t, a.Added("name", core.KindTooLong, core.Context{"count": 99}))
}

func TestImport_Override(t *testing.T) {
	_, a := newTestErrors()
	_, b := newTestErrors()

	orig, err := a.Add("name", "boom", nil)
	require.NoError(t, err)

	imported := b.Import(orig, core.Context{"attribute": "nested_name"})

	assert.Equal(t, "nested_name", imported.Attribute())
	assert.Equal(t, orig.Message(), imported.Message())
	// 原记录不被改动
	assert.Equal(t, "name", orig.Attribute())
	assert.True(t, b.Added("nested_name", "boom", nil))
}

func TestImport_KindOverride(t *testing.T) {
	_, a := newTestErrors()
	_, b := newTestErrors()

	orig, _ := a.Add("name", core.KindBlank, nil)
	imported := b.Import(orig, core.Context{"kind": core.KindRequired})

	assert.Equal(t, core.KindRequired, imported.Kind())
	assert.Equal(t, core.KindBlank, orig.Kind())
}

func TestStrict(t *testing.T) {
	_, e := newTestErrors()

	rec, err := e.Add("name", core.KindBlank, core.Context{core.CtxKeyStrict: true})
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.True(t, errors.Is(err, ErrStrictValidation))

	var strict *StrictError
	require.True(t, errors.As(err, &strict))
	assert.Equal(t, "name", strict.Attribute)
	assert.Equal(t, core.KindBlank, strict.Kind)
	assert.Equal(t, "name can't be blank", strict.Message)

	// 错误未被记录
	assert.False(t, e.HasErrors())
}

func TestStrict_CustomFactory(t *testing.T) {
	_, e := newTestErrors()

	custom := errors.New("fatal")
	rec, err := e.Add("name", core.KindBlank, core.Context{
		core.CtxKeyStrict: func(msg string) error { return custom },
	})
	assert.Nil(t, rec)
	assert.Same(t, custom, err)
	assert.False(t, e.HasErrors())
}

func TestStrict_FalseIsRecorded(t *testing.T) {
	_, e := newTestErrors()

	rec, err := e.Add("name", core.KindBlank, core.Context{core.CtxKeyStrict: false})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 1, e.Count())
}

func TestClear(t *testing.T) {
	_, e := newTestErrors()

	_, _ = e.Add("name", core.KindBlank, nil)
	require.True(t, e.HasErrors())

	e.Clear()
	assert.False(t, e.HasErrors())
	assert.Equal(t, 0, e.Count())
}

func TestError_Interface(t *testing.T) {
	_, e := newTestErrors()

	assert.Equal(t, "no errors", e.Error())

	_, _ = e.Add("name", core.KindBlank, nil)
	_, _ = e.Add("email", core.KindInvalid, nil)
	assert.Equal(t, "name can't be blank; email is invalid", e.Error())
}
