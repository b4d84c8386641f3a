package argm

import (
	"fmt"
	"reflect"
)

// Values 单个参数在四个来源中的候选值。
//
// Arg、Config、Default 以 nil 表示缺失，包括 (*int)(nil) 这类带类型的 nil；Env 只能是字符串，
// 以 EnvSet 区分"未设置"与"设置为空字符串"。
// 0、""、false 等零值都是有效值。
type Values struct {
	Arg     any
	Env     string
	EnvSet  bool
	Config  any
	Default any
}

// Lookup 返回指定来源的值及其是否存在。
func (v Values) Lookup(src Source) (any, bool) {
	switch src {
	case SourceArg:
		return present(v.Arg)
	case SourceEnv:
		if !v.EnvSet {
			return nil, false
		}
		return v.Env, true
	case SourceConfig:
		return present(v.Config)
	case SourceDefault:
		return present(v.Default)
	default:
		return nil, false
	}
}

// present 将缺失的值统一为 nil, false
func present(v any) (any, bool) {
	if isAbsent(v) {
		return nil, false
	}
	return v, true
}

// isAbsent nil 接口以及值为 nil 的指针、映射、切片、函数、通道、接口均视为缺失
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func (v Values) String() string {
	env := "<unset>"
	if v.EnvSet {
		env = v.Env
	}
	return fmt.Sprintf("<Values(arg=%v, env=%s, config=%v, default=%v)>", v.Arg, env, v.Config, v.Default)
}

// ResolveValues 按优先级顺序返回第一个存在的值及其来源。
//
// 顺序耗尽仍无值时返回 nil, SourceNone。
func ResolveValues(v Values, p Priority) (any, Source) {
	for _, src := range p {
		if value, ok := v.Lookup(src); ok {
			return value, src
		}
	}
	return nil, SourceNone
}
