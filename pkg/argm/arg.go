package argm

import (
	"fmt"
	"sort"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Arg 一次解析得到的参数，创建后不可修改。
type Arg struct {
	name       string
	key        string
	envName    string
	configName string
	attr       string
	values     Values
	value      any
	source     Source
}

// Name 参数名
func (a *Arg) Name() string { return a.name }

// Key 结果集合中的键
func (a *Arg) Key() string { return a.key }

// EnvName 查找时使用的环境变量名
func (a *Arg) EnvName() string { return a.envName }

// ConfigName 查找时使用的配置键名
func (a *Arg) ConfigName() string { return a.configName }

// Values 各来源的候选值
func (a *Arg) Values() Values { return a.values }

// Value 解析结果，无任何来源提供值时为 nil
func (a *Arg) Value() any { return a.value }

// Source 提供结果的来源
func (a *Arg) Source() Source { return a.source }

// IsSet 是否有来源提供了值
func (a *Arg) IsSet() bool { return a.source != SourceNone }

// AttrName 绑定时使用的属性名
func (a *Arg) AttrName(protect bool) string {
	if a.attr != "" {
		return a.attr
	}
	return AttrName(a.name, nil, protect)
}

func (a *Arg) String() string {
	return fmt.Sprintf("<Arg(name=%s, env_name=%s, config_name=%s, values=%s, value=%v, source=%s)>",
		a.name, a.envName, a.configName, a.values, a.value, a.source)
}

// Args 解析结果集合，键为结果键。
type Args map[string]*Arg

// Get 返回结果值，键不存在或无值时为 nil
func (a Args) Get(key string) any {
	if arg, ok := a[key]; ok {
		return arg.value
	}
	return nil
}

// Lookup 返回结果值以及是否有来源提供了值
func (a Args) Lookup(key string) (any, bool) {
	arg, ok := a[key]
	if !ok || !arg.IsSet() {
		return nil, false
	}
	return arg.value, true
}

// Source 返回结果值的来源
func (a Args) Source(key string) Source {
	if arg, ok := a[key]; ok {
		return arg.source
	}
	return SourceNone
}

// Keys 返回排序后的结果键
func (a Args) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values 返回普通的键值映射
func (a Args) Values() map[string]any {
	out := make(map[string]any, len(a))
	for k, arg := range a {
		out[k] = arg.value
	}
	return out
}

// Decode 将结果解码到结构体，字段通过 argm 标签匹配结果键。
//
// 解码使用弱类型转换，环境变量中的字符串可以填充数值、布尔、
// time.Duration 等字段；无值的参数保持字段原值。
func (a Args) Decode(target any) error {
	set := make(map[string]any, len(a))
	for k, arg := range a {
		if arg.IsSet() {
			set[k] = arg.value
		}
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(set, "."), nil); err != nil {
		return fmt.Errorf("failed to load resolved args: %w", err)
	}
	if err := k.UnmarshalWithConf("", target, koanf.UnmarshalConf{Tag: "argm"}); err != nil {
		return fmt.Errorf("failed to decode resolved args: %w", err)
	}
	return nil
}
