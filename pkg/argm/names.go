package argm

import "strings"

// 名称推导规则，均为 (name, override, prefix) 的纯函数。

// ConfigName 返回参数在配置节中使用的键名，保持大小写。
func ConfigName(name string, o *Override) string {
	if o != nil && o.AltName != "" {
		return o.AltName
	}
	return name
}

// EnvName 返回参数对应的环境变量名，始终为大写。
//
// 优先级：Override.EnvName > Override.AltName > PREFIX_NAME。
// 显式名称不添加前缀；prefix 为空时结果为 NAME。
// prefix 末尾的 "_" 可有可无，"APP" 与 "APP_" 等价。
func EnvName(prefix, name string, o *Override) string {
	if o != nil && o.EnvName != "" {
		return strings.ToUpper(o.EnvName)
	}
	if o != nil && o.AltName != "" {
		return strings.ToUpper(o.AltName)
	}

	prefix = strings.TrimSuffix(prefix, "_")
	if prefix == "" {
		return strings.ToUpper(name)
	}
	return strings.ToUpper(prefix + "_" + name)
}

// AttrName 返回绑定到目标对象时使用的属性名。
//
// protect 为 true 时添加 "_" 前缀（已以 "_" 开头则保持不变）；
// Override.Attr 非空时直接使用。
func AttrName(name string, o *Override, protect bool) string {
	if o != nil && o.Attr != "" {
		return o.Attr
	}
	if protect && !strings.HasPrefix(name, "_") {
		return "_" + name
	}
	return name
}

// ResultKey 返回参数在结果集合中的键。
func ResultKey(name string, o *Override) string {
	if o != nil && o.Key != "" {
		return o.Key
	}
	return name
}
