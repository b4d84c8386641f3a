package argm

import "fmt"

// Override 单个参数的定制项，未提供时等价于零值：
// 无默认值、不改名、启用环境变量查找。
type Override struct {
	// Name 参数名，用于与调用方传入的参数匹配
	Name string

	// Default 静态默认值，nil 表示没有默认值
	Default any

	// AltName 替代名称，同时作用于环境变量名和配置键名
	AltName string

	// EnvName 显式环境变量名，仅作用于环境变量查找，优先于 AltName
	EnvName string

	// DisableEnv 不查找环境变量
	DisableEnv bool

	// Attr 绑定时使用的属性名，设置后不再添加保护前缀
	Attr string

	// Key 结果集合中的键，默认与 Name 相同
	Key string

	// Desc 描述，用于生成配置示例
	Desc string
}

func (o Override) String() string {
	return fmt.Sprintf("<Override(name=%s, default=%v, alt_name=%s, env_name=%s, disable_env=%t)>",
		o.Name, o.Default, o.AltName, o.EnvName, o.DisableEnv)
}

// indexOverrides 按参数名建立索引，同名时后者覆盖前者
func indexOverrides(list []Override) map[string]Override {
	index := make(map[string]Override, len(list))
	for _, o := range list {
		index[o.Name] = o
	}
	return index
}
