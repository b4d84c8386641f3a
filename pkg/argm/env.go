package argm

import "github.com/lwmacct/251220-go-pkg-argm/pkg/tmpl"

// Environment 环境变量的只读快照。
//
// 判断依据是"是否设置"：设置为空字符串的变量也是有效值。
type Environment interface {
	Lookup(name string) (string, bool)
	Vars() map[string]string
}

// MapEnv 基于 map 的环境变量快照，便于测试时注入。
type MapEnv map[string]string

// Lookup 实现 [Environment]
func (m MapEnv) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Vars 实现 [Environment]
func (m MapEnv) Vars() map[string]string {
	return m
}

// OSEnv 读取当前进程环境变量，生成一次性快照。
func OSEnv() MapEnv {
	return MapEnv(tmpl.Environ())
}
