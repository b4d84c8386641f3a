package tmpl

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ═══════════════════════════════════════════════════════════════════════════
// 模板函数 (参考: Taskfile 和 Sprig)
// ═══════════════════════════════════════════════════════════════════════════

// newFuncs 创建绑定到变量快照的模板函数映射表
func newFuncs(vars map[string]string) template.FuncMap {
	return template.FuncMap{
		"env":      envFunc(vars),
		"default":  defaultFunc,
		"coalesce": coalesceFunc,
	}
}

// envFunc 从变量快照中读取环境变量，支持可选的默认值。
//
// 使用方式：
//   - {{env "VAR"}}           获取环境变量，未设置时返回空字符串
//   - {{env "VAR" "default"}} 获取环境变量，未设置时返回默认值
//   - {{env "VAR" | default "fallback"}} 管道语法
//
// 与解析引擎一致，判断依据是"是否设置"而不是"是否为空"。
func envFunc(vars map[string]string) func(key string, defaultVal ...string) string {
	return func(key string, defaultVal ...string) string {
		if val, ok := vars[key]; ok {
			return val
		}
		if len(defaultVal) > 0 {
			return defaultVal[0]
		}

		return ""
	}
}

// defaultFunc 提供默认值（管道友好）。
//
// 参考 Sprig 实现，参数顺序：default(默认值, 实际值)
func defaultFunc(defaultVal, value any) any {
	if value == nil {
		return defaultVal
	}
	if str, ok := value.(string); ok && str == "" {
		return defaultVal
	}

	return value
}

// coalesceFunc 返回第一个非空值（类似 Taskfile/Sprig）。
//
// 使用方式：
//   - {{coalesce .VAR1 .VAR2 "default"}}
func coalesceFunc(values ...any) any {
	for _, v := range values {
		if v == nil {
			continue
		}
		if str, ok := v.(string); ok && str == "" {
			continue
		}

		return v
	}

	return nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 模板渲染
// ═══════════════════════════════════════════════════════════════════════════

// Environ 将当前进程环境变量读取为 map。
func Environ() map[string]string {
	vars := make(map[string]string)
	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) == 2 {
			vars[parts[0]] = parts[1]
		}
	}

	return vars
}

// NeedsExpansion 判断字符串是否包含模板动作。
func NeedsExpansion(text string) bool {
	return strings.Contains(text, "{{")
}

// Expand 使用给定的变量快照展开模板字符串。
//
// 支持的语法：
//   - {{.VAR}} - 直接访问变量（Taskfile 风格），未设置时为空字符串
//   - {{env "VAR"}} - env 函数方式
//   - {{env "VAR" "default"}} - 带默认值
//   - {{.VAR | default "fallback"}} - 管道式默认值
//   - {{coalesce .VAR1 .VAR2 "default"}} - 多级 fallback
//
// 不含 "{{" 的字符串原样返回。
func Expand(text string, vars map[string]string) (string, error) {
	if !NeedsExpansion(text) {
		return text, nil
	}

	t, err := template.New("value").Funcs(newFuncs(vars)).Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, vars); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// ExpandEnv 使用当前进程环境变量展开模板字符串。
func ExpandEnv(text string) (string, error) {
	return Expand(text, Environ())
}
