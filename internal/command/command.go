// Package command 提供 argm 子命令共用的默认值与参数解析。
package command

import (
	"fmt"
	"slices"
	"strings"

	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251220-go-pkg-argm/internal/config"
	"github.com/lwmacct/251220-go-pkg-argm/pkg/argm"
)

// Defaults 默认配置 - 单一来源 (Single Source of Truth)
var Defaults = config.DefaultConfig()

// ParsePairs 解析 k=v 形式的参数列表。
//
//   - "k"   → 值为 nil (视为未提供，交由其他来源)
//   - "k="  → 空字符串
//   - "k=v" → v 按 YAML 标量解析 (8080 → int, true → bool)，失败时保留原字符串
//
// 同名参数后者覆盖前者。
func ParsePairs(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, hasValue := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid pair %q: empty key", pair)
		}
		if !hasValue {
			out[key] = nil
			continue
		}
		out[key] = parseScalar(raw)
	}
	return out, nil
}

func parseScalar(raw string) any {
	if raw == "" {
		return ""
	}
	var v any
	if err := yamlv3.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	switch v.(type) {
	case map[string]any, []any:
		return raw
	}
	return v
}

// DefaultOverrides 将 --default 参数转换为按名称排序的定制项
func DefaultOverrides(defaults map[string]any) []argm.Override {
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	slices.Sort(names)

	overrides := make([]argm.Override, 0, len(names))
	for _, name := range names {
		overrides = append(overrides, argm.Override{Name: name, Default: defaults[name]})
	}
	return overrides
}
