package argm

import (
	"fmt"
	"strings"
)

// Source 参数值的来源
type Source int

const (
	// SourceNone 没有任何来源提供值
	SourceNone Source = iota
	// SourceConfig 配置文件中作用域节下的值
	SourceConfig
	// SourceEnv 环境变量
	SourceEnv
	// SourceArg 调用方传入的值
	SourceArg
	// SourceDefault 静态默认值
	SourceDefault
)

var sourceNames = map[Source]string{
	SourceNone:    "none",
	SourceConfig:  "config",
	SourceEnv:     "env",
	SourceArg:     "arg",
	SourceDefault: "default",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// ParseSource 将名称 (config/env/arg/default，大小写不敏感) 解析为 Source。
func ParseSource(name string) (Source, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range sourceNames {
		if s != SourceNone && n == name {
			return s, nil
		}
	}
	return SourceNone, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}

// Priority 来源的查询顺序，靠前者优先。
//
// 未出现在顺序中的来源不会被查询，即使存在候选值。
type Priority []Source

// 预定义的优先级顺序
var (
	ConfigPriority = Priority{SourceConfig, SourceEnv, SourceArg, SourceDefault}
	EnvPriority    = Priority{SourceEnv, SourceConfig, SourceArg, SourceDefault}
	ArgPriority    = Priority{SourceArg, SourceConfig, SourceEnv, SourceDefault}

	DefaultPriority = ConfigPriority
)

// Contains 判断顺序中是否包含指定来源
func (p Priority) Contains(src Source) bool {
	for _, s := range p {
		if s == src {
			return true
		}
	}
	return false
}

// Validate 校验每个来源最多出现一次且均为已知来源
func (p Priority) Validate() error {
	seen := make(map[Source]bool, len(p))
	for _, s := range p {
		if s <= SourceNone || s > SourceDefault {
			return fmt.Errorf("%w: %s", ErrUnknownSource, s)
		}
		if seen[s] {
			return fmt.Errorf("%w: %s", ErrDuplicateSource, s)
		}
		seen[s] = true
	}
	return nil
}

func (p Priority) String() string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.String()
	}
	return strings.Join(names, ",")
}

// ParsePriority 解析优先级描述。
//
// 支持预定义名称 config / env / arg，或逗号分隔的来源列表，如 "arg,default"。
// 空字符串得到空顺序，所有参数都将解析为无值。
func ParsePriority(text string) (Priority, error) {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "":
		return Priority{}, nil
	case "config":
		return clonePriority(ConfigPriority), nil
	case "env":
		return clonePriority(EnvPriority), nil
	case "arg":
		return clonePriority(ArgPriority), nil
	}

	parts := strings.Split(text, ",")
	p := make(Priority, 0, len(parts))
	for _, part := range parts {
		s, err := ParseSource(part)
		if err != nil {
			return nil, err
		}
		p = append(p, s)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func clonePriority(p Priority) Priority {
	return append(Priority(nil), p...)
}
