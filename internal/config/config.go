// Package config 提供 argm 命令行工具自身的配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 按 DefaultPaths 顺序搜索，找到第一个即停止
//  3. 环境变量 - ARGM_ 前缀，如 ARGM_FORMAT=json、ARGM_CONFIG_FILE=app.toml
//  4. CLI flags - 仅当用户明确指定时覆盖
//
// 注意：这里的配置文件描述的是工具的默认行为 (前缀、优先级、输出格式)，
// 与被解析的业务配置文件 (config.yaml 等) 无关。
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"
)

// Config argm 工具配置
type Config struct {
	Prefix     string `koanf:"prefix" desc:"环境变量前缀"`
	Priority   string `koanf:"priority" desc:"来源优先级 (config/env/arg 或逗号分隔的顺序)"`
	Format     string `koanf:"format" desc:"输出格式 (table/json/yaml)"`
	Config     string `koanf:"config" desc:"业务配置文件基础名"`
	ConfigFile string `koanf:"config_file" desc:"业务配置文件路径，优先于 config"`
	Expand     bool   `koanf:"expand" desc:"展开配置值与默认值中的模板"`
	Protect    bool   `koanf:"protect" desc:"绑定属性名使用 _ 前缀"`
}

// EnvPrefix 工具配置的环境变量前缀
const EnvPrefix = "ARGM_"

// DefaultConfig 返回默认配置
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Priority: "config",
		Format:   "table",
		Config:   "config",
		Protect:  true,
	}
}

// DefaultPaths 返回工具配置文件搜索路径
// appName 可选，若提供则包含用户主目录和系统配置目录
func DefaultPaths(appName ...string) []string {
	paths := []string{".argm.yaml"}

	if len(appName) > 0 && appName[0] != "" {
		name := appName[0]
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+name+".yaml"))
		}
		paths = append(paths, "/etc/"+name+"/config.yaml")
	}

	return paths
}

// Load 加载配置，按优先级合并默认值、配置文件、环境变量与 CLI flags。
//
// cmd 可以为 nil，此时跳过 CLI flags。
func Load(cmd *cli.Command, configPaths []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	configLoaded := false
	for _, path := range configPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		slog.Debug("Loaded config from file", "path", path)
		configLoaded = true
		break
	}
	if !configLoaded {
		slog.Debug("No config file found, using defaults")
	}

	// ARGM_CONFIG_FILE -> config_file，保留下划线以匹配 koanf 标签
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	if cmd != nil {
		applyCLIFlags(cmd, k, reflect.TypeFor[Config](), "")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// FlagName 将 koanf key 转换为 CLI flag 名称 (kebab-case)
//
//   - config_file → config-file
//   - server.url → server-url
func FlagName(key string) string {
	name := strings.ReplaceAll(key, ".", "-")
	return strings.ReplaceAll(name, "_", "-")
}

// applyCLIFlags 递归遍历结构体字段，将用户明确指定的 CLI flags 写入 koanf
func applyCLIFlags(cmd *cli.Command, k *koanf.Koanf, typ reflect.Type, prefix string) {
	for i := range typ.NumField() {
		field := typ.Field(i)

		key := field.Tag.Get("koanf")
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		if field.Type.Kind() == reflect.Struct {
			applyCLIFlags(cmd, k, field.Type, key)
			continue
		}

		flag := FlagName(key)
		if !cmd.IsSet(flag) {
			continue
		}

		switch field.Type.Kind() {
		case reflect.String:
			_ = k.Set(key, cmd.String(flag))
		case reflect.Bool:
			_ = k.Set(key, cmd.Bool(flag))
		case reflect.Int:
			_ = k.Set(key, cmd.Int(flag))
		case reflect.Int64:
			if field.Type == reflect.TypeFor[time.Duration]() {
				_ = k.Set(key, cmd.Duration(flag))
			} else {
				_ = k.Set(key, cmd.Int64(flag))
			}
		case reflect.Slice:
			if field.Type.Elem().Kind() == reflect.String {
				_ = k.Set(key, cmd.StringSlice(flag))
			}
		}
	}
}
