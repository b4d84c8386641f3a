package cfgload

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// DefaultName 默认的配置文件基础名称
const DefaultName = "config"

// Formats 基础名称查找时依次尝试的扩展名
var Formats = []string{"yaml", "toml", "json"}

// ParserFor 根据扩展名返回对应的 koanf 解析器。
//
// ext 可带或不带前导点号，大小写不敏感。
func ParserFor(ext string) (koanf.Parser, error) {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	switch ext {
	case ".json":
		return json.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, &UnsupportedFormatError{Ext: ext}
	}
}

// Find 按 [Formats] 顺序查找 name.<ext>，返回第一个存在的文件路径。
func Find(name string) (string, bool) {
	for _, ext := range Formats {
		path := name + "." + ext
		slog.Debug("Searching for config", "path", path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			slog.Debug("Config found", "path", path)
			return path, true
		}
	}

	slog.Debug("No supported config files found", "name", name)
	return "", false
}

// ReadName 按基础名称查找并读取配置文件。
//
// 找不到任何候选文件时返回 nil, nil。
func ReadName(name string) (map[string]any, error) {
	path, ok := Find(name)
	if !ok {
		return nil, nil
	}

	return ReadFile(path)
}

// ReadFile 读取显式指定的配置文件，文件必须存在。
func ReadFile(path string) (map[string]any, error) {
	parser, err := ParserFor(filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	slog.Debug("Loaded config from file", "path", path)

	return k.Raw(), nil
}

// Read 读取配置。
//
// name 的扩展名为受支持的格式 (.yaml/.yml/.toml/.json) 时按显式路径处理，
// 否则按基础名称查找，因此 "my.app" 会查找 my.app.yaml 等文件。
func Read(name string) (map[string]any, error) {
	if _, err := ParserFor(filepath.Ext(name)); err == nil {
		return ReadFile(name)
	}

	return ReadName(name)
}

// Parse 解析内存中的配置数据，例如通过 go:embed 嵌入的配置。
func Parse(ext string, data []byte) (map[string]any, error) {
	parser, err := ParserFor(ext)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", ext, err)
	}

	return k.Raw(), nil
}

// Section 提取作用域对应的配置节。
//
// 配置为空、作用域不存在或不是映射时返回空映射。
func Section(cfg map[string]any, scope string) map[string]any {
	raw, ok := cfg[scope]
	if !ok {
		slog.Debug("No config data found for section", "section", scope)
		return map[string]any{}
	}

	section, ok := raw.(map[string]any)
	if !ok {
		slog.Debug("Config section is not a mapping", "section", scope)
		return map[string]any{}
	}

	return section
}
