package argm

import (
	"log/slog"

	"github.com/lwmacct/251220-go-pkg-argm/pkg/cfgload"
)

// Option 配置 [Resolver] 的函数选项
type Option func(*Resolver)

// WithPriority 设置来源查询顺序，默认为 [DefaultPriority]
func WithPriority(p Priority) Option {
	return func(r *Resolver) {
		r.priority = clonePriority(p)
	}
}

// WithEnvPrefix 设置环境变量前缀，如 "MYAPP" → MYAPP_TIMEOUT
func WithEnvPrefix(prefix string) Option {
	return func(r *Resolver) {
		r.envPrefix = prefix
	}
}

// WithDefaults 添加参数定制项，可多次调用，同名时后者覆盖前者
func WithDefaults(overrides ...Override) Option {
	return func(r *Resolver) {
		r.overrides = append(r.overrides, overrides...)
	}
}

// WithConfigName 按基础名称查找配置文件 (name.yaml / name.toml / name.json)，
// 找不到时视为无配置。默认为 [cfgload.DefaultName]。
func WithConfigName(name string) Option {
	return func(r *Resolver) {
		r.loadConfig = func() (map[string]any, error) {
			return cfgload.ReadName(name)
		}
	}
}

// WithConfigFile 使用显式路径的配置文件，文件不存在时解析失败
func WithConfigFile(path string) Option {
	return func(r *Resolver) {
		r.loadConfig = func() (map[string]any, error) {
			return cfgload.ReadFile(path)
		}
	}
}

// WithConfigData 使用内存中的配置数据，ext 为格式扩展名
func WithConfigData(ext string, data []byte) Option {
	return func(r *Resolver) {
		r.loadConfig = func() (map[string]any, error) {
			return cfgload.Parse(ext, data)
		}
	}
}

// WithConfig 直接使用已加载的配置映射 (顶层为作用域名)
func WithConfig(cfg map[string]any) Option {
	return func(r *Resolver) {
		r.loadConfig = func() (map[string]any, error) {
			return cfg, nil
		}
	}
}

// WithEnvironment 注入环境变量快照，默认每次解析时读取进程环境
func WithEnvironment(env Environment) Option {
	return func(r *Resolver) {
		r.env = env
	}
}

// WithKwargs 添加额外的关键字参数，与显式参数同名的项被忽略。
// 多次调用时合并，同名项后者覆盖前者。
func WithKwargs(kwargs map[string]any) Option {
	return func(r *Resolver) {
		if r.kwargs == nil {
			r.kwargs = make(map[string]any, len(kwargs))
		}
		for name, v := range kwargs {
			r.kwargs[name] = v
		}
	}
}

// WithTemplateExpansion 对配置和默认值中的字符串进行模板展开，
// 变量来自环境变量快照。
func WithTemplateExpansion() Option {
	return func(r *Resolver) {
		r.expand = true
	}
}

// WithProtect 设置绑定时是否使用 "_" 前缀的受保护属性名，默认 true
func WithProtect(protect bool) Option {
	return func(r *Resolver) {
		r.protect = protect
	}
}

// WithLogger 设置日志记录器，默认使用 slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}
