package argm

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/lwmacct/251220-go-pkg-argm/pkg/cfgload"
	"github.com/lwmacct/251220-go-pkg-argm/pkg/tmpl"
)

// Resolver 按优先级顺序解析参数值。
//
// 创建后不再修改，可被多个 goroutine 并发使用；
// 每次解析只读取一次配置文件和一次环境变量快照。
type Resolver struct {
	priority   Priority
	envPrefix  string
	overrides  []Override
	index      map[string]Override
	loadConfig func() (map[string]any, error)
	env        Environment
	kwargs     map[string]any
	expand     bool
	protect    bool
	logger     *slog.Logger
}

// New 创建解析器
func New(opts ...Option) *Resolver {
	r := &Resolver{
		priority: clonePriority(DefaultPriority),
		loadConfig: func() (map[string]any, error) {
			return cfgload.ReadName(cfgload.DefaultName)
		},
		protect: true,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.index = indexOverrides(r.overrides)

	return r
}

// Priority 返回解析器使用的来源顺序
func (r *Resolver) Priority() Priority {
	return clonePriority(r.priority)
}

// Resolve 解析作用域 scope 下的参数。
//
// params 为参数名到调用时候选值的映射，nil 表示调用方未提供值。
// 配置读取失败时立即返回错误，不解析任何参数。
func (r *Resolver) Resolve(scope string, params map[string]any) (Args, error) {
	if err := r.priority.Validate(); err != nil {
		return nil, err
	}

	r.logger.Debug("Creating arguments", "scope", scope, "priority", r.priority.String())

	section, err := r.section(scope)
	if err != nil {
		return nil, err
	}

	env := r.env
	if env == nil {
		env = OSEnv()
	}

	candidates := r.candidates(params)
	names := make([]string, 0, len(candidates))
	for name := range candidates {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make(Args, len(names))
	for _, name := range names {
		arg, err := r.resolveOne(name, candidates[name], section, env)
		if err != nil {
			return nil, err
		}
		if prev, ok := args[arg.key]; ok {
			return nil, fmt.Errorf("%w: %s (%s, %s)", ErrDuplicateKey, arg.key, prev.name, arg.name)
		}
		args[arg.key] = arg
	}

	return args, nil
}

// ResolveInto 解析参数并绑定到 target，见 [Bind]。
func (r *Resolver) ResolveInto(scope string, params map[string]any, target Target) (Args, error) {
	args, err := r.Resolve(scope, params)
	if err != nil {
		return nil, err
	}
	if err := Bind(target, args, r.protect); err != nil {
		return args, err
	}
	return args, nil
}

// Resolve 使用给定选项创建解析器并解析一次
func Resolve(scope string, params map[string]any, opts ...Option) (Args, error) {
	return New(opts...).Resolve(scope, params)
}

// section 读取配置并返回作用域对应的节。
// 优先级中不包含 SourceConfig 时不读取文件。
func (r *Resolver) section(scope string) (map[string]any, error) {
	if !r.priority.Contains(SourceConfig) {
		return map[string]any{}, nil
	}

	cfg, err := r.loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		r.logger.Debug("Checking for section in config", "section", scope)
	}

	return cfgload.Section(cfg, scope), nil
}

// candidates 合并显式参数与关键字参数
func (r *Resolver) candidates(params map[string]any) map[string]any {
	out := make(map[string]any, len(params)+len(r.kwargs))
	for name, v := range r.kwargs {
		out[name] = v
	}
	for name, v := range params {
		out[name] = v
	}
	return out
}

func (r *Resolver) resolveOne(name string, candidate any, section map[string]any, env Environment) (*Arg, error) {
	var o *Override
	if found, ok := r.index[name]; ok {
		o = &found
	}

	arg := &Arg{
		name:       name,
		key:        ResultKey(name, o),
		envName:    EnvName(r.envPrefix, name, o),
		configName: ConfigName(name, o),
	}
	if o != nil {
		arg.attr = o.Attr
	}

	values := Values{Arg: candidate}
	if o == nil || !o.DisableEnv {
		values.Env, values.EnvSet = env.Lookup(arg.envName)
	}
	if v, ok := section[arg.configName]; ok {
		values.Config = v
	}
	if o != nil {
		values.Default = o.Default
	}

	if r.expand {
		if err := r.expandValues(name, &values, env); err != nil {
			return nil, err
		}
	}

	arg.values = values
	arg.value, arg.source = ResolveValues(values, r.priority)
	r.logger.Debug("Resolved argument", "name", name, "source", arg.source.String(), "value", arg.value)

	return arg, nil
}

// expandValues 展开配置值和默认值中的模板字符串
func (r *Resolver) expandValues(name string, v *Values, env Environment) error {
	for _, field := range []*any{&v.Config, &v.Default} {
		s, ok := (*field).(string)
		if !ok || !tmpl.NeedsExpansion(s) {
			continue
		}
		expanded, err := tmpl.Expand(s, env.Vars())
		if err != nil {
			return fmt.Errorf("failed to expand value of %s: %w", name, err)
		}
		*field = expanded
	}
	return nil
}
