// Package resolve 提供参数解析命令，展示每个参数的取值与来源。
package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/lwmacct/251207-go-pkg-version/pkg/version"
	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251220-go-pkg-argm/internal/command"
	"github.com/lwmacct/251220-go-pkg-argm/internal/config"
	"github.com/lwmacct/251220-go-pkg-argm/pkg/argm"
)

// Command 解析命令
var Command = New()

// New 创建解析命令，每次调用返回独立的 flag 状态
func New() *cli.Command {
	return &cli.Command{
		Name:                      "resolve",
		Usage:                     "按优先级解析参数并输出取值与来源",
		ArgsUsage:                 "[name ...]",
		Action:                    action,
		DisableSliceFlagSeparator: true, // k=v 的值可能包含逗号，如 hosts=a,b
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "scope",
				Aliases:  []string{"s"},
				Usage:    "配置文件中的作用域节",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "config",
				Value: command.Defaults.Config,
				Usage: "业务配置文件基础名，按 yaml/toml/json 顺序查找",
			},
			&cli.StringFlag{
				Name:    "config-file",
				Aliases: []string{"f"},
				Usage:   "业务配置文件路径，优先于 --config",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Value: command.Defaults.Prefix,
				Usage: "环境变量前缀",
			},
			&cli.StringFlag{
				Name:    "priority",
				Aliases: []string{"p"},
				Value:   command.Defaults.Priority,
				Usage:   "来源优先级: config | env | arg | 逗号分隔的顺序 (如 arg,default)",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: command.Defaults.Format,
				Usage: "输出格式: table | json | yaml",
			},
			&cli.BoolFlag{
				Name:  "expand",
				Usage: "展开配置值与默认值中的模板",
			},
			&cli.BoolFlag{
				Name:  "protect",
				Value: command.Defaults.Protect,
				Usage: "属性名使用 _ 前缀",
			},
			&cli.StringSliceFlag{
				Name:  "param",
				Usage: "调用参数 k=v，仅写 k 表示未提供值",
			},
			&cli.StringSliceFlag{
				Name:  "default",
				Usage: "静态默认值 k=v",
			},
		},
	}
}

// Row 单个参数的解析结果
type Row struct {
	Key        string `json:"key" yaml:"key"`
	Value      any    `json:"value" yaml:"value"`
	Source     string `json:"source" yaml:"source"`
	EnvName    string `json:"env_name" yaml:"env_name"`
	ConfigName string `json:"config_name" yaml:"config_name"`
	Attr       string `json:"attr" yaml:"attr"`
}

func action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd, config.DefaultPaths(version.GetAppRawName()))
	if err != nil {
		return err
	}

	params, err := command.ParsePairs(cmd.StringSlice("param"))
	if err != nil {
		return err
	}
	for _, name := range cmd.Args().Slice() {
		if _, ok := params[name]; !ok {
			params[name] = nil
		}
	}

	defaults, err := command.ParsePairs(cmd.StringSlice("default"))
	if err != nil {
		return err
	}
	for name := range defaults {
		if _, ok := params[name]; !ok {
			params[name] = nil
		}
	}

	opts, err := Options(cfg, defaults)
	if err != nil {
		return err
	}

	scope := cmd.String("scope")
	args, err := argm.Resolve(scope, params, opts...)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", scope, err)
	}
	slog.Debug("Resolved arguments", "scope", scope, "count", len(args))

	return Render(cmd.Root().Writer, cfg.Format, Rows(args, cfg.Protect))
}

// Options 将工具配置转换为解析选项
func Options(cfg *config.Config, defaults map[string]any) ([]argm.Option, error) {
	priority, err := argm.ParsePriority(cfg.Priority)
	if err != nil {
		return nil, err
	}

	opts := []argm.Option{
		argm.WithPriority(priority),
		argm.WithEnvPrefix(cfg.Prefix),
		argm.WithProtect(cfg.Protect),
		argm.WithDefaults(command.DefaultOverrides(defaults)...),
	}
	if cfg.ConfigFile != "" {
		opts = append(opts, argm.WithConfigFile(cfg.ConfigFile))
	} else {
		opts = append(opts, argm.WithConfigName(cfg.Config))
	}
	if cfg.Expand {
		opts = append(opts, argm.WithTemplateExpansion())
	}

	return opts, nil
}

// Rows 按键名排序生成输出行
func Rows(args argm.Args, protect bool) []Row {
	rows := make([]Row, 0, len(args))
	for _, key := range args.Keys() {
		arg := args[key]
		rows = append(rows, Row{
			Key:        key,
			Value:      arg.Value(),
			Source:     arg.Source().String(),
			EnvName:    arg.EnvName(),
			ConfigName: arg.ConfigName(),
			Attr:       arg.AttrName(protect),
		})
	}
	return rows
}

// Render 按格式输出
func Render(w io.Writer, format string, rows []Row) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yamlv3.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE\tENV\tCONFIG\tATTR")
		for _, r := range rows {
			value := "<none>"
			if r.Value != nil {
				value = fmt.Sprintf("%v", r.Value)
			}
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Key, value, r.Source, r.EnvName, r.ConfigName, r.Attr)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
