// Package example 提供配置示例生成命令。
package example

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251220-go-pkg-argm/internal/command"
	"github.com/lwmacct/251220-go-pkg-argm/pkg/argm"
)

// Command 示例生成命令
var Command = New()

// New 创建示例生成命令
func New() *cli.Command {
	return &cli.Command{
		Name:                      "example",
		Usage:                     "根据默认值生成作用域配置示例",
		Action:                    action,
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "scope",
				Aliases:  []string{"s"},
				Usage:    "作用域节名称",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "default",
				Usage: "默认值 k=v，仅写 k 输出 null",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "yaml",
				Usage: "输出格式: yaml | json",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "写入文件而非标准输出",
			},
		},
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	defaults, err := command.ParsePairs(cmd.StringSlice("default"))
	if err != nil {
		return err
	}
	overrides := command.DefaultOverrides(defaults)
	scope := cmd.String("scope")

	var data []byte
	switch format := cmd.String("format"); format {
	case "yaml":
		data = argm.ExampleYAML(scope, overrides...)
	case "json":
		data = argm.MarshalJSON(scope, overrides...)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	if path := cmd.String("output"); path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write example: %w", err)
		}
		slog.Info("Example written", "path", path, "scope", scope)
		return nil
	}

	_, err = cmd.Root().Writer.Write(data)
	return err
}
