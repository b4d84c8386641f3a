package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lwmacct/251207-go-pkg-version/pkg/version"
	"github.com/lwmacct/251219-go-pkg-logm/pkg/logm"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251220-go-pkg-argm/internal/command/example"
	"github.com/lwmacct/251220-go-pkg-argm/internal/command/resolve"
)

func main() {
	_ = logm.Init(logm.PresetAuto()...)

	app := &cli.Command{
		Name:                      "argm",
		Usage:                     "按优先级 (配置文件 / 环境变量 / 调用参数 / 默认值) 解析参数",
		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			resolve.Command,
			example.Command,
			version.Command,
		},
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("应用程序运行失败", "error", err)
		os.Exit(1)
	}
}
