// Author: lwmacct (https://github.com/lwmacct)
// Package argm 按调用方指定的优先级解析命名参数的值。
//
// 每个参数最多从四个来源取值：
//   - [SourceArg] - 调用时传入的值
//   - [SourceConfig] - 配置文件中作用域节下的值
//   - [SourceEnv] - 环境变量
//   - [SourceDefault] - 静态默认值
//
// 按 [Priority] 从左到右查找，第一个存在的值即为结果。
// 只有 nil (或未设置的环境变量) 表示缺失；0、""、false 都是有效值。
//
// # 快速开始
//
//	args, err := argm.Resolve("server", map[string]any{
//	    "addr":    addr,    // 调用方的参数值，nil 表示未提供
//	    "timeout": nil,
//	},
//	    argm.WithPriority(argm.EnvPriority),
//	    argm.WithEnvPrefix("MYAPP"),
//	    argm.WithDefaults(
//	        argm.Override{Name: "timeout", Default: 30},
//	    ),
//	)
//	fmt.Println(args.Get("timeout"), args.Source("timeout"))
//
// # 预定义优先级
//
//   - [ConfigPriority] - CONFIG, ENV, ARG, DEFAULT (默认)
//   - [EnvPriority] - ENV, CONFIG, ARG, DEFAULT
//   - [ArgPriority] - ARG, CONFIG, ENV, DEFAULT
//
// 可使用任意子集，如 Priority{SourceArg, SourceDefault}，
// 未列出的来源不会被查询。
//
// # 名称推导
//
//   - 配置键名：[Override].AltName，否则为参数名
//   - 环境变量名：[Override].EnvName，否则 AltName，否则 PREFIX_NAME，始终大写
//   - 属性名：[Override].Attr，否则受保护时为 _name
//
// # 配置文件
//
// 默认按基础名称 "config" 查找 config.yaml、config.toml、config.json，
// 详见 [cfgload] 包。只有优先级中包含 [SourceConfig] 时才读取文件。
//
// # 绑定
//
// [Bind] 将结果写入 [Target]（[MapTarget] 或 [StructTarget]），
// 绝不覆盖已存在的属性；[Args.Decode] 将结果解码到普通结构体。
//
// # 环境变量快照
//
// 默认每次解析读取一次进程环境；测试时可通过 [WithEnvironment] 注入 [MapEnv]。
package argm
