// Package tmpl 提供配置值的模板展开功能。
//
// 与 Taskfile 模板语法对齐，变量来自调用方传入的环境变量快照，
// 便于在不修改进程环境的情况下测试。
//
// # 设计参考
//
//   - Taskfile 模板语法: https://taskfile.dev/docs/reference/templating
//   - Sprig 模板函数: https://github.com/Masterminds/sprig
//
// # 支持的函数
//
//   - env: 获取环境变量 {{env "VAR"}} 或 {{env "VAR" "default"}}
//   - default: 管道默认值 {{.VAR | default "fallback"}}
//   - coalesce: 返回第一个非空值 {{coalesce .VAR1 .VAR2 "default"}}
//
// 详见 [Expand] 文档。
package tmpl
