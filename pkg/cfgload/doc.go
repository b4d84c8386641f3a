// Package cfgload 提供按作用域分节的配置文件加载功能。
//
// 支持 YAML、TOML、JSON 三种格式，按扩展名选择解析器：
//   - .yaml / .yml → YAML
//   - .toml → TOML
//   - .json → JSON
//
// # 查找规则
//
// 两种定位方式，失败语义不同：
//   - 基础名称 [ReadName]：依次尝试 name.yaml、name.toml、name.json，
//     都不存在时返回 nil（配置是可选的）
//   - 显式路径 [ReadFile]：文件必须存在，否则返回 [ErrFileNotFound]
//
// 不支持的扩展名返回 [*UnsupportedFormatError]。
//
// # 文件结构
//
// 顶层为作用域名称（函数名或类型名），其下为参数名到值的映射：
//
//	# config.yaml
//	server:
//	  addr: ":8080"
//	  timeout: 30
//
// 使用 [Section] 提取某一作用域，不存在时返回空映射。
package cfgload
