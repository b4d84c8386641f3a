package argm

import (
	"bytes"
	"encoding/json"
	"strings"

	yamlv3 "go.yaml.in/yaml/v3"
)

// ExampleYAML 根据参数定制项生成带注释的作用域配置示例。
//
// 键名使用配置键名 (AltName 优先)，值为默认值，Desc 作为注释。
//
// 使用示例：
//
//	yaml := argm.ExampleYAML("server",
//	    argm.Override{Name: "addr", Default: ":8080", Desc: "监听地址"},
//	)
//	os.WriteFile("config.example.yaml", yaml, 0644)
func ExampleYAML(scope string, overrides ...Override) []byte {
	section := &yamlv3.Node{Kind: yamlv3.MappingNode}
	for _, o := range overrides {
		keyNode := &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: ConfigName(o.Name, &o)}
		valNode := valueToNode(o.Default)
		setComment(keyNode, valNode, o.Desc)
		section.Content = append(section.Content, keyNode, valNode)
	}
	if len(section.Content) == 0 {
		section.Style = yamlv3.FlowStyle
	}

	root := &yamlv3.Node{
		Kind:        yamlv3.MappingNode,
		HeadComment: "配置示例文件, 复制此文件为 config.yaml 并根据需要修改",
		Content: []*yamlv3.Node{
			{Kind: yamlv3.ScalarNode, Value: scope},
			section,
		},
	}

	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(2)
	_ = enc.Encode(root)
	_ = enc.Close()

	return buf.Bytes()
}

// MarshalJSON 生成 JSON 格式的作用域配置示例 (无注释)。
func MarshalJSON(scope string, overrides ...Override) []byte {
	section := make(map[string]any, len(overrides))
	for _, o := range overrides {
		section[ConfigName(o.Name, &o)] = o.Default
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]any{scope: section}) //nolint:errchkjson // 默认值来自配置解析，可序列化

	return buf.Bytes()
}

// setComment 多行注释放在 key 上方，单行注释放在行尾
func setComment(keyNode, valNode *yamlv3.Node, comment string) {
	if comment == "" {
		return
	}
	if strings.Contains(comment, "\n") {
		keyNode.HeadComment = comment
	} else {
		valNode.LineComment = comment
	}
}

// valueToNode 将默认值转换为 yamlv3.Node，nil 输出为 null
func valueToNode(v any) *yamlv3.Node {
	if v == nil {
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!null", Value: "null"}
	}

	node := &yamlv3.Node{}
	if err := node.Encode(v); err != nil {
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!null", Value: "null"}
	}
	if node.Kind == yamlv3.ScalarNode && node.Tag == "!!str" {
		node.Style = yamlv3.DoubleQuotedStyle
	}

	return node
}
