package argm

import (
	"errors"
	"fmt"
)

var (
	// ErrAttributeExists 绑定会覆盖目标上已存在的属性
	ErrAttributeExists = errors.New("attribute already exists")

	// ErrUnknownAttribute 目标上没有对应名称的属性可写
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrUnknownSource 优先级中出现未知来源
	ErrUnknownSource = errors.New("unknown source")

	// ErrDuplicateSource 优先级中同一来源出现多次
	ErrDuplicateSource = errors.New("duplicate source in priority")

	// ErrDuplicateKey 多个参数映射到同一个结果键
	ErrDuplicateKey = errors.New("duplicate result key")
)

// AttributeExistsError 记录发生冲突的属性名。
type AttributeExistsError struct {
	Name string
}

func (e *AttributeExistsError) Error() string {
	return fmt.Sprintf("attribute already exists: %s", e.Name)
}

// Is 使 errors.Is(err, ErrAttributeExists) 成立。
func (e *AttributeExistsError) Is(target error) bool {
	return target == ErrAttributeExists
}
