package cfgload

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat 配置文件扩展名无法识别
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrFileNotFound 显式指定的配置文件不存在
	ErrFileNotFound = errors.New("config file not found")
)

// UnsupportedFormatError 记录无法识别的扩展名。
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Ext)
}

// Is 使 errors.Is(err, ErrUnsupportedFormat) 成立。
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}
