package argm

import (
	"errors"
	"fmt"
	"reflect"
)

// Target 可写入属性的绑定目标
type Target interface {
	// Has 判断属性是否已存在
	Has(name string) bool
	// Set 写入属性
	Set(name string, value any) error
}

// validator 可选接口，写入前检查属性名与值类型
type validator interface {
	Validate(name string, value any) error
}

// Bind 将解析结果写入 target 的属性。
//
// 属性名由 [Arg.AttrName] 计算，protect 为 true 时使用 "_name"。
// 所有属性名在写入前统一校验：任何一个已存在都返回 [*AttributeExistsError]，
// 且不写入任何属性。
func Bind(target Target, args Args, protect bool) error {
	keys := args.Keys()
	names := make([]string, len(keys))
	seen := make(map[string]bool, len(keys))
	v, hasValidator := target.(validator)

	for i, key := range keys {
		arg := args[key]
		name := arg.AttrName(protect)
		if seen[name] || target.Has(name) {
			return &AttributeExistsError{Name: name}
		}
		if hasValidator {
			if err := v.Validate(name, arg.value); err != nil {
				return err
			}
		}
		seen[name] = true
		names[i] = name
	}

	for i, key := range keys {
		if err := target.Set(names[i], args[key].value); err != nil {
			return err
		}
	}
	return nil
}

// MapTarget 以普通映射作为绑定目标
type MapTarget map[string]any

// Has 实现 [Target]
func (m MapTarget) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Set 实现 [Target]
func (m MapTarget) Set(name string, value any) error {
	m[name] = value
	return nil
}

// StructTarget 以结构体字段作为绑定目标。
//
// 字段通过 argm 标签与属性名匹配，如 `argm:"_timeout"`；
// 非零值字段视为已存在的属性。
type StructTarget struct {
	val    reflect.Value
	fields map[string]int
}

// NewStructTarget 包装结构体指针
func NewStructTarget(ptr any) (*StructTarget, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, errors.New("bind target must be a non-nil pointer to struct")
	}

	elem := rv.Elem()
	typ := elem.Type()
	fields := make(map[string]int, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		tag := field.Tag.Get("argm")
		if tag == "" || tag == "-" || !field.IsExported() {
			continue
		}
		fields[tag] = i
	}

	return &StructTarget{val: elem, fields: fields}, nil
}

// Has 实现 [Target]
func (s *StructTarget) Has(name string) bool {
	i, ok := s.fields[name]
	if !ok {
		return false
	}
	return !s.val.Field(i).IsZero()
}

// Validate 检查字段存在且值可赋给字段
func (s *StructTarget) Validate(name string, value any) error {
	i, ok := s.fields[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
	}
	if value == nil {
		return nil
	}
	if _, err := assignable(reflect.ValueOf(value), s.val.Field(i).Type()); err != nil {
		return fmt.Errorf("attribute %s: %w", name, err)
	}
	return nil
}

// Set 实现 [Target]，nil 值保持字段为零值
func (s *StructTarget) Set(name string, value any) error {
	if err := s.Validate(name, value); err != nil {
		return err
	}
	if value == nil {
		return nil
	}

	field := s.val.Field(s.fields[name])
	rv, _ := assignable(reflect.ValueOf(value), field.Type())
	field.Set(rv)
	return nil
}

// assignable 返回可直接赋给 typ 的值，数值类型之间允许转换
func assignable(rv reflect.Value, typ reflect.Type) (reflect.Value, error) {
	if rv.Type().AssignableTo(typ) {
		return rv, nil
	}
	if isNumeric(rv.Kind()) && isNumeric(typ.Kind()) {
		return rv.Convert(typ), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot assign %s to %s", rv.Type(), typ)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
