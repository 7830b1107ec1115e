package dyncol

import (
	"reflect"

	"github.com/goccy/go-json"

	"github.com/varlake/dyncol/i18n"
)

// Numeric constrains the element types numeric columns can hold.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// NumericColumn is a flat, densely packed numeric column.
type NumericColumn[T Numeric] struct {
	data []T
}

// NewNumericColumn returns an empty numeric column.
func NewNumericColumn[T Numeric]() *NumericColumn[T] { return &NumericColumn[T]{} }

// NumericColumnOf returns a numeric column holding vs.
func NumericColumnOf[T Numeric](vs ...T) *NumericColumn[T] {
	return &NumericColumn[T]{data: vs}
}

func (c *NumericColumn[T]) Len() int          { return len(c.data) }
func (c *NumericColumn[T]) Value(i int) any   { return c.data[i] }
func (c *NumericColumn[T]) AppendDefault()    { var zero T; c.data = append(c.data, zero) }
func (c *NumericColumn[T]) AppendTyped(v T)   { c.data = append(c.data, v) }
func (c *NumericColumn[T]) Data() []T         { return c.data }
func (c *NumericColumn[T]) Resize(n int, v T) {
	for len(c.data) < n {
		c.data = append(c.data, v)
	}
}
func (c *NumericColumn[T]) Truncate(n int) { c.data = c.data[:n] }

func (c *NumericColumn[T]) Append(v any) error {
	if t, ok := v.(T); ok {
		c.data = append(c.data, t)
		return nil
	}
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			v = i
		} else if f, err := n.Float64(); err == nil {
			v = f
		}
	}
	rv := reflect.ValueOf(v)
	var zero T
	rt := reflect.TypeOf(zero)
	if rv.IsValid() && isNumericKind(rv.Kind()) && rv.CanConvert(rt) {
		c.data = append(c.data, rv.Convert(rt).Interface().(T))
		return nil
	}
	return Issues{{Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected a numeric value", Params: map[string]any{"got": typeNameOf(v)}}}
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func typeNameOf(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
