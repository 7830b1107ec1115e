package dyncol

// scalarType covers the numeric primitives. The zero value of T is the
// column default.
type scalarType[T Numeric] struct {
	name string
}

func (t scalarType[T]) Name() string                        { return t.name }
func (t scalarType[T]) Default() any                        { var zero T; return zero }
func (t scalarType[T]) CreateColumn() MutableColumn         { return NewNumericColumn[T]() }
func (t scalarType[T]) DefaultSerialization() Serialization { return plainSerialization{name: t.name} }
func (t scalarType[T]) CanBeInsideNullable() bool           { return true }
func (t scalarType[T]) IsLowCardinality() bool              { return false }

type stringType struct{}

func (stringType) Name() string                        { return "String" }
func (stringType) Default() any                        { return "" }
func (stringType) CreateColumn() MutableColumn         { return NewStringColumn() }
func (stringType) DefaultSerialization() Serialization { return plainSerialization{name: "String"} }
func (stringType) CanBeInsideNullable() bool           { return true }
func (stringType) IsLowCardinality() bool              { return false }

type boolType struct{}

func (boolType) Name() string                        { return "Bool" }
func (boolType) Default() any                        { return false }
func (boolType) CreateColumn() MutableColumn         { return NewBoolColumn() }
func (boolType) DefaultSerialization() Serialization { return plainSerialization{name: "Bool"} }
func (boolType) CanBeInsideNullable() bool           { return true }
func (boolType) IsLowCardinality() bool              { return false }

// Scalar type singletons.
var (
	TypeInt8    DataType = scalarType[int8]{name: "Int8"}
	TypeInt16   DataType = scalarType[int16]{name: "Int16"}
	TypeInt32   DataType = scalarType[int32]{name: "Int32"}
	TypeInt64   DataType = scalarType[int64]{name: "Int64"}
	TypeUInt8   DataType = scalarType[uint8]{name: "UInt8"}
	TypeUInt16  DataType = scalarType[uint16]{name: "UInt16"}
	TypeUInt32  DataType = scalarType[uint32]{name: "UInt32"}
	TypeUInt64  DataType = scalarType[uint64]{name: "UInt64"}
	TypeFloat32 DataType = scalarType[float32]{name: "Float32"}
	TypeFloat64 DataType = scalarType[float64]{name: "Float64"}
	TypeString  DataType = stringType{}
	TypeBool    DataType = boolType{}
)

// NullableType wraps an inner type with an explicit NULL marker.
type NullableType struct {
	inner DataType
}

// NewNullable wraps inner. Callers are expected to check
// CanBeInsideNullable first; use MakeNullableOrLowCardinalityNullableSafe
// for the checked form.
func NewNullable(inner DataType) *NullableType { return &NullableType{inner: inner} }

func (t *NullableType) Name() string                { return "Nullable(" + t.inner.Name() + ")" }
func (t *NullableType) Default() any                { return nil }
func (t *NullableType) CreateColumn() MutableColumn { return NewNullableColumn(t.inner.CreateColumn()) }
func (t *NullableType) DefaultSerialization() Serialization {
	return plainSerialization{name: t.Name()}
}
func (t *NullableType) CanBeInsideNullable() bool { return false }
func (t *NullableType) IsLowCardinality() bool    { return false }

// Inner returns the wrapped type.
func (t *NullableType) Inner() DataType { return t.inner }

// ResolveSubcolumn exposes the "null" subcolumn: the per-row null indicator
// as UInt8, sharing the column's null-map storage. It serves callers
// resolving against a Nullable type directly; the Dynamic resolver handles
// a trailing "null" itself, before delegating nested paths here.
func (t *NullableType) ResolveSubcolumn(path string, data SubstreamData, mode ResolveMode) (*SubstreamData, error) {
	if path != "null" {
		if mode == ResolveStrict {
			return nil, Issues{{Path: path, Code: CodeUnknownSubcolumn, Message: t.Name() + " has no subcolumn '" + path + "'"}}
		}
		return nil, nil
	}
	res := &SubstreamData{Type: TypeUInt8, Serialization: TypeUInt8.DefaultSerialization()}
	if data.Column != nil {
		nc, ok := data.Column.(*NullableColumn)
		if !ok {
			return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "column is not Nullable", Params: map[string]any{"got": typeNameOf(data.Column)}}}
		}
		res.Column = &NumericColumn[uint8]{data: nc.NullMap()}
	}
	return res, nil
}

// LowCardinalityType wraps an inner type with dictionary encoding.
type LowCardinalityType struct {
	inner DataType
}

// NewLowCardinality wraps inner.
func NewLowCardinality(inner DataType) *LowCardinalityType {
	return &LowCardinalityType{inner: inner}
}

func (t *LowCardinalityType) Name() string                { return "LowCardinality(" + t.inner.Name() + ")" }
func (t *LowCardinalityType) Default() any                { return t.inner.Default() }
func (t *LowCardinalityType) CreateColumn() MutableColumn { return NewLowCardinalityColumn() }
func (t *LowCardinalityType) DefaultSerialization() Serialization {
	return plainSerialization{name: t.Name()}
}
func (t *LowCardinalityType) CanBeInsideNullable() bool { return false }
func (t *LowCardinalityType) IsLowCardinality() bool    { return true }

// Inner returns the dictionary value type.
func (t *LowCardinalityType) Inner() DataType { return t.inner }

// ArrayType is a variable-length array of an element type.
type ArrayType struct {
	elem DataType
}

// NewArray returns the array type of elem.
func NewArray(elem DataType) *ArrayType { return &ArrayType{elem: elem} }

func (t *ArrayType) Name() string                { return "Array(" + t.elem.Name() + ")" }
func (t *ArrayType) Default() any                { return []any{} }
func (t *ArrayType) CreateColumn() MutableColumn { return NewArrayColumn(t.elem.CreateColumn()) }
func (t *ArrayType) DefaultSerialization() Serialization {
	return plainSerialization{name: t.Name()}
}
func (t *ArrayType) CanBeInsideNullable() bool { return false }
func (t *ArrayType) IsLowCardinality() bool    { return false }

// Elem returns the element type.
func (t *ArrayType) Elem() DataType { return t.elem }

// ResolveSubcolumn exposes the "size0" subcolumn: per-row array lengths as
// UInt64, backed by the shared offsets.
func (t *ArrayType) ResolveSubcolumn(path string, data SubstreamData, mode ResolveMode) (*SubstreamData, error) {
	if path != "size0" {
		if mode == ResolveStrict {
			return nil, Issues{{Path: path, Code: CodeUnknownSubcolumn, Message: t.Name() + " has no subcolumn '" + path + "'"}}
		}
		return nil, nil
	}
	res := &SubstreamData{Type: TypeUInt64, Serialization: TypeUInt64.DefaultSerialization()}
	if data.Column != nil {
		ac, ok := data.Column.(*ArrayColumn)
		if !ok {
			return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "column is not Array", Params: map[string]any{"got": typeNameOf(data.Column)}}}
		}
		res.Column = ac.Sizes()
	}
	return res, nil
}

// MakeNullableOrLowCardinalityNullableSafe promotes t to its nullable form
// when possible and returns t unchanged otherwise. LowCardinality(T) becomes
// LowCardinality(Nullable(T)); already-nullable types are left alone.
func MakeNullableOrLowCardinalityNullableSafe(t DataType) DataType {
	switch tt := t.(type) {
	case *NullableType:
		return t
	case *LowCardinalityType:
		if _, ok := tt.inner.(*NullableType); ok {
			return t
		}
		if !tt.inner.CanBeInsideNullable() {
			return t
		}
		return NewLowCardinality(NewNullable(tt.inner))
	}
	if t.CanBeInsideNullable() {
		return NewNullable(t)
	}
	return t
}
