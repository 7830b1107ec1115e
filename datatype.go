package dyncol

// DataType describes a concrete column type: its canonical name, its default
// value, how to create an empty column for it, and the capabilities the
// subcolumn resolver consults.
type DataType interface {
	// Name returns the canonical declared name, e.g. "Nullable(Int64)".
	Name() string
	// Default returns the value a freshly appended default row carries.
	// Nullable types return nil.
	Default() any
	// CreateColumn returns an empty appendable column of this type.
	CreateColumn() MutableColumn
	// DefaultSerialization returns the type's default serialization.
	DefaultSerialization() Serialization
	// CanBeInsideNullable reports whether the type may be embedded in a
	// Nullable wrapper.
	CanBeInsideNullable() bool
	// IsLowCardinality reports whether the type is a LowCardinality wrapper.
	IsLowCardinality() bool
}

// SubcolumnResolver is the per-type capability for resolving nested
// subcolumn paths. Types without nested subcolumns simply do not implement
// it; callers treat that as "no such subcolumn".
type SubcolumnResolver interface {
	// ResolveSubcolumn resolves path against this type. data carries the
	// tentative type/serialization and, when an instance column was
	// supplied, the corresponding column data. The mode controls whether an
	// unknown subcolumn fails hard or yields (nil, nil).
	ResolveSubcolumn(path string, data SubstreamData, mode ResolveMode) (*SubstreamData, error)
}

// ResolveMode selects how unknown subcolumns propagate.
type ResolveMode int

const (
	// ResolveSoft returns (nil, nil) for unknown subcolumns so callers can
	// probe for existence.
	ResolveSoft ResolveMode = iota
	// ResolveStrict raises an unknown_subcolumn issue instead.
	ResolveStrict
)

// SubstreamData is the resolver's input and output unit: a semantic type, a
// serialization, and optionally concrete column data. Column is non-nil iff
// an instance column was supplied; when non-nil its length always equals the
// supplied instance's row count.
type SubstreamData struct {
	Type          DataType
	Serialization Serialization
	Column        Column
}

// Column is a read-only view over column data.
type Column interface {
	Len() int
	// Value returns the logical value at row i. Nullable columns (and
	// nullable-wrapped views) return nil for null rows.
	Value(i int) any
}

// MutableColumn is an appendable column.
type MutableColumn interface {
	Column
	// Append adds one value, leaving the column unchanged on error. The
	// accepted dynamic types depend on the column; a mismatch yields an
	// invalid_type issue.
	Append(v any) error
	// AppendDefault adds one default-valued row.
	AppendDefault()
	// Truncate discards rows from the end so that Len() == n. n must not
	// exceed the current length.
	Truncate(n int)
}
