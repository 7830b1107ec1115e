package dyncol

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

const (
	// DefaultMaxDynamicTypes is the bound used when a Dynamic declaration
	// omits the max_types argument.
	DefaultMaxDynamicTypes = 32
	// MaxDynamicTypes is the hard ceiling on max_types. It equals
	// MaxVariants because every observed type occupies one variant slot in
	// the one-byte discriminator encoding; the two must move together.
	MaxDynamicTypes = MaxVariants
)

// DynamicType is a self-describing column type: values may belong to any
// concrete type, up to maxTypes distinct ones per column instance.
type DynamicType struct {
	maxTypes int
}

// NewDynamicType returns a Dynamic type with the given distinct-type bound.
func NewDynamicType(maxTypes int) (*DynamicType, error) {
	if maxTypes < 1 || maxTypes > MaxDynamicTypes {
		return nil, Issues{{
			Path:    "Dynamic",
			Code:    CodeOutOfRange,
			Message: "'max_types' argument for Dynamic type should be a positive integer between 1 and 255",
			Params:  map[string]any{"got": maxTypes},
		}}
	}
	return &DynamicType{maxTypes: maxTypes}, nil
}

// MustDynamicType is NewDynamicType that panics on an invalid bound. For
// tests and static declarations.
func MustDynamicType(maxTypes int) *DynamicType {
	t, err := NewDynamicType(maxTypes)
	if err != nil {
		panic(err)
	}
	return t
}

// createDynamic is the registry factory for the declaration grammar
// "Dynamic" / "Dynamic(max_types=N)".
func createDynamic(args string) (DataType, error) {
	if strings.TrimSpace(args) == "" {
		return &DynamicType{maxTypes: DefaultMaxDynamicTypes}, nil
	}
	if strings.Contains(args, ",") {
		return nil, Issues{{
			Path:    "Dynamic",
			Code:    CodeBadArity,
			Message: "Dynamic data type can have only one optional argument - the maximum number of dynamic types in a form 'Dynamic(max_types=N)'",
		}}
	}
	lhs, rhs, ok := strings.Cut(args, "=")
	if !ok {
		return nil, Issues{{
			Path:    "Dynamic",
			Code:    CodeBadArgument,
			Message: "Dynamic data type argument should be in a form 'max_types=N'",
		}}
	}
	if name := strings.TrimSpace(lhs); name != "max_types" {
		return nil, Issues{{
			Path:    "Dynamic",
			Code:    CodeBadArgument,
			Message: "unexpected identifier '" + name + "', Dynamic data type argument should be in a form 'max_types=N'",
		}}
	}
	lit := strings.TrimSpace(rhs)
	n, err := strconv.ParseUint(lit, 10, 64)
	if err != nil {
		return nil, Issues{{
			Path:    "Dynamic",
			Code:    CodeBadArgument,
			Message: "'max_types' argument for Dynamic type should be a positive integer between 1 and 255",
			Params:  map[string]any{"got": lit},
		}}
	}
	if n < 1 || n > MaxDynamicTypes {
		return nil, Issues{{
			Path:    "Dynamic",
			Code:    CodeOutOfRange,
			Message: "'max_types' argument for Dynamic type should be a positive integer between 1 and 255",
			Params:  map[string]any{"got": n},
		}}
	}
	return &DynamicType{maxTypes: int(n)}, nil
}

// MaxTypes returns the declared distinct-type bound.
func (t *DynamicType) MaxTypes() int { return t.maxTypes }

func (t *DynamicType) Name() string {
	if t.maxTypes == DefaultMaxDynamicTypes {
		return "Dynamic"
	}
	return "Dynamic(max_types=" + strconv.Itoa(t.maxTypes) + ")"
}

// Default is NULL: a Dynamic row with no value belongs to no type.
func (t *DynamicType) Default() any { return nil }

func (t *DynamicType) CreateColumn() MutableColumn { return NewDynamicColumn(t.maxTypes) }

func (t *DynamicType) DefaultSerialization() Serialization {
	return plainSerialization{name: t.Name()}
}

func (t *DynamicType) CanBeInsideNullable() bool { return false }
func (t *DynamicType) IsLowCardinality() bool    { return false }

// VariantInfo maps observed concrete-type names to global discriminators.
// Globals are assigned append-only in observation order and are never
// reassigned within the owning instance's lifetime.
type VariantInfo struct {
	nameToGlobal map[string]Discriminator
	names        []string // by global discriminator
}

// GlobalByName returns the global discriminator assigned to name.
func (vi *VariantInfo) GlobalByName(name string) (Discriminator, bool) {
	g, ok := vi.nameToGlobal[name]
	return g, ok
}

// NameByGlobal returns the type name holding global discriminator g.
func (vi *VariantInfo) NameByGlobal(g Discriminator) string { return vi.names[g] }

// Names returns the observed type names in global-discriminator order
// (shared slice, read-only by contract).
func (vi *VariantInfo) Names() []string { return vi.names }

// NumTypes returns the number of observed distinct types.
func (vi *VariantInfo) NumTypes() int { return len(vi.names) }

// DynamicColumn holds values of a Dynamic type: a variant storage plus the
// observed-type bookkeeping.
type DynamicColumn struct {
	maxTypes int
	info     VariantInfo
	variant  *VariantColumn
}

// NewDynamicColumn returns an empty Dynamic column bound to maxTypes
// distinct observed types.
func NewDynamicColumn(maxTypes int) *DynamicColumn {
	return &DynamicColumn{
		maxTypes: maxTypes,
		info:     VariantInfo{nameToGlobal: map[string]Discriminator{}},
		variant:  NewVariantColumn(),
	}
}

func (c *DynamicColumn) Len() int        { return c.variant.RowCount() }
func (c *DynamicColumn) Value(i int) any { return c.variant.Value(i) }

// Info returns the observed-type mapping (read-only by contract).
func (c *DynamicColumn) Info() *VariantInfo { return &c.info }

// Variant returns the underlying tagged-union storage (read-only by
// contract).
func (c *DynamicColumn) Variant() *VariantColumn { return c.variant }

// MaxTypes returns the declared distinct-type bound.
func (c *DynamicColumn) MaxTypes() int { return c.maxTypes }

// AppendNull appends a NULL row.
func (c *DynamicColumn) AppendNull() {
	c.variant.AppendNull()
}

// AppendDefault implements MutableColumn; the Dynamic default is NULL.
func (c *DynamicColumn) AppendDefault() { c.AppendNull() }

// Truncate drops rows from the end so Len() == n. Observed types keep
// their discriminators.
func (c *DynamicColumn) Truncate(n int) { c.variant.truncateRows(n) }

// AppendTyped appends v as a value of dt. Observing a new type beyond the
// declared bound fails with too_many_types.
func (c *DynamicColumn) AppendTyped(dt DataType, v any) error {
	name := dt.Name()
	if _, seen := c.info.nameToGlobal[name]; !seen {
		if len(c.info.names) >= c.maxTypes {
			return Issues{{
				Path:    name,
				Code:    CodeTooManyTypes,
				Message: "column already holds " + strconv.Itoa(c.maxTypes) + " distinct types",
				Params:  map[string]any{"max": c.maxTypes, "type": name},
			}}
		}
		if err := c.variant.Append(dt, v); err != nil {
			return err
		}
		g := Discriminator(len(c.info.names))
		c.info.nameToGlobal[name] = g
		c.info.names = append(c.info.names, name)
		return nil
	}
	return c.variant.Append(dt, v)
}

// Append appends v, inferring its concrete type from the Go value. nil
// appends a NULL row.
func (c *DynamicColumn) Append(v any) error {
	if v == nil {
		c.AppendNull()
		return nil
	}
	dt, err := inferType(v)
	if err != nil {
		return err
	}
	return c.AppendTyped(dt, v)
}

// GlobalToLocal translates a global discriminator into the variant
// storage's local one.
func (c *DynamicColumn) GlobalToLocal(g Discriminator) (Discriminator, bool) {
	return c.variant.LocalByName(c.info.names[g])
}

// SubcolumnByGlobal returns the sub-column holding the values of the type
// at global discriminator g.
func (c *DynamicColumn) SubcolumnByGlobal(g Discriminator) Column {
	local, ok := c.variant.LocalByName(c.info.names[g])
	if !ok {
		return nil
	}
	return c.variant.VariantByLocal(local)
}

// inferType maps a dynamically typed Go value onto a registered concrete
// type.
func inferType(v any) (DataType, error) {
	switch vv := v.(type) {
	case bool:
		return TypeBool, nil
	case string:
		return TypeString, nil
	case int, int8, int16, int32, int64:
		return TypeInt64, nil
	case uint, uint8, uint16, uint32, uint64:
		return TypeUInt64, nil
	case float32, float64:
		return TypeFloat64, nil
	case json.Number:
		if _, err := vv.Int64(); err == nil {
			return TypeInt64, nil
		}
		return TypeFloat64, nil
	}
	return nil, Issues{{Code: CodeInvalidType, Message: "cannot infer a concrete type", Params: map[string]any{"got": typeNameOf(v)}}}
}
