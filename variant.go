package dyncol

import "sort"

// Discriminator is a one-byte type tag within a Variant column.
type Discriminator = uint8

const (
	// MaxVariants is how many distinct variants a one-byte local
	// discriminator can address. Changing it requires changing the
	// discriminator encoding itself.
	MaxVariants = 255
	// NullDiscriminator marks a NULL row in the discriminator array.
	NullDiscriminator Discriminator = 255
)

// VariantColumn is the tagged-union storage backing a DynamicColumn. Each
// row carries a local discriminator selecting one of the sub-columns (or
// NullDiscriminator) plus an offset into that sub-column. Sub-columns are
// kept sorted by type name, so local discriminators are private to one
// instance and may shift when a new variant is added.
type VariantColumn struct {
	names    []string // sorted; index is the local discriminator
	byName   map[string]int
	types    []DataType      // by local discriminator
	variants []MutableColumn // by local discriminator
	locals   []Discriminator // per row
	offsets  []int           // per row, position within the row's sub-column
}

// NewVariantColumn returns an empty variant column.
func NewVariantColumn() *VariantColumn {
	return &VariantColumn{byName: map[string]int{}}
}

// RowCount returns the number of rows.
func (c *VariantColumn) RowCount() int { return len(c.locals) }

// NumVariants returns the number of distinct sub-columns.
func (c *VariantColumn) NumVariants() int { return len(c.variants) }

// LocalDiscriminators returns the per-row discriminator array. The slice is
// the shared backing storage, not a copy.
func (c *VariantColumn) LocalDiscriminators() []Discriminator { return c.locals }

// Offsets returns the per-row offsets into the sub-columns (shared, not a
// copy). The value at NULL rows is meaningless.
func (c *VariantColumn) Offsets() []int { return c.offsets }

// LocalByName returns the local discriminator of the named variant.
func (c *VariantColumn) LocalByName(name string) (Discriminator, bool) {
	i, ok := c.byName[name]
	if !ok {
		return 0, false
	}
	return Discriminator(i), true
}

// VariantByLocal returns the sub-column at local discriminator d.
func (c *VariantColumn) VariantByLocal(d Discriminator) Column { return c.variants[d] }

// VariantTypeByLocal returns the type of the sub-column at d.
func (c *VariantColumn) VariantTypeByLocal(d Discriminator) DataType { return c.types[d] }

// AppendNull appends a NULL row.
func (c *VariantColumn) AppendNull() {
	c.locals = append(c.locals, NullDiscriminator)
	c.offsets = append(c.offsets, 0)
}

// Append appends v as a value of dt, adding a sub-column for dt when this
// is the first value of that type.
func (c *VariantColumn) Append(dt DataType, v any) error {
	name := dt.Name()
	i, ok := c.byName[name]
	if !ok {
		var err error
		i, err = c.addVariant(dt)
		if err != nil {
			return err
		}
	}
	sub := c.variants[i]
	if err := sub.Append(v); err != nil {
		return err
	}
	c.locals = append(c.locals, Discriminator(i))
	c.offsets = append(c.offsets, sub.Len()-1)
	return nil
}

// addVariant inserts an empty sub-column for dt at its name-sorted position
// and shifts the local discriminators of the variants after it.
func (c *VariantColumn) addVariant(dt DataType) (int, error) {
	if len(c.variants) >= MaxVariants {
		return 0, Issues{{Path: dt.Name(), Code: CodeTooManyTypes, Message: "variant column is full", Params: map[string]any{"max": MaxVariants}}}
	}
	name := dt.Name()
	pos := sort.SearchStrings(c.names, name)

	c.names = append(c.names, "")
	copy(c.names[pos+1:], c.names[pos:])
	c.names[pos] = name

	c.types = append(c.types, nil)
	copy(c.types[pos+1:], c.types[pos:])
	c.types[pos] = dt

	col := dt.CreateColumn()
	c.variants = append(c.variants, nil)
	copy(c.variants[pos+1:], c.variants[pos:])
	c.variants[pos] = col

	for n, i := range c.byName {
		if i >= pos {
			c.byName[n] = i + 1
		}
	}
	c.byName[name] = pos

	if pos < len(c.variants)-1 {
		for r, d := range c.locals {
			if d != NullDiscriminator && int(d) >= pos {
				c.locals[r] = d + 1
			}
		}
	}
	return pos, nil
}

// truncateRows drops rows from the end so RowCount() == n. Values already
// written to sub-columns are left in place; no surviving row references
// them.
func (c *VariantColumn) truncateRows(n int) {
	c.locals = c.locals[:n]
	c.offsets = c.offsets[:n]
}

// Value returns the logical value at row i, nil for NULL rows.
func (c *VariantColumn) Value(i int) any {
	d := c.locals[i]
	if d == NullDiscriminator {
		return nil
	}
	return c.variants[d].Value(c.offsets[i])
}

// Len implements Column.
func (c *VariantColumn) Len() int { return len(c.locals) }
