package dyncol

// NullableColumn wraps a nested column with a per-row null map. The nested
// column holds a default value at null rows so both stay the same length.
type NullableColumn struct {
	nested MutableColumn
	nulls  []uint8 // 1 where the row is NULL
}

// NewNullableColumn wraps nested, which must be empty.
func NewNullableColumn(nested MutableColumn) *NullableColumn {
	return &NullableColumn{nested: nested}
}

func (c *NullableColumn) Len() int { return len(c.nulls) }

func (c *NullableColumn) Value(i int) any {
	if c.nulls[i] == 1 {
		return nil
	}
	return c.nested.Value(i)
}

func (c *NullableColumn) AppendDefault() {
	c.nested.AppendDefault()
	c.nulls = append(c.nulls, 1)
}

func (c *NullableColumn) Append(v any) error {
	if v == nil {
		c.AppendDefault()
		return nil
	}
	if err := c.nested.Append(v); err != nil {
		return err
	}
	c.nulls = append(c.nulls, 0)
	return nil
}

func (c *NullableColumn) Truncate(n int) {
	c.nested.Truncate(n)
	c.nulls = c.nulls[:n]
}

// Nested returns the wrapped data column.
func (c *NullableColumn) Nested() Column { return c.nested }

// NullMap returns the per-row null indicator backing storage (shared, not a
// copy).
func (c *NullableColumn) NullMap() []uint8 { return c.nulls }
