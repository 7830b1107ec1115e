package dyncol

import "github.com/varlake/dyncol/i18n"

// BoolColumn holds boolean values.
type BoolColumn struct {
	data []bool
}

// NewBoolColumn returns an empty bool column.
func NewBoolColumn() *BoolColumn { return &BoolColumn{} }

func (c *BoolColumn) Len() int        { return len(c.data) }
func (c *BoolColumn) Value(i int) any { return c.data[i] }
func (c *BoolColumn) AppendDefault()  { c.data = append(c.data, false) }
func (c *BoolColumn) Truncate(n int)  { c.data = c.data[:n] }

func (c *BoolColumn) Append(v any) error {
	b, ok := v.(bool)
	if !ok {
		return Issues{{Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected a bool", Params: map[string]any{"got": typeNameOf(v)}}}
	}
	c.data = append(c.data, b)
	return nil
}
