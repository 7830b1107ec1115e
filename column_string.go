package dyncol

import "github.com/varlake/dyncol/i18n"

// StringColumn holds variable-length string values.
type StringColumn struct {
	data []string
}

// NewStringColumn returns an empty string column.
func NewStringColumn() *StringColumn { return &StringColumn{} }

// StringColumnOf returns a string column holding vs.
func StringColumnOf(vs ...string) *StringColumn { return &StringColumn{data: vs} }

func (c *StringColumn) Len() int        { return len(c.data) }
func (c *StringColumn) Value(i int) any { return c.data[i] }
func (c *StringColumn) AppendDefault()  { c.data = append(c.data, "") }
func (c *StringColumn) Truncate(n int)  { c.data = c.data[:n] }
func (c *StringColumn) Data() []string  { return c.data }

func (c *StringColumn) Append(v any) error {
	s, ok := v.(string)
	if !ok {
		return Issues{{Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected a string", Params: map[string]any{"got": typeNameOf(v)}}}
	}
	c.data = append(c.data, s)
	return nil
}
