package dyncol

import (
	"reflect"

	"github.com/varlake/dyncol/i18n"
)

// LowCardinalityColumn stores values dictionary-encoded: a unique-value
// dictionary plus per-row codes. Values must be hashable (scalars, strings,
// nil); the LowCardinality registry factory only admits such inner types.
type LowCardinalityColumn struct {
	dict    []any
	byValue map[any]int
	codes   []int
}

// NewLowCardinalityColumn returns an empty dictionary-encoded column.
func NewLowCardinalityColumn() *LowCardinalityColumn {
	return &LowCardinalityColumn{byValue: map[any]int{}}
}

func (c *LowCardinalityColumn) Len() int        { return len(c.codes) }
func (c *LowCardinalityColumn) Value(i int) any { return c.dict[c.codes[i]] }

func (c *LowCardinalityColumn) AppendDefault() { _ = c.Append(nil) }

func (c *LowCardinalityColumn) Append(v any) error {
	if v != nil && !reflect.TypeOf(v).Comparable() {
		return Issues{{Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected a hashable dictionary value", Params: map[string]any{"got": typeNameOf(v)}}}
	}
	code, ok := c.byValue[v]
	if !ok {
		code = len(c.dict)
		c.dict = append(c.dict, v)
		c.byValue[v] = code
	}
	c.codes = append(c.codes, code)
	return nil
}

// Truncate drops row codes from the end; dictionary entries are kept.
func (c *LowCardinalityColumn) Truncate(n int) { c.codes = c.codes[:n] }

// DictSize returns the number of distinct values observed.
func (c *LowCardinalityColumn) DictSize() int { return len(c.dict) }
