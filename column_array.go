package dyncol

import "github.com/varlake/dyncol/i18n"

// ArrayColumn stores arrays as a flat nested column plus cumulative offsets.
type ArrayColumn struct {
	nested  MutableColumn
	offsets []int // offsets[i] = end of row i in nested
}

// NewArrayColumn wraps nested, which must be empty.
func NewArrayColumn(nested MutableColumn) *ArrayColumn {
	return &ArrayColumn{nested: nested}
}

func (c *ArrayColumn) Len() int { return len(c.offsets) }

func (c *ArrayColumn) Value(i int) any {
	lo := 0
	if i > 0 {
		lo = c.offsets[i-1]
	}
	hi := c.offsets[i]
	out := make([]any, 0, hi-lo)
	for j := lo; j < hi; j++ {
		out = append(out, c.nested.Value(j))
	}
	return out
}

func (c *ArrayColumn) AppendDefault() {
	c.offsets = append(c.offsets, c.nested.Len())
}

// Append accepts a []any and appends its elements to the nested column. A
// failed element append rolls the nested column back, so the column is
// unchanged on error.
func (c *ArrayColumn) Append(v any) error {
	elems, ok := v.([]any)
	if !ok {
		return Issues{{Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected a []any", Params: map[string]any{"got": typeNameOf(v)}}}
	}
	start := c.nested.Len()
	for _, e := range elems {
		if err := c.nested.Append(e); err != nil {
			c.nested.Truncate(start)
			return err
		}
	}
	c.offsets = append(c.offsets, c.nested.Len())
	return nil
}

func (c *ArrayColumn) Truncate(n int) {
	end := 0
	if n > 0 {
		end = c.offsets[n-1]
	}
	c.nested.Truncate(end)
	c.offsets = c.offsets[:n]
}

// Sizes returns a lazy column of per-row array lengths backed by the shared
// offsets slice.
func (c *ArrayColumn) Sizes() Column { return arraySizesView{offsets: c.offsets} }

type arraySizesView struct {
	offsets []int
}

func (v arraySizesView) Len() int { return len(v.offsets) }

func (v arraySizesView) Value(i int) any {
	lo := 0
	if i > 0 {
		lo = v.offsets[i-1]
	}
	return uint64(v.offsets[i] - lo)
}
