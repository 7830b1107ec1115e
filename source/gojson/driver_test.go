package gojson_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	dyncol "github.com/varlake/dyncol"
	gojson "github.com/varlake/dyncol/source/gojson"
)

func values(c dyncol.Column) []any {
	out := make([]any, c.Len())
	for i := range out {
		out[i] = c.Value(i)
	}
	return out
}

func TestAppendRows_Inference(t *testing.T) {
	col := dyncol.NewDynamicColumn(8)
	err := gojson.AppendRows(col, []byte(`[1, "a", 2.5, null, true, 9]`))
	if err != nil {
		t.Fatalf("append rows: %v", err)
	}
	want := []any{int64(1), "a", 2.5, nil, true, int64(9)}
	if diff := cmp.Diff(want, values(col)); diff != "" {
		t.Fatalf("values (-want +got):\n%s", diff)
	}
	names := col.Info().Names()
	wantNames := []string{"Int64", "String", "Float64", "Bool"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Fatalf("observed types (-want +got):\n%s", diff)
	}
}

func TestAppendRows_Arrays(t *testing.T) {
	col := dyncol.NewDynamicColumn(8)
	err := gojson.AppendRows(col, []byte(`[[1, 2, 3], ["x"], [1, 2.5], [1, null]]`))
	if err != nil {
		t.Fatalf("append rows: %v", err)
	}
	names := col.Info().Names()
	wantNames := []string{"Array(Int64)", "Array(String)", "Array(Float64)", "Array(Nullable(Int64))"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Fatalf("observed types (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{int64(1), int64(2), int64(3)}, col.Value(0)); diff != "" {
		t.Fatalf("row 0 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{int64(1), nil}, col.Value(3)); diff != "" {
		t.Fatalf("row 3 (-want +got):\n%s", diff)
	}
}

func TestAppendRows_Rejections(t *testing.T) {
	col := dyncol.NewDynamicColumn(8)
	if err := gojson.AppendRows(col, []byte(`{"not": "array"}`)); err == nil {
		t.Fatalf("expected parse_error for non-array input")
	}
	if err := gojson.AppendRows(col, []byte(`[{"a": 1}]`)); err == nil {
		t.Fatalf("expected invalid_type for object row")
	}
	if err := gojson.AppendRows(col, []byte(`[["a", 1]]`)); err == nil {
		t.Fatalf("expected invalid_type for mixed array")
	}
	if err := gojson.AppendRows(col, []byte(`[[[1]]]`)); err == nil {
		t.Fatalf("expected invalid_type for nested array")
	}
}

func TestAppendAll_Stream(t *testing.T) {
	col := dyncol.NewDynamicColumn(4)
	err := gojson.AppendAll(col, strings.NewReader("1\n\"two\"\nnull\n"))
	if err != nil {
		t.Fatalf("append all: %v", err)
	}
	want := []any{int64(1), "two", nil}
	if diff := cmp.Diff(want, values(col)); diff != "" {
		t.Fatalf("values (-want +got):\n%s", diff)
	}
}

func TestIngestThenResolve(t *testing.T) {
	dt, err := dyncol.Lookup("Dynamic(max_types=3)")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	dyn := dt.(*dyncol.DynamicType)
	col := dyn.CreateColumn().(*dyncol.DynamicColumn)
	if err := gojson.AppendRows(col, []byte(`[1, "a", 2, null, "b"]`)); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	res, err := dyn.ResolveSubcolumn("Int64", dyncol.SubstreamData{Column: col}, dyncol.ResolveStrict)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []any{int64(1), nil, int64(2), nil, nil}
	if diff := cmp.Diff(want, values(res.Column)); diff != "" {
		t.Fatalf("Int64 (-want +got):\n%s", diff)
	}
}
