package dyncol_test

import (
	"testing"

	dyncol "github.com/varlake/dyncol"
)

// Globals follow observation order while locals follow the storage's
// name-sorted layout, so observing types out of name order makes the two
// diverge.
func TestVariant_GlobalVersusLocal(t *testing.T) {
	col := dyncol.NewDynamicColumn(4)
	if err := col.Append("s"); err != nil { // String observed first
		t.Fatalf("append: %v", err)
	}
	if err := col.Append(1.5); err != nil { // Float64 observed second
		t.Fatalf("append: %v", err)
	}

	gString, ok := col.Info().GlobalByName("String")
	if !ok || gString != 0 {
		t.Fatalf("String global = %d (%v), want 0", gString, ok)
	}
	gFloat, ok := col.Info().GlobalByName("Float64")
	if !ok || gFloat != 1 {
		t.Fatalf("Float64 global = %d (%v), want 1", gFloat, ok)
	}

	// Storage sorts by name: Float64 before String.
	lString, ok := col.GlobalToLocal(gString)
	if !ok || lString != 1 {
		t.Fatalf("String local = %d (%v), want 1", lString, ok)
	}
	lFloat, ok := col.GlobalToLocal(gFloat)
	if !ok || lFloat != 0 {
		t.Fatalf("Float64 local = %d (%v), want 0", lFloat, ok)
	}
}

// Adding a variant that sorts before existing ones shifts their locals; the
// per-row discriminator array must stay consistent.
func TestVariant_LocalShiftOnInsert(t *testing.T) {
	col := dyncol.NewDynamicColumn(4)
	for _, v := range []any{"a", "b", int64(1), "c"} {
		if err := col.Append(v); err != nil {
			t.Fatalf("append %v: %v", v, err)
		}
	}
	// Int64 sorted before String; String rows were remapped.
	want := []any{"a", "b", int64(1), "c"}
	for i, w := range want {
		if got := col.Value(i); got != w {
			t.Fatalf("row %d = %v, want %v", i, got, w)
		}
	}
	v := col.Variant()
	if v.NumVariants() != 2 {
		t.Fatalf("variants = %d", v.NumVariants())
	}
	lInt, _ := v.LocalByName("Int64")
	lStr, _ := v.LocalByName("String")
	if lInt != 0 || lStr != 1 {
		t.Fatalf("locals: Int64=%d String=%d, want 0/1", lInt, lStr)
	}
	wantLocals := []dyncol.Discriminator{1, 1, 0, 1}
	for i, w := range wantLocals {
		if got := v.LocalDiscriminators()[i]; got != w {
			t.Fatalf("local[%d] = %d, want %d", i, got, w)
		}
	}
}

func TestVariant_NullRows(t *testing.T) {
	col := dyncol.NewDynamicColumn(2)
	col.AppendNull()
	if err := col.Append(int64(3)); err != nil {
		t.Fatalf("append: %v", err)
	}
	col.AppendDefault() // Dynamic default is NULL

	v := col.Variant()
	if v.RowCount() != 3 {
		t.Fatalf("rows = %d", v.RowCount())
	}
	locals := v.LocalDiscriminators()
	if locals[0] != dyncol.NullDiscriminator || locals[2] != dyncol.NullDiscriminator {
		t.Fatalf("NULL rows not marked: %v", locals)
	}
	if col.Value(0) != nil || col.Value(1) != int64(3) || col.Value(2) != nil {
		t.Fatalf("values = %v %v %v", col.Value(0), col.Value(1), col.Value(2))
	}
}
