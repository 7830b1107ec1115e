package dyncol_test

import (
	"testing"

	dyncol "github.com/varlake/dyncol"
)

func encodeRow(t *testing.T, s dyncol.Serialization, c dyncol.Column, i int) string {
	t.Helper()
	b, err := s.EncodeJSON(nil, c, i)
	if err != nil {
		t.Fatalf("encode row %d: %v", i, err)
	}
	return string(b)
}

func TestSerialization_EncodeResolvedSubcolumn(t *testing.T) {
	dyn, col := fiveRowColumn(t)

	res, err := dyn.ResolveSubcolumn("Int64", dyncol.SubstreamData{Column: col}, dyncol.ResolveStrict)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	got := []string{}
	for i := 0; i < res.Column.Len(); i++ {
		got = append(got, encodeRow(t, res.Serialization, res.Column, i))
	}
	want := []string{"1", "null", "2", "null", "null"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %s, want %s", i, got[i], want[i])
		}
	}

	res, err = dyn.ResolveSubcolumn("String.null", dyncol.SubstreamData{Column: col}, dyncol.ResolveStrict)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s := encodeRow(t, res.Serialization, res.Column, 1); s != "0" {
		t.Fatalf("null-map row 1 = %s, want 0", s)
	}
	if s := encodeRow(t, res.Serialization, res.Column, 0); s != "1" {
		t.Fatalf("null-map row 0 = %s, want 1", s)
	}
}
