package dyncol_test

import (
	"testing"

	dyncol "github.com/varlake/dyncol"
)

func TestLookup_Parameterized(t *testing.T) {
	cases := []struct {
		decl string
		name string
	}{
		{"Int64", "Int64"},
		{"Nullable(Int64)", "Nullable(Int64)"},
		{"LowCardinality(Nullable(String))", "LowCardinality(Nullable(String))"},
		{"Array(Nullable(Float64))", "Array(Nullable(Float64))"},
		{"Dynamic(max_types=42)", "Dynamic(max_types=42)"},
	}
	for _, tc := range cases {
		dt, err := dyncol.Lookup(tc.decl)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tc.decl, err)
		}
		if dt.Name() != tc.name {
			t.Fatalf("Lookup(%q).Name() = %q, want %q", tc.decl, dt.Name(), tc.name)
		}
	}
}

func TestLookup_Errors(t *testing.T) {
	cases := []struct {
		decl string
		code string
	}{
		{"NoSuchType", dyncol.CodeUnknownType},
		{"Nullable(NoSuchType)", dyncol.CodeUnknownType},
		{"Nullable(Array(Int64))", dyncol.CodeBadArgument}, // Array cannot be inside Nullable
		{"Nullable(Nullable(Int64))", dyncol.CodeBadArgument},
		{"LowCardinality(Array(Int64))", dyncol.CodeBadArgument}, // no hashable dictionary form
		{"LowCardinality(Dynamic)", dyncol.CodeBadArgument},
		{"LowCardinality(LowCardinality(String))", dyncol.CodeBadArgument},
		{"Nullable", dyncol.CodeBadArity},
		{"Int64(8)", dyncol.CodeBadArity},
		{"Array(Int64", dyncol.CodeParseError},
	}
	for _, tc := range cases {
		_, err := dyncol.Lookup(tc.decl)
		if err == nil {
			t.Fatalf("Lookup(%q) succeeded", tc.decl)
		}
		iss, ok := dyncol.AsIssues(err)
		if !ok || iss[0].Code != tc.code {
			t.Fatalf("Lookup(%q) = %v, want code %s", tc.decl, err, tc.code)
		}
	}
}

func TestTryLookup(t *testing.T) {
	if _, ok := dyncol.TryLookup("String"); !ok {
		t.Fatalf("TryLookup(String) failed")
	}
	if dt, ok := dyncol.TryLookup("Whatever"); ok || dt != nil {
		t.Fatalf("TryLookup(Whatever) = %v, %v", dt, ok)
	}
}

func TestRegistry_Custom(t *testing.T) {
	reg := dyncol.NewRegistry()
	reg.Register("Int64", func(args string) (dyncol.DataType, error) { return dyncol.TypeInt64, nil })
	if _, err := reg.Lookup("Int64"); err != nil {
		t.Fatalf("custom registry lookup: %v", err)
	}
	if _, err := reg.Lookup("String"); err == nil {
		t.Fatalf("custom registry should not know String")
	}
}
