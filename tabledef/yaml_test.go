package tabledef_test

import (
	"testing"

	dyncol "github.com/varlake/dyncol"
	"github.com/varlake/dyncol/tabledef"
)

const eventsYAML = `
name: events
columns:
  - name: id
    type: Int64
  - name: tag
    type: LowCardinality(String)
  - name: payload
    type: Dynamic(max_types=8)
`

func TestParse_ResolvesTypes(t *testing.T) {
	tab, err := tabledef.Parse([]byte(eventsYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tab.Name != "events" || len(tab.Columns) != 3 {
		t.Fatalf("table = %q with %d columns", tab.Name, len(tab.Columns))
	}
	c, ok := tab.Column("payload")
	if !ok {
		t.Fatalf("payload column missing")
	}
	dyn, ok := c.DataType().(*dyncol.DynamicType)
	if !ok {
		t.Fatalf("payload resolved to %T", c.DataType())
	}
	if dyn.MaxTypes() != 8 {
		t.Fatalf("max_types = %d", dyn.MaxTypes())
	}
	if c.CreateColumn().Len() != 0 {
		t.Fatalf("fresh column not empty")
	}
}

func TestParse_UnknownType(t *testing.T) {
	_, err := tabledef.Parse([]byte("name: t\ncolumns:\n  - name: a\n    type: Wat\n"))
	if err == nil {
		t.Fatalf("expected unknown_type")
	}
	iss, ok := dyncol.AsIssues(err)
	if !ok || iss[0].Code != dyncol.CodeUnknownType {
		t.Fatalf("error = %v", err)
	}
}

func TestParse_BadDynamicBound(t *testing.T) {
	_, err := tabledef.Parse([]byte("name: t\ncolumns:\n  - name: a\n    type: Dynamic(max_types=256)\n"))
	iss, ok := dyncol.AsIssues(err)
	if !ok || iss[0].Code != dyncol.CodeOutOfRange {
		t.Fatalf("error = %v", err)
	}
}

func TestParse_DuplicateColumn(t *testing.T) {
	_, err := tabledef.Parse([]byte("name: t\ncolumns:\n  - name: a\n    type: Int64\n  - name: a\n    type: String\n"))
	iss, ok := dyncol.AsIssues(err)
	if !ok || iss[0].Code != dyncol.CodeParseError {
		t.Fatalf("error = %v", err)
	}
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := tabledef.Parse([]byte("name: t\nowner: me\ncolumns: []\n"))
	if err == nil {
		t.Fatalf("expected unknown-field rejection")
	}
}
