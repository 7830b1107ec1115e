package main

import (
	"flag"
	"fmt"
	"os"

	dyncol "github.com/varlake/dyncol"
	gojson "github.com/varlake/dyncol/source/gojson"
	"github.com/varlake/dyncol/tabledef"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	case "inspect":
		inspectCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "dyncol CLI\n\nUsage:\n  dyncol check -schema table.yaml\n  dyncol inspect -schema table.yaml -column NAME -rows rows.json -sub PATH\n\nNotes:\n  - rows.json is a JSON array; each element becomes one row of the Dynamic column.\n  - PATH is a subcolumn path such as 'Int64' or 'Int64.null'.")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var schema string
	fs.StringVar(&schema, "schema", "", "table definition YAML")
	_ = fs.Parse(args)
	if schema == "" {
		fs.Usage()
		os.Exit(2)
	}
	t := loadTable(schema)
	for _, c := range t.Columns {
		fmt.Printf("%s\t%s\n", c.Name, c.DataType().Name())
	}
}

func inspectCmd(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	var schema, column, rows, sub string
	fs.StringVar(&schema, "schema", "", "table definition YAML")
	fs.StringVar(&column, "column", "", "column name in the table definition")
	fs.StringVar(&rows, "rows", "", "JSON array of row values")
	fs.StringVar(&sub, "sub", "", "subcolumn path to resolve")
	_ = fs.Parse(args)
	if schema == "" || column == "" || rows == "" || sub == "" {
		fs.Usage()
		os.Exit(2)
	}

	t := loadTable(schema)
	c, ok := t.Column(column)
	if !ok {
		fatalf("no column %q in table %q", column, t.Name)
	}
	dt, ok := c.DataType().(*dyncol.DynamicType)
	if !ok {
		fatalf("column %q is %s, not Dynamic", column, c.DataType().Name())
	}

	data, err := os.ReadFile(rows)
	if err != nil {
		fatalf("read rows: %v", err)
	}
	col := dt.CreateColumn().(*dyncol.DynamicColumn)
	if err := gojson.AppendRows(col, data); err != nil {
		fatalf("ingest rows: %v", err)
	}

	res, err := dt.ResolveSubcolumn(sub, dyncol.SubstreamData{Column: col}, dyncol.ResolveStrict)
	if err != nil {
		fatalf("resolve %q: %v", sub, err)
	}
	fmt.Printf("type: %s\n", res.Type.Name())
	var buf []byte
	for i := 0; i < res.Column.Len(); i++ {
		buf = buf[:0]
		buf, err = res.Serialization.EncodeJSON(buf, res.Column, i)
		if err != nil {
			fatalf("encode row %d: %v", i, err)
		}
		fmt.Printf("%d\t%s\n", i, buf)
	}
}

func loadTable(path string) *tabledef.Table {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("read schema: %v", err)
	}
	t, err := tabledef.Parse(data)
	if err != nil {
		fatalf("parse schema: %v", err)
	}
	return t
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
