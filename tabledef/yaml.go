// Package tabledef imports table definitions from YAML: column names mapped
// to declared type names, resolved through the dyncol type registry.
package tabledef

import (
	"bytes"

	"gopkg.in/yaml.v3"

	dyncol "github.com/varlake/dyncol"
)

// Table is a named set of typed columns.
type Table struct {
	Name    string   `yaml:"name"`
	Columns []Column `yaml:"columns"`
}

// Column declares one column. Type holds the declared name as written
// ("Int64", "Dynamic(max_types=8)", ...).
type Column struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	dt dyncol.DataType
}

// DataType returns the resolved type descriptor.
func (c *Column) DataType() dyncol.DataType { return c.dt }

// CreateColumn returns an empty column of the declared type.
func (c *Column) CreateColumn() dyncol.MutableColumn { return c.dt.CreateColumn() }

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Parse decodes a single-document YAML table definition and resolves every
// declared type against the default registry. Unknown fields are rejected.
func Parse(data []byte) (*Table, error) {
	return ParseWith(dyncol.DefaultRegistry(), data)
}

// ParseWith is Parse against an explicit registry.
func ParseWith(reg *dyncol.Registry, data []byte) (*Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, dyncol.Issues{{Code: dyncol.CodeParseError, Message: "invalid table definition YAML", Cause: err}}
	}
	var iss dyncol.Issues
	seen := map[string]bool{}
	for i := range t.Columns {
		c := &t.Columns[i]
		if c.Name == "" {
			iss = dyncol.AppendIssues(iss, dyncol.IssueAt(t.Name, dyncol.CodeParseError, "column without a name", nil))
			continue
		}
		if seen[c.Name] {
			iss = dyncol.AppendIssues(iss, dyncol.IssueAt(c.Name, dyncol.CodeParseError, "duplicate column name", nil))
			continue
		}
		seen[c.Name] = true
		dt, err := reg.Lookup(c.Type)
		if err != nil {
			if sub, ok := dyncol.AsIssues(err); ok {
				iss = dyncol.AppendIssues(iss, sub...)
			} else {
				iss = dyncol.AppendIssues(iss, dyncol.IssueAt(c.Name, dyncol.CodeParseError, err.Error(), nil))
			}
			continue
		}
		c.dt = dt
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return &t, nil
}
