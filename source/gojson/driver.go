// Package gojson ingests JSON values into Dynamic columns using
// goccy/go-json, inferring a concrete type for every value.
package gojson

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"

	dyncol "github.com/varlake/dyncol"
)

// AppendRows decodes a JSON array and appends one row per element to col.
// Numbers are kept as json.Number so integral values land in Int64 rather
// than Float64.
func AppendRows(col *dyncol.DynamicColumn, data []byte) error {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rows []any
	if err := dec.Decode(&rows); err != nil {
		return dyncol.Issues{{Code: dyncol.CodeParseError, Message: "rows must be a JSON array", Cause: err}}
	}
	for i, v := range rows {
		if err := appendDecoded(col, v); err != nil {
			if iss, ok := dyncol.AsIssues(err); ok && len(iss) > 0 {
				iss[0].Params = withRow(iss[0].Params, i)
				return iss
			}
			return err
		}
	}
	return nil
}

// AppendValue decodes a single JSON value and appends it to col.
func AppendValue(col *dyncol.DynamicColumn, data []byte) error {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return dyncol.Issues{{Code: dyncol.CodeParseError, Message: "invalid JSON value", Cause: err}}
	}
	return appendDecoded(col, v)
}

// AppendAll reads whitespace-separated JSON values from r until EOF,
// appending each as one row.
func AppendAll(col *dyncol.DynamicColumn, r io.Reader) error {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	for i := 0; ; i++ {
		var v any
		if err := dec.Decode(&v); err != nil {
			if err == io.EOF {
				return nil
			}
			return dyncol.Issues{{Code: dyncol.CodeParseError, Message: "invalid JSON value", Cause: err, Params: map[string]any{"row": i}}}
		}
		if err := appendDecoded(col, v); err != nil {
			return err
		}
	}
}

func appendDecoded(col *dyncol.DynamicColumn, v any) error {
	switch vv := v.(type) {
	case nil:
		col.AppendNull()
		return nil
	case bool, string, j.Number:
		return col.Append(vv)
	case []any:
		elem, err := inferElemType(vv)
		if err != nil {
			return err
		}
		return col.AppendTyped(dyncol.NewArray(elem), vv)
	}
	return dyncol.Issues{{Code: dyncol.CodeInvalidType, Message: "JSON objects are not supported in Dynamic columns"}}
}

// inferElemType picks a single element type for a JSON array. Mixing
// integers and floats widens to Float64; a null element makes the type
// Nullable; any other mix is rejected.
func inferElemType(elems []any) (dyncol.DataType, error) {
	const (
		kindNone = iota
		kindBool
		kindInt
		kindFloat
		kindString
	)
	kind := kindNone
	sawNull := false
	for _, e := range elems {
		var k int
		switch ev := e.(type) {
		case nil:
			sawNull = true
			continue
		case bool:
			k = kindBool
		case string:
			k = kindString
		case j.Number:
			if _, err := ev.Int64(); err == nil {
				k = kindInt
			} else {
				k = kindFloat
			}
		default:
			return nil, dyncol.Issues{{Code: dyncol.CodeInvalidType, Message: "nested arrays and objects are not supported", Params: map[string]any{"got": ev}}}
		}
		switch {
		case kind == kindNone:
			kind = k
		case kind == k:
		case kind == kindInt && k == kindFloat, kind == kindFloat && k == kindInt:
			kind = kindFloat
		default:
			return nil, dyncol.Issues{{Code: dyncol.CodeInvalidType, Message: "array elements have mixed types"}}
		}
	}
	var elem dyncol.DataType
	switch kind {
	case kindBool:
		elem = dyncol.TypeBool
	case kindInt:
		elem = dyncol.TypeInt64
	case kindFloat:
		elem = dyncol.TypeFloat64
	case kindString, kindNone:
		elem = dyncol.TypeString
	}
	if sawNull {
		elem = dyncol.NewNullable(elem)
	}
	return elem, nil
}

func withRow(params map[string]any, row int) map[string]any {
	if params == nil {
		params = map[string]any{}
	}
	params["row"] = row
	return params
}
