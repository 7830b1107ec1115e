package dyncol

import "github.com/goccy/go-json"

// Serialization renders column values for the surrounding read/write
// framework. The in-memory engine only needs the JSON value form; binary
// stream layouts live outside this module.
type Serialization interface {
	// TypeName identifies the serialization for diagnostics.
	TypeName() string
	// EncodeJSON appends the JSON rendering of row i of col to dst.
	EncodeJSON(dst []byte, col Column, i int) ([]byte, error)
}

// plainSerialization is the default serialization shared by all concrete
// types: the row's logical value, JSON-encoded.
type plainSerialization struct {
	name string
}

func (s plainSerialization) TypeName() string { return s.name }

func (s plainSerialization) EncodeJSON(dst []byte, col Column, i int) ([]byte, error) {
	b, err := json.Marshal(col.Value(i))
	if err != nil {
		return dst, Issues{{Code: CodeParseError, Message: "encode failed", Cause: err}}
	}
	return append(dst, b...), nil
}

// DynamicElementSerialization tags a subcolumn serialization with the
// concrete type name it was resolved through and whether it is the null-map
// pseudo-subcolumn. Decoders need both to interpret raw bytes correctly.
type DynamicElementSerialization struct {
	Nested    Serialization
	Origin    string // concrete type name the path was resolved through
	IsNullMap bool
}

func (s *DynamicElementSerialization) TypeName() string { return s.Origin }

func (s *DynamicElementSerialization) EncodeJSON(dst []byte, col Column, i int) ([]byte, error) {
	return s.Nested.EncodeJSON(dst, col, i)
}
