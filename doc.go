// Package dyncol implements a self-describing "Dynamic" column type for a
// columnar engine:
//
//   - A tagged-union (Variant) storage model keyed by one-byte discriminators
//   - A type registry resolving declared names (Int64, Nullable(String), ...)
//   - Subcolumn resolution: "<type>.<nested>" paths and the reserved "null"
//     null-map pseudo-subcolumn, against metadata alone or a live column
//   - A stable error model via Issues (path, code, message)
//
// Design policy:
//   - Keep only public APIs in the root package.
//   - Place schema-file import under tabledef/, JSON ingestion under
//     source/gojson, and the CLI under cmd/dyncol.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	dt, err := dyncol.Lookup("Dynamic(max_types=8)")
//	col := dt.CreateColumn().(*dyncol.DynamicColumn)
//	_ = col.Append(int64(42))
//
//	res, err := dt.(*dyncol.DynamicType).ResolveSubcolumn(
//	    "Int64.null", dyncol.SubstreamData{Column: col}, dyncol.ResolveStrict)
package dyncol
