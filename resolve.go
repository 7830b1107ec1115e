package dyncol

// materializeBranch names the four relationships between the requested
// type and what the instance actually contains. Keeping the decision as an
// explicit tag keeps the branches independently testable.
type materializeBranch int

const (
	branchRemapData    materializeBranch = iota // type observed, data subcolumn
	branchRemapNullMap                          // type observed, null-map subcolumn
	branchFillDefault                           // type never observed, data subcolumn
	branchFillNullMap                           // type never observed, null-map subcolumn
)

func pickBranch(observed, isNullMap bool) materializeBranch {
	switch {
	case observed && isNullMap:
		return branchRemapNullMap
	case observed:
		return branchRemapData
	case isNullMap:
		return branchFillNullMap
	default:
		return branchFillDefault
	}
}

// ResolveSubcolumn resolves a dotted subcolumn path against this Dynamic
// type. The first path segment must name a registered concrete type; the
// reserved tail "null" selects the null-map pseudo-subcolumn and is
// terminal. When data.Column carries a *DynamicColumn instance, the result
// includes materialized column data of the same length; otherwise the
// result is type and serialization only.
//
// Under ResolveSoft an unknown head type yields (nil, nil); under
// ResolveStrict it fails with unknown_subcolumn. Errors from nested
// resolvers propagate unchanged in either mode.
func (t *DynamicType) ResolveSubcolumn(path string, data SubstreamData, mode ResolveMode) (*SubstreamData, error) {
	head, tail := SplitName(path)

	subType, ok := TryLookup(head)
	if !ok {
		if mode == ResolveStrict {
			return nil, Issues{{
				Path:    path,
				Code:    CodeUnknownSubcolumn,
				Message: "Dynamic type doesn't have subcolumn '" + head + "'",
			}}
		}
		return nil, nil
	}

	res := &SubstreamData{Type: subType, Serialization: subType.DefaultSerialization()}

	// When an instance was supplied, find the variant sub-column of the
	// requested type, if the instance ever observed it.
	var dyn *DynamicColumn
	var global *Discriminator
	if data.Column != nil {
		dc, isDyn := data.Column.(*DynamicColumn)
		if !isDyn {
			return nil, Issues{{
				Path:    path,
				Code:    CodeInvalidType,
				Message: "column is not Dynamic",
				Params:  map[string]any{"got": typeNameOf(data.Column)},
			}}
		}
		dyn = dc
		if g, seen := dyn.Info().GlobalByName(subType.Name()); seen {
			global = &g
			res.Column = dyn.SubcolumnByGlobal(g)
		}
	}

	// The null map is handled apart from nested descent: there is no
	// Nullable(Dynamic) type, and "null" is terminal. A tail that merely
	// starts with "null." is not the null map and goes through the nested
	// resolver like any other path (which rejects it).
	isNullMap := tail == "null"
	switch {
	case isNullMap:
		res.Type = TypeUInt8
	case tail != "":
		nested, hasNested := subType.(SubcolumnResolver)
		if !hasNested {
			if mode == ResolveStrict {
				return nil, Issues{{
					Path:    path,
					Code:    CodeUnknownSubcolumn,
					Message: subType.Name() + " has no subcolumn '" + tail + "'",
				}}
			}
			return nil, nil
		}
		nestedRes, err := nested.ResolveSubcolumn(tail, *res, mode)
		if err != nil || nestedRes == nil {
			return nil, err
		}
		res = nestedRes
	}

	res.Serialization = &DynamicElementSerialization{
		Nested:    res.Serialization,
		Origin:    subType.Name(),
		IsNullMap: isNullMap,
	}

	// Nullability policy, evaluated once on the resolved (possibly nested)
	// type. The null map itself is never wrapped.
	makeNullable := res.Type.CanBeInsideNullable() || res.Type.IsLowCardinality()
	if !isNullMap && makeNullable {
		res.Type = MakeNullableOrLowCardinalityNullableSafe(res.Type)
	}

	if data.Column == nil {
		return res, nil
	}
	materializeSubcolumn(res, dyn, global, isNullMap, makeNullable)
	return res, nil
}

// materializeSubcolumn fills res.Column for the supplied instance. Cannot
// fail: resolution already validated everything the branches rely on.
func materializeSubcolumn(res *SubstreamData, dyn *DynamicColumn, global *Discriminator, isNullMap, makeNullable bool) {
	variant := dyn.Variant()
	switch pickBranch(global != nil, isNullMap) {
	case branchRemapNullMap:
		local, _ := dyn.GlobalToLocal(*global)
		res.Column = newVariantNullMapView(variant.LocalDiscriminators(), local)
	case branchRemapData:
		local, _ := dyn.GlobalToLocal(*global)
		res.Column = newVariantSubcolumnView(
			variant.LocalDiscriminators(),
			variant.Offsets(),
			res.Column,
			local,
			makeNullable,
			res.Type.Default(),
		)
	case branchFillNullMap:
		// Never observed: every row is "not this type".
		ones := NewNumericColumn[uint8]()
		ones.Resize(variant.RowCount(), 1)
		res.Column = ones
	case branchFillDefault:
		col := res.Type.CreateColumn()
		for i := 0; i < variant.RowCount(); i++ {
			col.AppendDefault()
		}
		res.Column = col
	}
}
