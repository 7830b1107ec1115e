package dyncol

// The views in this file are the lazy half of subcolumn materialization:
// they capture the instance's discriminator/offset arrays and the variant
// sub-column by reference and translate row indexes on access. Their
// validity is tied to the snapshot they were built from; the caller must
// not mutate the instance while a view is alive.

// variantSubcolumnView projects one variant's values onto the full row
// range. Rows of other types read as NULL when the subcolumn was resolved
// nullable, or as the resolved type's default otherwise.
type variantSubcolumnView struct {
	locals    []Discriminator
	offsets   []int
	sub       Column
	localDisc Discriminator
	nullable  bool
	def       any
}

func newVariantSubcolumnView(locals []Discriminator, offsets []int, sub Column, localDisc Discriminator, nullable bool, def any) Column {
	return &variantSubcolumnView{
		locals:    locals,
		offsets:   offsets,
		sub:       sub,
		localDisc: localDisc,
		nullable:  nullable,
		def:       def,
	}
}

func (v *variantSubcolumnView) Len() int { return len(v.locals) }

func (v *variantSubcolumnView) Value(i int) any {
	if v.locals[i] != v.localDisc {
		if v.nullable {
			return nil
		}
		return v.def
	}
	return v.sub.Value(v.offsets[i])
}

// variantNullMapView is the null-map pseudo-subcolumn of one variant: 1
// where the row is not of that type, 0 where it is.
type variantNullMapView struct {
	locals    []Discriminator
	localDisc Discriminator
}

func newVariantNullMapView(locals []Discriminator, localDisc Discriminator) Column {
	return &variantNullMapView{locals: locals, localDisc: localDisc}
}

func (v *variantNullMapView) Len() int { return len(v.locals) }

func (v *variantNullMapView) Value(i int) any {
	if v.locals[i] != v.localDisc {
		return uint8(1)
	}
	return uint8(0)
}
