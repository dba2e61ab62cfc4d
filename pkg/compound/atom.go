// Package compound wraps raw PC_Compounds records as structured, read-only
// views.  A Compound owns derived Atom and Bond maps rebuilt from the record
// on assignment, exposes the record's flat property list through typed
// accessors, and lazily fetches synonym and cross-reference lists through a
// bound client.
package compound

import (
	"github.com/turtacn/pubchem-go/pkg/chem"
)

// Atom is one atom of a compound record.
type Atom struct {
	// AID is the atom identifier, unique within the owning compound.
	AID int

	// Number is the atomic number.
	Number int

	// X, Y and Z are the conformer coordinates.  Z is nil in 2-D records.
	X *float64
	Y *float64
	Z *float64

	// Charge is the formal charge, zero unless the record says otherwise.
	Charge int
}

// Element returns the element symbol for the atom's atomic number, or ""
// when the number is not in the periodic table.
func (a *Atom) Element() string {
	return chem.ElementSymbol(a.Number)
}

// CoordinateType reports "2d" or "3d" depending on whether a z coordinate
// is present.
func (a *Atom) CoordinateType() string {
	if a.Z == nil {
		return "2d"
	}
	return "3d"
}

// SetCoordinates replaces all coordinate dimensions at once.  Pass a nil z
// for 2-D coordinates.
func (a *Atom) SetCoordinates(x, y float64, z *float64) {
	a.X = &x
	a.Y = &y
	a.Z = z
}

// Equal reports whether two atoms have the same identifier, element,
// coordinates and charge.
func (a *Atom) Equal(other *Atom) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.AID == other.AID && a.Number == other.Number &&
		floatPtrEqual(a.X, other.X) && floatPtrEqual(a.Y, other.Y) && floatPtrEqual(a.Z, other.Z) &&
		a.Charge == other.Charge
}

// ToMap renders the atom as a generic map.  Absent coordinates and a zero
// charge are omitted.
func (a *Atom) ToMap() map[string]interface{} {
	data := map[string]interface{}{
		"aid":     a.AID,
		"number":  a.Number,
		"element": a.Element(),
	}
	if a.X != nil {
		data["x"] = *a.X
	}
	if a.Y != nil {
		data["y"] = *a.Y
	}
	if a.Z != nil {
		data["z"] = *a.Z
	}
	if a.Charge != 0 {
		data["charge"] = a.Charge
	}
	return data
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
