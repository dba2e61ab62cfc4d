package compound

import (
	"github.com/turtacn/pubchem-go/pkg/chem"
)

// Bond is one bond of a compound record.  Its identity within a compound is
// the unordered pair of atom identifiers.
type Bond struct {
	// AID1 and AID2 are the endpoints as deposited.
	AID1 int
	AID2 int

	// Order is the bond order tag.
	Order chem.BondOrder

	// Style is the conformer's display annotation for this bond, zero when
	// the record carries none.
	Style int
}

// Equal reports whether two bonds have the same endpoints, order and style.
func (b *Bond) Equal(other *Bond) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.AID1 == other.AID1 && b.AID2 == other.AID2 &&
		b.Order == other.Order && b.Style == other.Style
}

// ToMap renders the bond as a generic map.  A zero style is omitted.
func (b *Bond) ToMap() map[string]interface{} {
	data := map[string]interface{}{
		"aid1":  b.AID1,
		"aid2":  b.AID2,
		"order": int(b.Order),
	}
	if b.Style != 0 {
		data["style"] = b.Style
	}
	return data
}

// pairKey is the unordered atom-id pair a bond is keyed by.
type pairKey struct {
	lo, hi int
}

func newPairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}
