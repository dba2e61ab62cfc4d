// Package chem holds the static vocabulary of the PubChem record format:
// element symbols, bond orders, coordinate and compound-id type tags, assay
// project categories, and the property-name alias table.  Pure data, no I/O.
package chem

// BondOrder enumerates the bond order values used in compound records.
type BondOrder int

const (
	BondSingle    BondOrder = 1
	BondDouble    BondOrder = 2
	BondTriple    BondOrder = 3
	BondQuadruple BondOrder = 4
	BondDative    BondOrder = 5
	BondComplex   BondOrder = 6
	BondIonic     BondOrder = 7
	BondUnknown   BondOrder = 255
)

func (b BondOrder) String() string {
	switch b {
	case BondSingle:
		return "single"
	case BondDouble:
		return "double"
	case BondTriple:
		return "triple"
	case BondQuadruple:
		return "quadruple"
	case BondDative:
		return "dative"
	case BondComplex:
		return "complex"
	case BondIonic:
		return "ionic"
	default:
		return "unknown"
	}
}

// CoordinateType enumerates the type tags carried by a record's coords block.
type CoordinateType int

const (
	Coord2D             CoordinateType = 1
	Coord3D             CoordinateType = 2
	CoordSubmitted      CoordinateType = 3
	CoordExperimental   CoordinateType = 4
	CoordComputed       CoordinateType = 5
	CoordStandardized   CoordinateType = 6
	CoordAugmented      CoordinateType = 7
	CoordAligned        CoordinateType = 8
	CoordCompact        CoordinateType = 9
	CoordUnitsAngstroms CoordinateType = 10
	CoordUnitsNM        CoordinateType = 11
	CoordUnitsPixel     CoordinateType = 12
	CoordUnitsPoints    CoordinateType = 13
	CoordUnitsStdBonds  CoordinateType = 14
	CoordUnitsUnknown   CoordinateType = 255
)

// CompoundIDType distinguishes the compound views embedded in a substance
// record.
type CompoundIDType int

const (
	// CompoundDeposited tags the original deposited compound.
	CompoundDeposited CompoundIDType = 0
	// CompoundStandardized tags the standardized form of the deposited compound.
	CompoundStandardized CompoundIDType = 1
	CompoundComponent    CompoundIDType = 2
	CompoundNeutralized  CompoundIDType = 3
	CompoundMixture      CompoundIDType = 4
	CompoundTautomer     CompoundIDType = 5
	CompoundIonized      CompoundIDType = 6
	CompoundUnknown      CompoundIDType = 255
)

// ProjectCategory distinguishes assay funding/provenance categories.
type ProjectCategory int

const (
	ProjectMLSCN               ProjectCategory = 1
	ProjectMLPCN               ProjectCategory = 2
	ProjectMLSCNAP             ProjectCategory = 3
	ProjectMLPCNAP             ProjectCategory = 4
	ProjectJournalArticle      ProjectCategory = 5
	ProjectAssayVendor         ProjectCategory = 6
	ProjectLiteratureExtracted ProjectCategory = 7
	ProjectLiteratureAuthor    ProjectCategory = 8
	ProjectLiteraturePublisher ProjectCategory = 9
	ProjectRNAiGI              ProjectCategory = 10
	ProjectOther               ProjectCategory = 255
)
