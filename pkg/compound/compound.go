package compound

import (
	"context"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/turtacn/pubchem-go/internal/jsonx"
	"github.com/turtacn/pubchem-go/pkg/chem"
	"github.com/turtacn/pubchem-go/pkg/errors"
	"github.com/turtacn/pubchem-go/pkg/pug"
)

// Service is the subset of the pug client the compound package uses for
// record retrieval and for the lazy synonym and cross-reference accessors.
// *pug.Client satisfies it.
type Service interface {
	GetJSON(ctx context.Context, req pug.Request) (map[string]interface{}, error)
	SIDs(ctx context.Context, req pug.Request) ([]int, error)
	AIDs(ctx context.Context, req pug.Request) ([]int, error)
	Synonyms(ctx context.Context, req pug.Request) ([]pug.SynonymSet, error)
}

// Compound is a structured view over one PC_Compounds record.  The atom and
// bond maps are derived from the record on construction and on every
// SetRecord call; everything else is read out of the record on demand.
//
// Synonyms, SIDs and AIDs each need a network round-trip and are fetched at
// most once per Compound through the bound Service.
type Compound struct {
	record map[string]interface{}
	atoms  map[int]*Atom
	bonds  map[pairKey]*Bond

	svc Service

	synonymsOnce sync.Once
	synonyms     []string
	synonymsErr  error

	sidsOnce sync.Once
	sids     []int
	sidsErr  error

	aidsOnce sync.Once
	aids     []int
	aidsErr  error
}

// New builds a Compound from a raw PC_Compounds record.  The lazy accessors
// need a client; use Bind or construct via FromCID / Get instead.
func New(record map[string]interface{}) (*Compound, error) {
	c := &Compound{}
	if err := c.SetRecord(record); err != nil {
		return nil, err
	}
	return c, nil
}

// FromCID fetches the full record for a CID and wraps it.
func FromCID(ctx context.Context, svc Service, cid int) (*Compound, error) {
	result, err := svc.GetJSON(ctx, pug.Request{Identifier: strconv.Itoa(cid)})
	if err != nil {
		return nil, err
	}
	records := jsonx.Slice(result["PC_Compounds"])
	if len(records) == 0 {
		return nil, errors.ResponseParse("response contains no compound record")
	}
	c, err := New(jsonx.Map(records[0]))
	if err != nil {
		return nil, err
	}
	c.Bind(svc)
	return c, nil
}

// Get retrieves all compound records matching the query and wraps each one.
// A not-found response yields an empty slice.
func Get(ctx context.Context, svc Service, req pug.Request) ([]*Compound, error) {
	req.Domain = pug.DomainCompound
	result, err := svc.GetJSON(ctx, req)
	if err != nil {
		return nil, err
	}
	compounds := []*Compound{}
	for _, raw := range jsonx.Slice(result["PC_Compounds"]) {
		c, err := New(jsonx.Map(raw))
		if err != nil {
			return nil, err
		}
		c.Bind(svc)
		compounds = append(compounds, c)
	}
	return compounds, nil
}

// Bind attaches the client used by the lazy accessors.
func (c *Compound) Bind(svc Service) {
	c.svc = svc
}

// Record returns the raw record backing this view.
func (c *Compound) Record() map[string]interface{} {
	return c.record
}

// SetRecord replaces the raw record and rebuilds the atom and bond maps
// from scratch.  Values already fetched by the lazy accessors are not
// invalidated and will keep serving the previous record's identifiers.
func (c *Compound) SetRecord(record map[string]interface{}) error {
	if record == nil {
		return errors.InvalidParam("record cannot be nil")
	}
	atoms, err := deriveAtoms(record)
	if err != nil {
		return err
	}
	bonds, err := deriveBonds(record)
	if err != nil {
		return err
	}
	c.record = record
	c.atoms = atoms
	c.bonds = bonds
	return nil
}

// Equal reports whether two compounds are backed by equal records.
func (c *Compound) Equal(other *Compound) bool {
	if c == nil || other == nil {
		return c == other
	}
	return reflect.DeepEqual(c.record, other.record)
}

// ─────────────────────────────────────────────────────────────────────────
// Record derivation
// ─────────────────────────────────────────────────────────────────────────

func deriveAtoms(record map[string]interface{}) (map[int]*Atom, error) {
	atoms := map[int]*Atom{}
	block := jsonx.Map(record["atoms"])
	if block == nil {
		return atoms, nil
	}
	aids := jsonx.IntSlice(block["aid"])
	elements := jsonx.IntSlice(block["element"])
	if len(aids) != len(elements) {
		return nil, errors.ResponseParse("atom id and element arrays differ in length")
	}
	for i, aid := range aids {
		atoms[aid] = &Atom{AID: aid, Number: elements[i]}
	}

	if conformer := firstConformerOf(record); conformer != nil {
		coords := jsonx.Map(jsonx.Slice(record["coords"])[0])
		coordIDs := jsonx.IntSlice(coords["aid"])
		xs := jsonx.FloatSlice(conformer["x"])
		ys := jsonx.FloatSlice(conformer["y"])
		zs := jsonx.FloatSlice(conformer["z"])
		if len(coordIDs) != len(xs) || len(coordIDs) != len(ys) || len(coordIDs) != len(atoms) ||
			(len(zs) > 0 && len(zs) != len(coordIDs)) {
			return nil, errors.ResponseParse("atom coordinate arrays differ in length")
		}
		for i, aid := range coordIDs {
			atom, ok := atoms[aid]
			if !ok {
				return nil, errors.ResponseParse("coordinate refers to unknown atom id " + strconv.Itoa(aid))
			}
			var z *float64
			if len(zs) > 0 {
				z = &zs[i]
			}
			atom.SetCoordinates(xs[i], ys[i], z)
		}
	}

	for _, raw := range jsonx.Slice(block["charge"]) {
		entry := jsonx.Map(raw)
		aid, _ := jsonx.Int(entry["aid"])
		atom, ok := atoms[aid]
		if !ok {
			return nil, errors.ResponseParse("charge annotation refers to unknown atom id " + strconv.Itoa(aid))
		}
		atom.Charge, _ = jsonx.Int(entry["value"])
	}
	return atoms, nil
}

func deriveBonds(record map[string]interface{}) (map[pairKey]*Bond, error) {
	bonds := map[pairKey]*Bond{}
	block := jsonx.Map(record["bonds"])
	if block == nil {
		return bonds, nil
	}
	aid1s := jsonx.IntSlice(block["aid1"])
	aid2s := jsonx.IntSlice(block["aid2"])
	orders := jsonx.IntSlice(block["order"])
	if len(aid1s) != len(aid2s) || len(aid1s) != len(orders) {
		return nil, errors.ResponseParse("bond endpoint and order arrays differ in length")
	}
	for i := range aid1s {
		bonds[newPairKey(aid1s[i], aid2s[i])] = &Bond{
			AID1:  aid1s[i],
			AID2:  aid2s[i],
			Order: chem.BondOrder(orders[i]),
		}
	}

	style := jsonx.Map(jsonx.Dig(firstConformerOf(record), "style"))
	if style != nil {
		aid1s := jsonx.IntSlice(style["aid1"])
		aid2s := jsonx.IntSlice(style["aid2"])
		annotations := jsonx.IntSlice(style["annotation"])
		if len(aid1s) != len(aid2s) || len(aid1s) != len(annotations) {
			return nil, errors.ResponseParse("bond style arrays differ in length")
		}
		for i := range aid1s {
			bond, ok := bonds[newPairKey(aid1s[i], aid2s[i])]
			if !ok {
				return nil, errors.ResponseParse("style annotation refers to unknown bond")
			}
			bond.Style = annotations[i]
		}
	}
	return bonds, nil
}

func firstConformerOf(record map[string]interface{}) map[string]interface{} {
	coords := jsonx.Slice(record["coords"])
	if len(coords) == 0 {
		return nil
	}
	conformers := jsonx.Slice(jsonx.Map(coords[0])["conformers"])
	if len(conformers) == 0 {
		return nil
	}
	return jsonx.Map(conformers[0])
}

// ─────────────────────────────────────────────────────────────────────────
// Structure accessors
// ─────────────────────────────────────────────────────────────────────────

// CID returns the compound identifier, or zero for on-the-fly records that
// have none (e.g. structure queries not present in the database).
func (c *Compound) CID() int {
	cid, _ := jsonx.Int(jsonx.Dig(c.record, "id", "id", "cid"))
	return cid
}

// Atoms returns the compound's atoms sorted by atom id.
func (c *Compound) Atoms() []*Atom {
	atoms := make([]*Atom, 0, len(c.atoms))
	for _, a := range c.atoms {
		atoms = append(atoms, a)
	}
	sort.Slice(atoms, func(i, j int) bool { return atoms[i].AID < atoms[j].AID })
	return atoms
}

// Bonds returns the compound's bonds sorted by endpoint pair.
func (c *Compound) Bonds() []*Bond {
	bonds := make([]*Bond, 0, len(c.bonds))
	for _, b := range c.bonds {
		bonds = append(bonds, b)
	}
	sort.Slice(bonds, func(i, j int) bool {
		if bonds[i].AID1 != bonds[j].AID1 {
			return bonds[i].AID1 < bonds[j].AID1
		}
		return bonds[i].AID2 < bonds[j].AID2
	})
	return bonds
}

// Elements returns the element symbols of the atoms, in atom-id order.
func (c *Compound) Elements() []string {
	atoms := c.Atoms()
	symbols := make([]string, len(atoms))
	for i, a := range atoms {
		symbols[i] = a.Element()
	}
	return symbols
}

// CoordinateType reports "2d" or "3d" from the record's coords type tags,
// or "" when the record carries neither.
func (c *Compound) CoordinateType() string {
	for _, raw := range jsonx.IntSlice(jsonx.Dig(c.firstCoords(), "type")) {
		switch chem.CoordinateType(raw) {
		case chem.Coord2D:
			return "2d"
		case chem.Coord3D:
			return "3d"
		}
	}
	return ""
}

// Charge returns the formal charge on the compound, zero when absent.
func (c *Compound) Charge() int {
	charge, _ := jsonx.Int(c.record["charge"])
	return charge
}

// ─────────────────────────────────────────────────────────────────────────
// Flat property accessors
// ─────────────────────────────────────────────────────────────────────────

// MolecularFormula returns the molecular formula.
func (c *Compound) MolecularFormula() string {
	return c.stringProp(map[string]string{"label": "Molecular Formula"})
}

// MolecularWeight returns the molecular weight in g/mol.
func (c *Compound) MolecularWeight() (float64, bool) {
	return c.floatProp(map[string]string{"label": "Molecular Weight"})
}

// CanonicalSMILES returns the canonical SMILES, with no stereochemistry
// information.
func (c *Compound) CanonicalSMILES() string {
	return c.stringProp(map[string]string{"label": "SMILES", "name": "Canonical"})
}

// IsomericSMILES returns the isomeric SMILES.
func (c *Compound) IsomericSMILES() string {
	return c.stringProp(map[string]string{"label": "SMILES", "name": "Isomeric"})
}

// InChI returns the standard InChI string.
func (c *Compound) InChI() string {
	return c.stringProp(map[string]string{"label": "InChI", "name": "Standard"})
}

// InChIKey returns the standard InChIKey.
func (c *Compound) InChIKey() string {
	return c.stringProp(map[string]string{"label": "InChIKey", "name": "Standard"})
}

// IUPACName returns the preferred IUPAC name.  The full record also carries
// Allowed, CAS-like, Systematic and Traditional styles.
func (c *Compound) IUPACName() string {
	return c.stringProp(map[string]string{"label": "IUPAC Name", "name": "Preferred"})
}

// XLogP returns the computed octanol-water partition coefficient.
func (c *Compound) XLogP() (float64, bool) {
	return c.floatProp(map[string]string{"label": "Log P"})
}

// ExactMass returns the exact mass.
func (c *Compound) ExactMass() (float64, bool) {
	return c.floatProp(map[string]string{"label": "Mass", "name": "Exact"})
}

// MonoisotopicMass returns the monoisotopic mass.
func (c *Compound) MonoisotopicMass() (float64, bool) {
	return c.floatProp(map[string]string{"label": "Weight", "name": "MonoIsotopic"})
}

// TPSA returns the topological polar surface area.
func (c *Compound) TPSA() (float64, bool) {
	return c.floatProp(map[string]string{"implementation": "E_TPSA"})
}

// Complexity returns the structural complexity score.
func (c *Compound) Complexity() (float64, bool) {
	return c.floatProp(map[string]string{"implementation": "E_COMPLEXITY"})
}

// HBondDonorCount returns the hydrogen bond donor count.
func (c *Compound) HBondDonorCount() (int, bool) {
	return jsonx.Int(c.prop(map[string]string{"implementation": "E_NHDONORS"}))
}

// HBondAcceptorCount returns the hydrogen bond acceptor count.
func (c *Compound) HBondAcceptorCount() (int, bool) {
	return jsonx.Int(c.prop(map[string]string{"implementation": "E_NHACCEPTORS"}))
}

// RotatableBondCount returns the rotatable bond count.
func (c *Compound) RotatableBondCount() (int, bool) {
	return jsonx.Int(c.prop(map[string]string{"implementation": "E_NROTBONDS"}))
}

// Fingerprint returns the raw padded, hex-encoded substructure fingerprint
// as served by the API.
func (c *Compound) Fingerprint() string {
	return c.stringProp(map[string]string{"implementation": "E_SCREEN"})
}

// CACTVSFingerprint decodes Fingerprint into the 881-bit CACTVS bit string.
// Each bit marks the presence of one of 881 chemical substructures.  The
// raw value leads with a 4-byte length prefix and trails 7 bits of padding,
// both of which are stripped here.
func (c *Compound) CACTVSFingerprint() string {
	raw := c.Fingerprint()
	if len(raw) <= 8 {
		return ""
	}
	n, ok := new(big.Int).SetString(raw[8:], 16)
	if !ok {
		return ""
	}
	bits := n.Text(2)
	if len(bits) < 20 {
		bits = strings.Repeat("0", 20-len(bits)) + bits
	}
	bits = bits[:len(bits)-7]
	if len(bits) < 881 {
		bits = strings.Repeat("0", 881-len(bits)) + bits
	}
	return bits
}

// ─────────────────────────────────────────────────────────────────────────
// Count accessors
// ─────────────────────────────────────────────────────────────────────────

// HeavyAtomCount returns the heavy atom count.
func (c *Compound) HeavyAtomCount() (int, bool) { return c.count("heavy_atom") }

// IsotopeAtomCount returns the isotope atom count.
func (c *Compound) IsotopeAtomCount() (int, bool) { return c.count("isotope_atom") }

// AtomStereoCount returns the atom stereocenter count.
func (c *Compound) AtomStereoCount() (int, bool) { return c.count("atom_chiral") }

// DefinedAtomStereoCount returns the defined atom stereocenter count.
func (c *Compound) DefinedAtomStereoCount() (int, bool) { return c.count("atom_chiral_def") }

// UndefinedAtomStereoCount returns the undefined atom stereocenter count.
func (c *Compound) UndefinedAtomStereoCount() (int, bool) { return c.count("atom_chiral_undef") }

// BondStereoCount returns the bond stereocenter count.
func (c *Compound) BondStereoCount() (int, bool) { return c.count("bond_chiral") }

// DefinedBondStereoCount returns the defined bond stereocenter count.
func (c *Compound) DefinedBondStereoCount() (int, bool) { return c.count("bond_chiral_def") }

// UndefinedBondStereoCount returns the undefined bond stereocenter count.
func (c *Compound) UndefinedBondStereoCount() (int, bool) { return c.count("bond_chiral_undef") }

// CovalentUnitCount returns the covalently-bonded unit count.
func (c *Compound) CovalentUnitCount() (int, bool) { return c.count("covalent_unit") }

// ─────────────────────────────────────────────────────────────────────────
// 3-D conformer accessors
// ─────────────────────────────────────────────────────────────────────────

// Volume3D returns the analytic conformer volume of 3-D records.
func (c *Compound) Volume3D() (float64, bool) {
	return c.conformerFloatProp(map[string]string{"label": "Shape", "name": "Volume"})
}

// Multipoles3D returns the shape multipole vector of 3-D records.
func (c *Compound) Multipoles3D() []float64 {
	return jsonx.FloatSlice(locateProperty(c.conformerData(), map[string]string{"label": "Shape", "name": "Multipoles"}))
}

// ConformerRMSD3D returns the conformer sampling RMSD of 3-D records.
func (c *Compound) ConformerRMSD3D() (float64, bool) {
	return jsonx.Float(locateProperty(jsonx.Slice(jsonx.Dig(c.firstCoords(), "data")),
		map[string]string{"label": "Conformer", "name": "RMSD"}))
}

// EffectiveRotorCount3D returns the effective rotor count of 3-D records.
func (c *Compound) EffectiveRotorCount3D() (float64, bool) {
	return c.floatProp(map[string]string{"label": "Count", "name": "Effective Rotor"})
}

// PharmacophoreFeatures3D returns the pharmacophore feature list of 3-D
// records.
func (c *Compound) PharmacophoreFeatures3D() []string {
	return jsonx.StringSlice(c.prop(map[string]string{"label": "Features", "name": "Pharmacophore"}))
}

// MMFF94PartialCharges3D returns the MMFF94 partial charge list of 3-D
// records.
func (c *Compound) MMFF94PartialCharges3D() []string {
	return jsonx.StringSlice(c.prop(map[string]string{"label": "Charge", "name": "MMFF94 Partial"}))
}

// MMFF94Energy3D returns the MMFF94 minimization energy of 3-D records.
func (c *Compound) MMFF94Energy3D() (float64, bool) {
	return c.conformerFloatProp(map[string]string{"label": "Energy", "name": "MMFF94 NoEstat"})
}

// ConformerID3D returns the conformer identifier of 3-D records.
func (c *Compound) ConformerID3D() string {
	return c.conformerStringProp(map[string]string{"label": "Conformer", "name": "ID"})
}

// ShapeSelfOverlap3D returns the shape self-overlap of 3-D records.
func (c *Compound) ShapeSelfOverlap3D() (float64, bool) {
	return c.conformerFloatProp(map[string]string{"label": "Shape", "name": "Self Overlap"})
}

// FeatureSelfOverlap3D returns the feature self-overlap of 3-D records.
func (c *Compound) FeatureSelfOverlap3D() (float64, bool) {
	return c.conformerFloatProp(map[string]string{"label": "Feature", "name": "Self Overlap"})
}

// ShapeFingerprint3D returns the shape fingerprint of 3-D records.
func (c *Compound) ShapeFingerprint3D() []string {
	return jsonx.StringSlice(locateProperty(c.conformerData(), map[string]string{"label": "Fingerprint", "name": "Shape"}))
}

// ─────────────────────────────────────────────────────────────────────────
// Lazy accessors
// ─────────────────────────────────────────────────────────────────────────

// Synonyms returns the ranked name list for this compound.  The first call
// performs a network request; the result, error included, is cached for the
// object's lifetime.
func (c *Compound) Synonyms(ctx context.Context) ([]string, error) {
	c.synonymsOnce.Do(func() {
		cid, err := c.lazyKey()
		if err != nil {
			c.synonymsErr = err
			return
		}
		sets, err := c.svc.Synonyms(ctx, pug.Request{Identifier: strconv.Itoa(cid)})
		if err != nil {
			c.synonymsErr = err
			return
		}
		if len(sets) > 0 {
			c.synonyms = sets[0].Synonyms
		} else {
			c.synonyms = []string{}
		}
	})
	return c.synonyms, c.synonymsErr
}

// SIDs returns the identifiers of the substances this compound was derived
// from.  The first call performs a network request; the result is cached.
func (c *Compound) SIDs(ctx context.Context) ([]int, error) {
	c.sidsOnce.Do(func() {
		cid, err := c.lazyKey()
		if err != nil {
			c.sidsErr = err
			return
		}
		c.sids, c.sidsErr = c.svc.SIDs(ctx, pug.Request{Identifier: strconv.Itoa(cid)})
	})
	return c.sids, c.sidsErr
}

// AIDs returns the identifiers of the assays this compound was tested in.
// The first call performs a network request; the result is cached.
func (c *Compound) AIDs(ctx context.Context) ([]int, error) {
	c.aidsOnce.Do(func() {
		cid, err := c.lazyKey()
		if err != nil {
			c.aidsErr = err
			return
		}
		c.aids, c.aidsErr = c.svc.AIDs(ctx, pug.Request{Identifier: strconv.Itoa(cid)})
	})
	return c.aids, c.aidsErr
}

func (c *Compound) lazyKey() (int, error) {
	if c.svc == nil {
		return 0, errors.InvalidParam("no client bound; construct via FromCID or Get, or call Bind")
	}
	cid := c.CID()
	if cid == 0 {
		return 0, errors.InvalidParam("record has no CID")
	}
	return cid, nil
}
