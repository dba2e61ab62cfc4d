package compound

import (
	"context"
	"sort"
)

// accessors is the static registry behind ToMap, keyed by the underscore
// property names used in serialized output.
var accessors = map[string]func(ctx context.Context, c *Compound) interface{}{
	"cid":     func(_ context.Context, c *Compound) interface{} { return c.CID() },
	"charge":  func(_ context.Context, c *Compound) interface{} { return c.Charge() },
	"elements": func(_ context.Context, c *Compound) interface{} {
		return c.Elements()
	},
	"atoms": func(_ context.Context, c *Compound) interface{} {
		atoms := c.Atoms()
		out := make([]map[string]interface{}, len(atoms))
		for i, a := range atoms {
			out[i] = a.ToMap()
		}
		return out
	},
	"bonds": func(_ context.Context, c *Compound) interface{} {
		bonds := c.Bonds()
		out := make([]map[string]interface{}, len(bonds))
		for i, b := range bonds {
			out[i] = b.ToMap()
		}
		return out
	},
	"coordinate_type":   func(_ context.Context, c *Compound) interface{} { return c.CoordinateType() },
	"molecular_formula": func(_ context.Context, c *Compound) interface{} { return c.MolecularFormula() },
	"molecular_weight":  func(_ context.Context, c *Compound) interface{} { return boxFloat(c.MolecularWeight()) },
	"canonical_smiles":  func(_ context.Context, c *Compound) interface{} { return c.CanonicalSMILES() },
	"isomeric_smiles":   func(_ context.Context, c *Compound) interface{} { return c.IsomericSMILES() },
	"inchi":             func(_ context.Context, c *Compound) interface{} { return c.InChI() },
	"inchikey":          func(_ context.Context, c *Compound) interface{} { return c.InChIKey() },
	"iupac_name":        func(_ context.Context, c *Compound) interface{} { return c.IUPACName() },
	"xlogp":             func(_ context.Context, c *Compound) interface{} { return boxFloat(c.XLogP()) },
	"exact_mass":        func(_ context.Context, c *Compound) interface{} { return boxFloat(c.ExactMass()) },
	"monoisotopic_mass": func(_ context.Context, c *Compound) interface{} { return boxFloat(c.MonoisotopicMass()) },
	"tpsa":              func(_ context.Context, c *Compound) interface{} { return boxFloat(c.TPSA()) },
	"complexity":        func(_ context.Context, c *Compound) interface{} { return boxFloat(c.Complexity()) },
	"h_bond_donor_count": func(_ context.Context, c *Compound) interface{} {
		return boxInt(c.HBondDonorCount())
	},
	"h_bond_acceptor_count": func(_ context.Context, c *Compound) interface{} {
		return boxInt(c.HBondAcceptorCount())
	},
	"rotatable_bond_count": func(_ context.Context, c *Compound) interface{} {
		return boxInt(c.RotatableBondCount())
	},
	"fingerprint":        func(_ context.Context, c *Compound) interface{} { return c.Fingerprint() },
	"cactvs_fingerprint": func(_ context.Context, c *Compound) interface{} { return c.CACTVSFingerprint() },
	"heavy_atom_count":   func(_ context.Context, c *Compound) interface{} { return boxInt(c.HeavyAtomCount()) },
	"isotope_atom_count": func(_ context.Context, c *Compound) interface{} { return boxInt(c.IsotopeAtomCount()) },
	"atom_stereo_count":  func(_ context.Context, c *Compound) interface{} { return boxInt(c.AtomStereoCount()) },
	"defined_atom_stereo_count": func(_ context.Context, c *Compound) interface{} {
		return boxInt(c.DefinedAtomStereoCount())
	},
	"undefined_atom_stereo_count": func(_ context.Context, c *Compound) interface{} {
		return boxInt(c.UndefinedAtomStereoCount())
	},
	"bond_stereo_count": func(_ context.Context, c *Compound) interface{} { return boxInt(c.BondStereoCount()) },
	"defined_bond_stereo_count": func(_ context.Context, c *Compound) interface{} {
		return boxInt(c.DefinedBondStereoCount())
	},
	"undefined_bond_stereo_count": func(_ context.Context, c *Compound) interface{} {
		return boxInt(c.UndefinedBondStereoCount())
	},
	"covalent_unit_count": func(_ context.Context, c *Compound) interface{} { return boxInt(c.CovalentUnitCount()) },
	"volume_3d":           func(_ context.Context, c *Compound) interface{} { return boxFloat(c.Volume3D()) },
	"multipoles_3d":       func(_ context.Context, c *Compound) interface{} { return c.Multipoles3D() },
	"conformer_rmsd_3d":   func(_ context.Context, c *Compound) interface{} { return boxFloat(c.ConformerRMSD3D()) },
	"effective_rotor_count_3d": func(_ context.Context, c *Compound) interface{} {
		return boxFloat(c.EffectiveRotorCount3D())
	},
	"pharmacophore_features_3d": func(_ context.Context, c *Compound) interface{} {
		return c.PharmacophoreFeatures3D()
	},
	"mmff94_partial_charges_3d": func(_ context.Context, c *Compound) interface{} {
		return c.MMFF94PartialCharges3D()
	},
	"mmff94_energy_3d":     func(_ context.Context, c *Compound) interface{} { return boxFloat(c.MMFF94Energy3D()) },
	"conformer_id_3d":      func(_ context.Context, c *Compound) interface{} { return c.ConformerID3D() },
	"shape_selfoverlap_3d": func(_ context.Context, c *Compound) interface{} { return boxFloat(c.ShapeSelfOverlap3D()) },
	"feature_selfoverlap_3d": func(_ context.Context, c *Compound) interface{} {
		return boxFloat(c.FeatureSelfOverlap3D())
	},
	"shape_fingerprint_3d": func(_ context.Context, c *Compound) interface{} { return c.ShapeFingerprint3D() },

	"synonyms": func(ctx context.Context, c *Compound) interface{} {
		v, err := c.Synonyms(ctx)
		if err != nil {
			return nil
		}
		return v
	},
	"sids": func(ctx context.Context, c *Compound) interface{} {
		v, err := c.SIDs(ctx)
		if err != nil {
			return nil
		}
		return v
	},
	"aids": func(ctx context.Context, c *Compound) interface{} {
		v, err := c.AIDs(ctx)
		if err != nil {
			return nil
		}
		return v
	},
}

// networkProperties are excluded from default ToMap output because each one
// costs an extra request.
var networkProperties = map[string]bool{"synonyms": true, "sids": true, "aids": true}

// ToMap renders the compound's derived view as a generic map.  With no
// explicit property list, every registered property except the
// network-backed ones (synonyms, sids, aids) is included; unknown property
// names are ignored.
func (c *Compound) ToMap(ctx context.Context, properties ...string) map[string]interface{} {
	if len(properties) == 0 {
		for name := range accessors {
			if !networkProperties[name] {
				properties = append(properties, name)
			}
		}
		sort.Strings(properties)
	}
	out := map[string]interface{}{}
	for _, name := range properties {
		if fn, ok := accessors[name]; ok {
			out[name] = fn(ctx, c)
		}
	}
	return out
}

func boxFloat(v float64, ok bool) interface{} {
	if !ok {
		return nil
	}
	return v
}

func boxInt(v int, ok bool) interface{} {
	if !ok {
		return nil
	}
	return v
}
