package compound

import (
	"github.com/turtacn/pubchem-go/internal/jsonx"
)

// valueKeys is the probe order for a property's value map.  Each entry in
// the record's flat property list carries exactly one of these keys in
// practice; probing in a fixed order keeps extraction deterministic either
// way.
var valueKeys = []string{"sval", "fval", "ival", "binary", "slist", "fvec", "ivec", "boolvec"}

// locateProperty returns the value of the first entry in proplist whose urn
// map contains every key/value pair of filter, or nil when no entry
// matches.
func locateProperty(proplist []interface{}, filter map[string]string) interface{} {
	for _, raw := range proplist {
		entry := jsonx.Map(raw)
		if entry == nil || !urnMatches(jsonx.Map(entry["urn"]), filter) {
			continue
		}
		value := jsonx.Map(entry["value"])
		for _, key := range valueKeys {
			if v, ok := value[key]; ok {
				return v
			}
		}
		return nil
	}
	return nil
}

func urnMatches(urn map[string]interface{}, filter map[string]string) bool {
	if urn == nil {
		return false
	}
	for key, want := range filter {
		got, ok := jsonx.String(urn[key])
		if !ok || got != want {
			return false
		}
	}
	return true
}

func (c *Compound) prop(filter map[string]string) interface{} {
	return locateProperty(jsonx.Slice(c.record["props"]), filter)
}

func (c *Compound) stringProp(filter map[string]string) string {
	s, _ := jsonx.String(c.prop(filter))
	return s
}

func (c *Compound) floatProp(filter map[string]string) (float64, bool) {
	return jsonx.Float(c.prop(filter))
}

// conformerData is the per-conformer property list of 3-D records.
func (c *Compound) conformerData() []interface{} {
	return jsonx.Slice(jsonx.Dig(c.firstConformer(), "data"))
}

func (c *Compound) firstCoords() map[string]interface{} {
	coords := jsonx.Slice(c.record["coords"])
	if len(coords) == 0 {
		return nil
	}
	return jsonx.Map(coords[0])
}

func (c *Compound) firstConformer() map[string]interface{} {
	conformers := jsonx.Slice(jsonx.Dig(c.firstCoords(), "conformers"))
	if len(conformers) == 0 {
		return nil
	}
	return jsonx.Map(conformers[0])
}

func (c *Compound) conformerStringProp(filter map[string]string) string {
	s, _ := jsonx.String(locateProperty(c.conformerData(), filter))
	return s
}

func (c *Compound) conformerFloatProp(filter map[string]string) (float64, bool) {
	return jsonx.Float(locateProperty(c.conformerData(), filter))
}

func (c *Compound) count(key string) (int, bool) {
	return jsonx.Int(jsonx.Dig(c.record, "count", key))
}
