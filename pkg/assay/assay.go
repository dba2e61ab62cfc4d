// Package assay wraps raw PC_AssayContainer records.  Assay records
// describe biological experiments: their depositor-provided description,
// readout column definitions, and targets.
package assay

import (
	"context"
	"reflect"
	"sort"
	"strconv"

	"github.com/turtacn/pubchem-go/internal/jsonx"
	"github.com/turtacn/pubchem-go/pkg/chem"
	"github.com/turtacn/pubchem-go/pkg/errors"
	"github.com/turtacn/pubchem-go/pkg/pug"
)

// Service is the client surface the assay package uses.  *pug.Client
// satisfies it.
type Service interface {
	GetJSON(ctx context.Context, req pug.Request) (map[string]interface{}, error)
}

// Assay is a structured view over one PC_AssayContainer record.  All
// accessors read the record directly; assays have no lazy fields.
type Assay struct {
	record map[string]interface{}
}

// New builds an Assay from a raw PC_AssayContainer record.
func New(record map[string]interface{}) (*Assay, error) {
	if record == nil {
		return nil, errors.InvalidParam("record cannot be nil")
	}
	return &Assay{record: record}, nil
}

// FromAID fetches the description record for an AID and wraps it.
func FromAID(ctx context.Context, svc Service, aid int) (*Assay, error) {
	result, err := svc.GetJSON(ctx, pug.Request{
		Identifier: strconv.Itoa(aid),
		Namespace:  pug.NamespaceAID,
		Domain:     pug.DomainAssay,
		Operation:  "description",
	})
	if err != nil {
		return nil, err
	}
	records := jsonx.Slice(result["PC_AssayContainer"])
	if len(records) == 0 {
		return nil, errors.ResponseParse("response contains no assay record")
	}
	return New(jsonx.Map(records[0]))
}

// Get retrieves all assay description records matching the query and wraps
// each one.  The namespace defaults to aid.  A not-found response yields an
// empty slice.
func Get(ctx context.Context, svc Service, req pug.Request) ([]*Assay, error) {
	if req.Namespace == "" {
		req.Namespace = pug.NamespaceAID
	}
	req.Domain = pug.DomainAssay
	req.Operation = "description"
	result, err := svc.GetJSON(ctx, req)
	if err != nil {
		return nil, err
	}
	assays := []*Assay{}
	for _, raw := range jsonx.Slice(result["PC_AssayContainer"]) {
		a, err := New(jsonx.Map(raw))
		if err != nil {
			return nil, err
		}
		assays = append(assays, a)
	}
	return assays, nil
}

// Record returns the raw record backing this view.
func (a *Assay) Record() map[string]interface{} {
	return a.record
}

// Equal reports whether two assays are backed by equal records.
func (a *Assay) Equal(other *Assay) bool {
	if a == nil || other == nil {
		return a == other
	}
	return reflect.DeepEqual(a.record, other.record)
}

func (a *Assay) descr() map[string]interface{} {
	return jsonx.Map(jsonx.Dig(a.record, "assay", "descr"))
}

// AID returns the assay identifier.
func (a *Assay) AID() int {
	aid, _ := jsonx.Int(jsonx.Dig(a.descr(), "aid", "id"))
	return aid
}

// AIDVersion returns the record version, incremented whenever the original
// depositor updates the record.
func (a *Assay) AIDVersion() int {
	version, _ := jsonx.Int(jsonx.Dig(a.descr(), "aid", "version"))
	return version
}

// Name returns the short assay name used for display.
func (a *Assay) Name() string {
	name, _ := jsonx.String(a.descr()["name"])
	return name
}

// Description returns the depositor's description paragraphs.
func (a *Assay) Description() []string {
	return jsonx.StringSlice(a.descr()["description"])
}

// ProjectCategory returns the funding/provenance category tag, or false
// when the record carries none.
func (a *Assay) ProjectCategory() (chem.ProjectCategory, bool) {
	tag, ok := jsonx.Int(a.descr()["project_category"])
	if !ok {
		return 0, false
	}
	return chem.ProjectCategory(tag), true
}

// Comments returns the depositor's additional comments with blank lines
// removed.
func (a *Assay) Comments() []string {
	out := []string{}
	for _, comment := range jsonx.StringSlice(a.descr()["comment"]) {
		if comment != "" {
			out = append(out, comment)
		}
	}
	return out
}

// Results returns the readout column definitions of this assay.
func (a *Assay) Results() []map[string]interface{} {
	return mapSlice(a.descr()["results"])
}

// Targets returns the assay target descriptions, or nil when the record
// carries none.
func (a *Assay) Targets() []map[string]interface{} {
	return mapSlice(a.descr()["target"])
}

// Revision returns the revision identifier of the textual description.
func (a *Assay) Revision() int {
	revision, _ := jsonx.Int(a.descr()["revision"])
	return revision
}

func mapSlice(v interface{}) []map[string]interface{} {
	raw := jsonx.Slice(v)
	if raw == nil {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw))
	for _, e := range raw {
		if m := jsonx.Map(e); m != nil {
			out = append(out, m)
		}
	}
	return out
}

// assayAccessors is the static registry behind ToMap.
var assayAccessors = map[string]func(a *Assay) interface{}{
	"aid":         func(a *Assay) interface{} { return a.AID() },
	"aid_version": func(a *Assay) interface{} { return a.AIDVersion() },
	"name":        func(a *Assay) interface{} { return a.Name() },
	"description": func(a *Assay) interface{} { return a.Description() },
	"project_category": func(a *Assay) interface{} {
		tag, ok := a.ProjectCategory()
		if !ok {
			return nil
		}
		return int(tag)
	},
	"comments": func(a *Assay) interface{} { return a.Comments() },
	"results":  func(a *Assay) interface{} { return a.Results() },
	"targets":  func(a *Assay) interface{} { return a.Targets() },
	"revision": func(a *Assay) interface{} { return a.Revision() },
}

// ToMap renders the assay's derived view as a generic map.  Unknown
// property names are ignored.
func (a *Assay) ToMap(properties ...string) map[string]interface{} {
	if len(properties) == 0 {
		for name := range assayAccessors {
			properties = append(properties, name)
		}
		sort.Strings(properties)
	}
	out := map[string]interface{}{}
	for _, name := range properties {
		if fn, ok := assayAccessors[name]; ok {
			out[name] = fn(a)
		}
	}
	return out
}
