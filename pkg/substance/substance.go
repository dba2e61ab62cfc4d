// Package substance wraps raw PC_Substances records.  Substance records are
// deposited chemistry in its rawest form; each one carries its depositor
// provenance and up to two embedded compound views, the original deposit and
// its standardized form.
package substance

import (
	"context"
	"reflect"
	"sort"
	"strconv"
	"sync"

	"github.com/turtacn/pubchem-go/internal/jsonx"
	"github.com/turtacn/pubchem-go/pkg/chem"
	"github.com/turtacn/pubchem-go/pkg/compound"
	"github.com/turtacn/pubchem-go/pkg/errors"
	"github.com/turtacn/pubchem-go/pkg/pug"
)

// Service is the client surface the substance package uses.  *pug.Client
// satisfies it.
type Service interface {
	compound.Service
	CIDs(ctx context.Context, req pug.Request) ([]int, error)
}

// Substance is a structured view over one PC_Substances record.
//
// The standardized compound, CID list and AID list each need a network
// round-trip and are fetched at most once per Substance through the bound
// Service.
type Substance struct {
	record map[string]interface{}
	svc    Service

	stdOnce sync.Once
	std     *compound.Compound
	stdErr  error

	cidsOnce sync.Once
	cids     []int
	cidsErr  error

	aidsOnce sync.Once
	aids     []int
	aidsErr  error
}

// New builds a Substance from a raw PC_Substances record.
func New(record map[string]interface{}) (*Substance, error) {
	if record == nil {
		return nil, errors.InvalidParam("record cannot be nil")
	}
	return &Substance{record: record}, nil
}

// FromSID fetches the full record for a SID and wraps it.
func FromSID(ctx context.Context, svc Service, sid int) (*Substance, error) {
	result, err := svc.GetJSON(ctx, pug.Request{
		Identifier: strconv.Itoa(sid),
		Namespace:  pug.NamespaceSID,
		Domain:     pug.DomainSubstance,
	})
	if err != nil {
		return nil, err
	}
	records := jsonx.Slice(result["PC_Substances"])
	if len(records) == 0 {
		return nil, errors.ResponseParse("response contains no substance record")
	}
	s, err := New(jsonx.Map(records[0]))
	if err != nil {
		return nil, err
	}
	s.Bind(svc)
	return s, nil
}

// Get retrieves all substance records matching the query and wraps each one.
// The namespace defaults to sid.  A not-found response yields an empty
// slice.
func Get(ctx context.Context, svc Service, req pug.Request) ([]*Substance, error) {
	if req.Namespace == "" {
		req.Namespace = pug.NamespaceSID
	}
	req.Domain = pug.DomainSubstance
	result, err := svc.GetJSON(ctx, req)
	if err != nil {
		return nil, err
	}
	substances := []*Substance{}
	for _, raw := range jsonx.Slice(result["PC_Substances"]) {
		s, err := New(jsonx.Map(raw))
		if err != nil {
			return nil, err
		}
		s.Bind(svc)
		substances = append(substances, s)
	}
	return substances, nil
}

// Bind attaches the client used by the lazy accessors.
func (s *Substance) Bind(svc Service) {
	s.svc = svc
}

// Record returns the raw record backing this view.
func (s *Substance) Record() map[string]interface{} {
	return s.record
}

// Equal reports whether two substances are backed by equal records.
func (s *Substance) Equal(other *Substance) bool {
	if s == nil || other == nil {
		return s == other
	}
	return reflect.DeepEqual(s.record, other.record)
}

// SID returns the substance identifier.
func (s *Substance) SID() int {
	sid, _ := jsonx.Int(jsonx.Dig(s.record, "sid", "id"))
	return sid
}

// Synonyms returns the deposited name list, which substance records carry
// inline.
func (s *Substance) Synonyms() []string {
	return jsonx.StringSlice(s.record["synonyms"])
}

// SourceName returns the name of the depositor this substance came from.
func (s *Substance) SourceName() string {
	name, _ := jsonx.String(jsonx.Dig(s.record, "source", "db", "name"))
	return name
}

// SourceID returns the depositor's own identifier for this substance.
func (s *Substance) SourceID() string {
	id, _ := jsonx.String(jsonx.Dig(s.record, "source", "db", "source_id", "str"))
	return id
}

// StandardizedCID returns the CID produced when this substance was
// standardized, or zero when the record was not standardizable.
func (s *Substance) StandardizedCID() int {
	record := s.embeddedCompound(chem.CompoundStandardized)
	if record == nil {
		return 0
	}
	cid, _ := jsonx.Int(jsonx.Dig(record, "id", "id", "cid"))
	return cid
}

// StandardizedCompound fetches the full compound record for
// StandardizedCID.  The first call performs a network request; the result is
// cached for the object's lifetime.
func (s *Substance) StandardizedCompound(ctx context.Context) (*compound.Compound, error) {
	s.stdOnce.Do(func() {
		if s.svc == nil {
			s.stdErr = errors.InvalidParam("no client bound; construct via FromSID or Get, or call Bind")
			return
		}
		cid := s.StandardizedCID()
		if cid == 0 {
			s.stdErr = errors.InvalidParam("substance has no standardized compound")
			return
		}
		s.std, s.stdErr = compound.FromCID(ctx, s.svc, cid)
	})
	return s.std, s.stdErr
}

// DepositedCompound wraps the compound view embedded in the record as
// deposited, without standardization.  The result has no CID and misses
// most computed properties.  No network request is made.
func (s *Substance) DepositedCompound() (*compound.Compound, error) {
	record := s.embeddedCompound(chem.CompoundDeposited)
	if record == nil {
		return nil, errors.ResponseParse("record embeds no deposited compound")
	}
	c, err := compound.New(record)
	if err != nil {
		return nil, err
	}
	if s.svc != nil {
		c.Bind(s.svc)
	}
	return c, nil
}

// CIDs returns all CIDs produced when this substance was standardized.  The
// first call performs a network request; the result is cached.
func (s *Substance) CIDs(ctx context.Context) ([]int, error) {
	s.cidsOnce.Do(func() {
		sid, err := s.lazyKey()
		if err != nil {
			s.cidsErr = err
			return
		}
		s.cids, s.cidsErr = s.svc.CIDs(ctx, pug.Request{
			Identifier: strconv.Itoa(sid),
			Namespace:  pug.NamespaceSID,
			Domain:     pug.DomainSubstance,
		})
	})
	return s.cids, s.cidsErr
}

// AIDs returns the identifiers of the assays this substance was tested in.
// The first call performs a network request; the result is cached.
func (s *Substance) AIDs(ctx context.Context) ([]int, error) {
	s.aidsOnce.Do(func() {
		sid, err := s.lazyKey()
		if err != nil {
			s.aidsErr = err
			return
		}
		s.aids, s.aidsErr = s.svc.AIDs(ctx, pug.Request{
			Identifier: strconv.Itoa(sid),
			Namespace:  pug.NamespaceSID,
			Domain:     pug.DomainSubstance,
		})
	})
	return s.aids, s.aidsErr
}

func (s *Substance) lazyKey() (int, error) {
	if s.svc == nil {
		return 0, errors.InvalidParam("no client bound; construct via FromSID or Get, or call Bind")
	}
	sid := s.SID()
	if sid == 0 {
		return 0, errors.InvalidParam("record has no SID")
	}
	return sid, nil
}

// embeddedCompound returns the raw embedded compound record with the given
// id type tag, or nil.
func (s *Substance) embeddedCompound(idType chem.CompoundIDType) map[string]interface{} {
	for _, raw := range jsonx.Slice(s.record["compound"]) {
		record := jsonx.Map(raw)
		tag, ok := jsonx.Int(jsonx.Dig(record, "id", "type"))
		if ok && chem.CompoundIDType(tag) == idType {
			return record
		}
	}
	return nil
}

// substanceAccessors is the static registry behind ToMap.
var substanceAccessors = map[string]func(s *Substance) interface{}{
	"sid":              func(s *Substance) interface{} { return s.SID() },
	"synonyms":         func(s *Substance) interface{} { return s.Synonyms() },
	"source_name":      func(s *Substance) interface{} { return s.SourceName() },
	"source_id":        func(s *Substance) interface{} { return s.SourceID() },
	"standardized_cid": func(s *Substance) interface{} { return s.StandardizedCID() },
}

// ToMap renders the substance's derived view as a generic map.  The
// compound views and the network-backed CID and AID lists are never
// included; unknown property names are ignored.
func (s *Substance) ToMap(properties ...string) map[string]interface{} {
	if len(properties) == 0 {
		for name := range substanceAccessors {
			properties = append(properties, name)
		}
		sort.Strings(properties)
	}
	out := map[string]interface{}{}
	for _, name := range properties {
		if fn, ok := substanceAccessors[name]; ok {
			out[name] = fn(s)
		}
	}
	return out
}
