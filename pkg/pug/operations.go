package pug

import (
	"context"
	"net/url"
	"strings"

	"github.com/turtacn/pubchem-go/internal/jsonx"
	"github.com/turtacn/pubchem-go/pkg/chem"
	"github.com/turtacn/pubchem-go/pkg/errors"
)

// identifierList extracts the ID array named key from the two envelope
// shapes the service returns for id-list operations: a flat
// IdentifierList, or an InformationList with one entry per input
// identifier.
func identifierList(result map[string]interface{}, key string) []int {
	if result == nil {
		return []int{}
	}
	if ids := jsonx.Dig(result, "IdentifierList", key); ids != nil {
		return jsonx.IntSlice(ids)
	}
	out := []int{}
	for _, info := range jsonx.Slice(jsonx.Dig(result, "InformationList", "Information")) {
		out = append(out, jsonx.IntSlice(jsonx.Map(info)[key])...)
	}
	return out
}

// CIDs returns the compound identifiers matching the query.
func (c *Client) CIDs(ctx context.Context, req Request) ([]int, error) {
	req.Operation = "cids"
	result, err := c.GetJSON(ctx, req)
	if err != nil {
		return nil, err
	}
	return identifierList(result, "CID"), nil
}

// SIDs returns the substance identifiers matching the query.
func (c *Client) SIDs(ctx context.Context, req Request) ([]int, error) {
	req.Operation = "sids"
	result, err := c.GetJSON(ctx, req)
	if err != nil {
		return nil, err
	}
	return identifierList(result, "SID"), nil
}

// AIDs returns the assay identifiers matching the query.
func (c *Client) AIDs(ctx context.Context, req Request) ([]int, error) {
	req.Operation = "aids"
	result, err := c.GetJSON(ctx, req)
	if err != nil {
		return nil, err
	}
	return identifierList(result, "AID"), nil
}

// SynonymSet is one identifier's ranked synonym list.
type SynonymSet struct {
	CID      int
	SID      int
	Synonyms []string
}

// Synonyms returns the ranked name lists for the identifiers matching the
// query, one set per matched record.
func (c *Client) Synonyms(ctx context.Context, req Request) ([]SynonymSet, error) {
	req.Operation = "synonyms"
	result, err := c.GetJSON(ctx, req)
	if err != nil {
		return nil, err
	}
	sets := []SynonymSet{}
	for _, info := range jsonx.Slice(jsonx.Dig(result, "InformationList", "Information")) {
		m := jsonx.Map(info)
		set := SynonymSet{Synonyms: jsonx.StringSlice(m["Synonym"])}
		set.CID, _ = jsonx.Int(m["CID"])
		set.SID, _ = jsonx.Int(m["SID"])
		sets = append(sets, set)
	}
	return sets, nil
}

// Properties retrieves a property table for the identifiers matching the
// query.  Property names may be given either in the service's CamelCase
// form or as the underscore aliases used by the Compound accessors; they
// are resolved through chem.PropertyName.  One row is returned per matched
// compound.
func (c *Client) Properties(ctx context.Context, req Request, properties []string) ([]map[string]interface{}, error) {
	if len(properties) == 0 {
		return nil, errors.InvalidParam("at least one property is required")
	}
	mapped := make([]string, len(properties))
	for i, p := range properties {
		mapped[i] = chem.PropertyName(p)
	}
	req.Domain = DomainCompound
	req.Operation = "property/" + strings.Join(mapped, ",")

	result, err := c.GetJSON(ctx, req)
	if err != nil {
		return nil, err
	}
	rows := []map[string]interface{}{}
	for _, row := range jsonx.Slice(jsonx.Dig(result, "PropertyTable", "Properties")) {
		if m := jsonx.Map(row); m != nil {
			rows = append(rows, m)
		}
	}
	return rows, nil
}

// Sources lists all current depositors of substance or assay records.
// domain must be "substance" or "assay".
func (c *Client) Sources(ctx context.Context, domain string) ([]string, error) {
	if domain != DomainSubstance && domain != DomainAssay {
		return nil, errors.InvalidParam("sources domain must be substance or assay")
	}
	// The sources listing inverts the usual layout: the record domain is
	// the identifier and "sources" is the path domain.
	body, err := c.Get(ctx, Request{
		Identifier: domain,
		Domain:     DomainSources,
		Output:     OutputJSON,
	})
	if err != nil {
		return nil, err
	}
	var result map[string]interface{}
	if err := unmarshalJSON(body, &result); err != nil {
		return nil, err
	}
	return jsonx.StringSlice(jsonx.Dig(result, "InformationList", "SourceName")), nil
}

// ExtraOptions builds a url.Values from alternating key/value pairs, a
// convenience for one-off request options.
func ExtraOptions(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}
