package pug

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/turtacn/pubchem-go/pkg/errors"
)

// Record domains.
const (
	DomainCompound  = "compound"
	DomainSubstance = "substance"
	DomainAssay     = "assay"
	DomainSources   = "sources"
)

// Identifier namespaces.  Namespaces outside this list are passed through
// to the service verbatim.
const (
	NamespaceCID      = "cid"
	NamespaceName     = "name"
	NamespaceSMILES   = "smiles"
	NamespaceSDF      = "sdf"
	NamespaceInChI    = "inchi"
	NamespaceInChIKey = "inchikey"
	NamespaceFormula  = "formula"
	NamespaceSID      = "sid"
	NamespaceAID      = "aid"
	NamespaceListKey  = "listkey"
	NamespaceSourceID = "sourceid"
)

// Structure search types.
const (
	SearchSubstructure   = "substructure"
	SearchSuperstructure = "superstructure"
	SearchSimilarity     = "similarity"
	SearchIdentity       = "identity"
	SearchXref           = "xref"
)

// Output formats.  Formats other than JSON and SDF are pass-through and
// only meaningful for Download.
const (
	OutputJSON = "JSON"
	OutputSDF  = "SDF"
	OutputXML  = "XML"
	OutputASNT = "ASNT"
	OutputASNB = "ASNB"
	OutputCSV  = "CSV"
	OutputPNG  = "PNG"
	OutputTXT  = "TXT"
)

// Request describes one PUG REST call in service terms.  The zero values of
// Namespace, Domain and Output default to "cid", "compound" and "JSON".
type Request struct {
	// Identifier is the search query: a CID, a name, a SMILES string, a
	// comma-joined identifier list, or a listkey ticket.
	Identifier string

	Namespace  string
	Domain     string
	Operation  string
	Output     string
	SearchType string

	// Options become the form-encoded query string appended to the URL
	// (e.g. Threshold=95 for similarity searches).
	Options url.Values
}

// Spec is a fully built request description: method, URL, and the optional
// form-encoded POST body.  Building a Spec performs no I/O.
type Spec struct {
	Method string
	URL    string
	Body   string
}

// normalize applies the documented defaults in place.
func (r *Request) normalize() {
	if r.Namespace == "" && r.Domain != DomainSources {
		r.Namespace = NamespaceCID
	}
	if r.Domain == "" {
		r.Domain = DomainCompound
	}
	if r.Output == "" {
		r.Output = OutputJSON
	}
}

// pathEmbedded reports whether the identifier belongs in the URL path
// rather than a POST body.  The service enforces a path-length limit for
// some query shapes and requires POST for arbitrarily long identifier
// lists, so only the namespaces and search types that the service resolves
// positionally embed the identifier.
func (r *Request) pathEmbedded() bool {
	switch r.Namespace {
	case NamespaceListKey, NamespaceFormula, NamespaceSourceID:
		return true
	}
	if r.SearchType == SearchXref {
		return true
	}
	if r.SearchType != "" && r.Namespace == NamespaceCID {
		return true
	}
	return r.Domain == DomainSources
}

// Build assembles the request Spec against the given base URL.
//
// The path is the ordered concatenation of the non-empty segments
// base/domain/searchtype/namespace/identifier/operation/output, with the
// identifier present only in path-embedded mode; otherwise the identifier
// is sent as a form-encoded POST body keyed by the namespace name.
func (r Request) Build(base string) (*Spec, error) {
	if r.Identifier == "" {
		return nil, errors.InvalidParam("identifier cannot be empty")
	}
	r.normalize()

	identifier := r.Identifier
	// Source identifiers may contain slashes, which the service cannot
	// route; it expects them folded to dots.
	if r.Namespace == NamespaceSourceID {
		identifier = strings.ReplaceAll(identifier, "/", ".")
	}

	method := http.MethodPost
	body := ""
	var urlid string
	if r.pathEmbedded() {
		method = http.MethodGet
		urlid = url.PathEscape(identifier)
	} else {
		form := url.Values{}
		form.Set(r.Namespace, identifier)
		body = form.Encode()
	}

	segments := make([]string, 0, 7)
	for _, seg := range []string{base, r.Domain, r.SearchType, r.Namespace, urlid, r.Operation, r.Output} {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	u := strings.Join(segments, "/")
	if len(r.Options) > 0 {
		u += "?" + r.Options.Encode()
	}

	return &Spec{Method: method, URL: u, Body: body}, nil
}

// JoinIDs renders a list of numeric identifiers as the comma-joined string
// form the service expects.
func JoinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
