package pug

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/pubchem-go/pkg/errors"
)

func TestCIDs_IdentifierListEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/compound/name/cids/JSON")
		writeJSON(w, 200, `{"IdentifierList": {"CID": [2244, 3672]}}`)
	})
	cids, err := c.CIDs(context.Background(), Request{Identifier: "aspirin", Namespace: NamespaceName})
	require.NoError(t, err)
	assert.Equal(t, []int{2244, 3672}, cids)
}

func TestCIDs_InformationListEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"InformationList": {"Information": [
			{"SID": 1, "CID": [2244]},
			{"SID": 2, "CID": [702, 241]}
		]}}`)
	})
	cids, err := c.CIDs(context.Background(), Request{Identifier: "1,2", Namespace: NamespaceSID, Domain: DomainSubstance})
	require.NoError(t, err)
	assert.Equal(t, []int{2244, 702, 241}, cids)
}

func TestCIDs_NotFoundReturnsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 404, `{"Fault": {"Details": ["No CID found"]}}`)
	})
	cids, err := c.CIDs(context.Background(), Request{Identifier: "no-such-name", Namespace: NamespaceName})
	require.NoError(t, err)
	assert.Empty(t, cids)
}

func TestSIDs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/sids/")
		writeJSON(w, 200, `{"IdentifierList": {"SID": [10, 20]}}`)
	})
	sids, err := c.SIDs(context.Background(), Request{Identifier: "2244"})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, sids)
}

func TestAIDs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/aids/")
		writeJSON(w, 200, `{"IdentifierList": {"AID": [1000]}}`)
	})
	aids, err := c.AIDs(context.Background(), Request{Identifier: "2244"})
	require.NoError(t, err)
	assert.Equal(t, []int{1000}, aids)
}

func TestSynonyms(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"InformationList": {"Information": [
			{"CID": 2244, "Synonym": ["aspirin", "acetylsalicylic acid"]}
		]}}`)
	})
	sets, err := c.Synonyms(context.Background(), Request{Identifier: "aspirin", Namespace: NamespaceName})
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, 2244, sets[0].CID)
	assert.Equal(t, []string{"aspirin", "acetylsalicylic acid"}, sets[0].Synonyms)
}

func TestSynonyms_NotFoundReturnsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 404, `{}`)
	})
	sets, err := c.Synonyms(context.Background(), Request{Identifier: "no-such-name", Namespace: NamespaceName})
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestProperties_AliasesResolved(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(w, 200, `{"PropertyTable": {"Properties": [
			{"CID": 2244, "MolecularFormula": "C9H8O4", "MolecularWeight": "180.16"}
		]}}`)
	})
	rows, err := c.Properties(context.Background(), Request{Identifier: "2244"},
		[]string{"molecular_formula", "MolecularWeight"})
	require.NoError(t, err)
	assert.Contains(t, gotPath, "/property/MolecularFormula,MolecularWeight/")
	require.Len(t, rows, 1)
	assert.Equal(t, "C9H8O4", rows[0]["MolecularFormula"])
}

func TestProperties_NoPropertiesRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})
	_, err := c.Properties(context.Background(), Request{Identifier: "2244"}, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidParam, errors.GetCode(err))
}

func TestSources(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Contains(t, r.URL.Path, "/sources/substance/JSON")
		writeJSON(w, 200, `{"InformationList": {"SourceName": ["ChemIDplus", "DTP/NCI"]}}`)
	})
	names, err := c.Sources(context.Background(), DomainSubstance)
	require.NoError(t, err)
	assert.Equal(t, []string{"ChemIDplus", "DTP/NCI"}, names)
}

func TestSources_InvalidDomain(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})
	_, err := c.Sources(context.Background(), DomainCompound)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidParam, errors.GetCode(err))
}

func TestExtraOptions(t *testing.T) {
	v := ExtraOptions("Threshold", "95", "MaxRecords", "100")
	assert.Equal(t, "95", v.Get("Threshold"))
	assert.Equal(t, "100", v.Get("MaxRecords"))

	// Trailing key with no value is dropped.
	assert.Empty(t, ExtraOptions("lonely"))
}
