package assay

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/pubchem-go/pkg/chem"
	"github.com/turtacn/pubchem-go/pkg/errors"
	"github.com/turtacn/pubchem-go/pkg/pug"
)

const testRecord = `{
  "assay": {
    "descr": {
      "aid": {"id": 490, "version": 2},
      "name": "NCI human tumor cell line growth inhibition assay",
      "description": ["Growth inhibition of the LXFL 529 cell line.", "Second paragraph."],
      "project_category": 1,
      "comment": ["first comment", "", "second comment", ""],
      "results": [{"tid": 1, "name": "Potency", "unit": 1}],
      "target": [{"name": "Tumor cell line", "mol_id": 1}],
      "revision": 3
    }
  }
}`

func parseRecord(t *testing.T, text string) map[string]interface{} {
	t.Helper()
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text), &record))
	return record
}

func testAssay(t *testing.T) *Assay {
	t.Helper()
	a, err := New(parseRecord(t, testRecord))
	require.NoError(t, err)
	return a
}

type fakeService struct {
	result  map[string]interface{}
	lastReq pug.Request
}

func (f *fakeService) GetJSON(ctx context.Context, req pug.Request) (map[string]interface{}, error) {
	f.lastReq = req
	return f.result, nil
}

func TestAccessors(t *testing.T) {
	a := testAssay(t)
	assert.Equal(t, 490, a.AID())
	assert.Equal(t, 2, a.AIDVersion())
	assert.Equal(t, "NCI human tumor cell line growth inhibition assay", a.Name())
	assert.Len(t, a.Description(), 2)
	assert.Equal(t, 3, a.Revision())

	category, ok := a.ProjectCategory()
	require.True(t, ok)
	assert.Equal(t, chem.ProjectMLSCN, category)

	results := a.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "Potency", results[0]["name"])

	targets := a.Targets()
	require.Len(t, targets, 1)
	assert.Equal(t, "Tumor cell line", targets[0]["name"])
}

func TestComments_BlanksFiltered(t *testing.T) {
	a := testAssay(t)
	assert.Equal(t, []string{"first comment", "second comment"}, a.Comments())
}

func TestProjectCategory_Missing(t *testing.T) {
	a, err := New(parseRecord(t, `{"assay": {"descr": {"aid": {"id": 1}}}}`))
	require.NoError(t, err)
	_, ok := a.ProjectCategory()
	assert.False(t, ok)
}

func TestFromAID(t *testing.T) {
	svc := &fakeService{result: map[string]interface{}{
		"PC_AssayContainer": []interface{}{parseRecord(t, testRecord)},
	}}
	a, err := FromAID(context.Background(), svc, 490)
	require.NoError(t, err)
	assert.Equal(t, 490, a.AID())
	assert.Equal(t, "description", svc.lastReq.Operation)
	assert.Equal(t, pug.DomainAssay, svc.lastReq.Domain)
}

func TestFromAID_EmptyEnvelope(t *testing.T) {
	svc := &fakeService{result: map[string]interface{}{"PC_AssayContainer": []interface{}{}}}
	_, err := FromAID(context.Background(), svc, 1)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeResponseParse, errors.GetCode(err))
}

func TestGet(t *testing.T) {
	svc := &fakeService{result: map[string]interface{}{
		"PC_AssayContainer": []interface{}{parseRecord(t, testRecord)},
	}}
	assays, err := Get(context.Background(), svc, pug.Request{Identifier: "490"})
	require.NoError(t, err)
	require.Len(t, assays, 1)
	assert.Equal(t, pug.NamespaceAID, svc.lastReq.Namespace)
	assert.Equal(t, "description", svc.lastReq.Operation)
}

func TestGet_NotFoundYieldsEmpty(t *testing.T) {
	svc := &fakeService{result: nil}
	assays, err := Get(context.Background(), svc, pug.Request{Identifier: "0"})
	require.NoError(t, err)
	assert.Empty(t, assays)
}

func TestEqual(t *testing.T) {
	a := testAssay(t)
	b := testAssay(t)
	assert.True(t, a.Equal(b))

	c, err := New(parseRecord(t, `{"assay": {"descr": {"aid": {"id": 1}}}}`))
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestToMap(t *testing.T) {
	a := testAssay(t)
	m := a.ToMap()
	assert.Equal(t, 490, m["aid"])
	assert.Equal(t, 1, m["project_category"])

	m = a.ToMap("name", "bogus")
	assert.Len(t, m, 1)
	assert.Equal(t, "NCI human tumor cell line growth inhibition assay", m["name"])
}
