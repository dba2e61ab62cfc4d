package substance

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/pubchem-go/pkg/errors"
	"github.com/turtacn/pubchem-go/pkg/pug"
)

const testRecord = `{
  "sid": {"id": 24864499},
  "source": {"db": {"name": "DTP/NCI", "source_id": {"str": "NSC755893"}}},
  "synonyms": ["NSC755893", "bortezomib"],
  "compound": [
    {"id": {"type": 0}, "atoms": {"aid": [1], "element": [6]}},
    {"id": {"type": 1, "id": {"cid": 387447}}}
  ]
}`

func parseRecord(t *testing.T, text string) map[string]interface{} {
	t.Helper()
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text), &record))
	return record
}

func testSubstance(t *testing.T) *Substance {
	t.Helper()
	s, err := New(parseRecord(t, testRecord))
	require.NoError(t, err)
	return s
}

type fakeService struct {
	getCalls int
	cidCalls int
	aidCalls int
	result   map[string]interface{}
}

func (f *fakeService) GetJSON(ctx context.Context, req pug.Request) (map[string]interface{}, error) {
	f.getCalls++
	return f.result, nil
}

func (f *fakeService) CIDs(ctx context.Context, req pug.Request) ([]int, error) {
	f.cidCalls++
	return []int{387447}, nil
}

func (f *fakeService) SIDs(ctx context.Context, req pug.Request) ([]int, error) {
	return nil, nil
}

func (f *fakeService) AIDs(ctx context.Context, req pug.Request) ([]int, error) {
	f.aidCalls++
	return []int{504466}, nil
}

func (f *fakeService) Synonyms(ctx context.Context, req pug.Request) ([]pug.SynonymSet, error) {
	return nil, nil
}

func TestAccessors(t *testing.T) {
	s := testSubstance(t)
	assert.Equal(t, 24864499, s.SID())
	assert.Equal(t, "DTP/NCI", s.SourceName())
	assert.Equal(t, "NSC755893", s.SourceID())
	assert.Equal(t, []string{"NSC755893", "bortezomib"}, s.Synonyms())
	assert.Equal(t, 387447, s.StandardizedCID())
}

func TestStandardizedCID_NotStandardizable(t *testing.T) {
	s, err := New(parseRecord(t, `{"sid": {"id": 1}, "compound": [{"id": {"type": 0}}]}`))
	require.NoError(t, err)
	assert.Zero(t, s.StandardizedCID())
}

func TestDepositedCompound(t *testing.T) {
	s := testSubstance(t)
	c, err := s.DepositedCompound()
	require.NoError(t, err)
	assert.Zero(t, c.CID())
	assert.Len(t, c.Atoms(), 1)
}

func TestDepositedCompound_Missing(t *testing.T) {
	s, err := New(parseRecord(t, `{"sid": {"id": 1}}`))
	require.NoError(t, err)
	_, err = s.DepositedCompound()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeResponseParse, errors.GetCode(err))
}

func TestStandardizedCompound_FetchedOnce(t *testing.T) {
	svc := &fakeService{result: map[string]interface{}{
		"PC_Compounds": []interface{}{parseRecord(t, `{"id": {"id": {"cid": 387447}}}`)},
	}}
	s := testSubstance(t)
	s.Bind(svc)

	for i := 0; i < 2; i++ {
		c, err := s.StandardizedCompound(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 387447, c.CID())
	}
	assert.Equal(t, 1, svc.getCalls)
}

func TestCIDsAndAIDs_FetchedOnce(t *testing.T) {
	svc := &fakeService{}
	s := testSubstance(t)
	s.Bind(svc)

	for i := 0; i < 2; i++ {
		cids, err := s.CIDs(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []int{387447}, cids)

		aids, err := s.AIDs(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []int{504466}, aids)
	}
	assert.Equal(t, 1, svc.cidCalls)
	assert.Equal(t, 1, svc.aidCalls)
}

func TestCIDs_NoClientBound(t *testing.T) {
	s := testSubstance(t)
	_, err := s.CIDs(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidParam, errors.GetCode(err))
}

func TestFromSID(t *testing.T) {
	svc := &fakeService{result: map[string]interface{}{
		"PC_Substances": []interface{}{parseRecord(t, testRecord)},
	}}
	s, err := FromSID(context.Background(), svc, 24864499)
	require.NoError(t, err)
	assert.Equal(t, 24864499, s.SID())
}

func TestFromSID_EmptyEnvelope(t *testing.T) {
	svc := &fakeService{result: map[string]interface{}{"PC_Substances": []interface{}{}}}
	_, err := FromSID(context.Background(), svc, 1)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeResponseParse, errors.GetCode(err))
}

func TestGet_NotFoundYieldsEmpty(t *testing.T) {
	svc := &fakeService{result: nil}
	substances, err := Get(context.Background(), svc, pug.Request{Identifier: "no-such-name", Namespace: pug.NamespaceName})
	require.NoError(t, err)
	assert.Empty(t, substances)
}

func TestEqual(t *testing.T) {
	a := testSubstance(t)
	b := testSubstance(t)
	assert.True(t, a.Equal(b))

	c, err := New(parseRecord(t, `{"sid": {"id": 2}}`))
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestToMap(t *testing.T) {
	s := testSubstance(t)
	m := s.ToMap()
	assert.Equal(t, 24864499, m["sid"])
	assert.Equal(t, "DTP/NCI", m["source_name"])
	assert.NotContains(t, m, "cids")
	assert.NotContains(t, m, "aids")

	m = s.ToMap("sid", "bogus")
	assert.Len(t, m, 1)
}
