package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestInt(t *testing.T) {
	m := decode(t, `{"a": 7, "b": "12", "c": "x", "d": 3.9}`)

	i, ok := Int(m["a"])
	assert.True(t, ok)
	assert.Equal(t, 7, i)

	i, ok = Int(m["b"])
	assert.True(t, ok)
	assert.Equal(t, 12, i)

	_, ok = Int(m["c"])
	assert.False(t, ok)

	i, ok = Int(m["d"])
	assert.True(t, ok)
	assert.Equal(t, 3, i)
}

func TestSlices(t *testing.T) {
	m := decode(t, `{"ints": [1, 2, "3", null], "floats": [1.5, 2], "strs": ["a", 1, "b"]}`)
	assert.Equal(t, []int{1, 2, 3}, IntSlice(m["ints"]))
	assert.Equal(t, []float64{1.5, 2}, FloatSlice(m["floats"]))
	assert.Equal(t, []string{"a", "b"}, StringSlice(m["strs"]))
	assert.Nil(t, IntSlice(m["missing"]))
}

func TestDig(t *testing.T) {
	m := decode(t, `{"id": {"id": {"cid": 2244}}}`)
	cid, ok := Int(Dig(m, "id", "id", "cid"))
	assert.True(t, ok)
	assert.Equal(t, 2244, cid)

	assert.Nil(t, Dig(m, "id", "nope", "cid"))
	assert.Nil(t, Dig(m, "id", "id", "cid", "deeper"))
}
