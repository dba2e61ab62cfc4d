package pug

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/pubchem-go/pkg/errors"
)

func TestDownload_WritesPayloadVerbatim(t *testing.T) {
	payload := "PNG-ish bytes \x00\x01\x02"
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/PNG")
		w.Write([]byte(payload))
	})

	path := filepath.Join(t.TempDir(), "aspirin.png")
	err := c.Download(context.Background(), Request{Identifier: "2244", Output: OutputPNG}, path, false)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, string(got))
}

func TestDownload_RefusesOverwrite(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("new content"))
	})

	path := filepath.Join(t.TempDir(), "existing.sdf")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0o644))

	err := c.Download(context.Background(), Request{Identifier: "2244", Output: OutputSDF}, path, false)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileExists, errors.GetCode(err))

	got, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "old content", string(got))
}

func TestDownload_OverwriteAllowed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("new content"))
	})

	path := filepath.Join(t.TempDir(), "existing.sdf")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0o644))

	err := c.Download(context.Background(), Request{Identifier: "2244", Output: OutputSDF}, path, true)
	require.NoError(t, err)

	got, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "new content", string(got))
}

func TestDownload_RequestErrorLeavesFileAlone(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 500, `{}`)
	})

	path := filepath.Join(t.TempDir(), "out.json")
	err := c.Download(context.Background(), Request{Identifier: "2244"}, path, false)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeServerError, errors.GetCode(err))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
