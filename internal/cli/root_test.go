package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/pubchem-go/internal/config"
	"github.com/turtacn/pubchem-go/internal/logging"
)

// runCLI executes the command tree against a stub server and returns
// captured stdout.
func runCLI(t *testing.T, handler http.HandlerFunc, args ...string) (string, error) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--base-url", server.URL}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCompoundCIDs(t *testing.T) {
	out, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/compound/name/cids/JSON")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"IdentifierList": {"CID": [2244]}}`)
	}, "compound", "cids", "aspirin")
	require.NoError(t, err)
	assert.JSONEq(t, `[2244]`, out)
}

func TestCompoundCIDs_TextOutput(t *testing.T) {
	out, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"IdentifierList": {"CID": [2244, 702]}}`)
	}, "compound", "cids", "aspirin", "--output", "text")
	require.NoError(t, err)
	assert.Equal(t, "2244\n702\n", out)
}

func TestSources(t *testing.T) {
	out, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/sources/substance/JSON")
		fmt.Fprint(w, `{"InformationList": {"SourceName": ["DTP/NCI"]}}`)
	}, "sources", "substance")
	require.NoError(t, err)
	assert.JSONEq(t, `["DTP/NCI"]`, out)
}

func TestSearch_InvalidType(t *testing.T) {
	_, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}, "search", "CCO", "--type", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search type")
}

func TestSearch_SimilarityWithThreshold(t *testing.T) {
	var sawThreshold bool
	out, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("Threshold") == "95" {
			sawThreshold = true
		}
		fmt.Fprint(w, `{"IdentifierList": {"CID": [702]}}`)
	}, "search", "CCO", "--type", "similarity", "--threshold", "95", "--poll-interval", "1ms")
	require.NoError(t, err)
	assert.True(t, sawThreshold)
	assert.JSONEq(t, `[702]`, out)
}

func TestProps(t *testing.T) {
	out, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/property/MolecularFormula,MolecularWeight/")
		fmt.Fprint(w, `{"PropertyTable": {"Properties": [{"CID": 2244, "MolecularFormula": "C9H8O4"}]}}`)
	}, "props", "aspirin", "--properties", "molecular_formula,MolecularWeight")
	require.NoError(t, err)
	assert.Contains(t, out, "C9H8O4")
}

func TestDownload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sdf")
	_, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "molfile\n$$$$\n")
	}, "download", "2244", "--format", "SDF", "--out", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "$$$$")
}

func TestSafety_NonNumericCID(t *testing.T) {
	_, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}, "safety", "aspirin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cid must be an integer")
}

func TestConfigFileOverridesApply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"IdentifierList": {"CID": [1]}}`)
	}))
	t.Cleanup(server.Close)

	cfgPath := filepath.Join(t.TempDir(), "pubchem.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"api:\n  base_url: "+server.URL+"\noutput:\n  format: text\n"), 0o644))

	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", cfgPath, "compound", "cids", "aspirin"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "1\n", out.String())
}

// recordingLogger captures SetLevel calls; all other methods discard.
type recordingLogger struct {
	logging.Logger
	levels []string
}

func (r *recordingLogger) SetLevel(level string) { r.levels = append(r.levels, level) }

func TestApplyConfigReload_LogLevel(t *testing.T) {
	rec := &recordingLogger{Logger: logging.NewNopLogger()}
	cliCtx := &CLIContext{
		Config: &config.Config{Log: logging.LogConfig{Level: "info"}},
		Logger: rec,
	}

	applyConfigReload(cliCtx, &config.Config{Log: logging.LogConfig{Level: "debug"}})
	assert.Equal(t, []string{"debug"}, rec.levels)
	assert.Equal(t, "debug", cliCtx.Config.Log.Level)

	// unchanged level leaves the logger alone
	applyConfigReload(cliCtx, &config.Config{Log: logging.LogConfig{Level: "debug"}})
	assert.Equal(t, []string{"debug"}, rec.levels)
}

func TestGetCLIContext_Uninitialised(t *testing.T) {
	cmd := &cobra.Command{}
	_, err := GetCLIContext(cmd)
	assert.Error(t, err)
}
