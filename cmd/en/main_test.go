package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jultty/en/internal/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var out bytes.Buffer
	err := render(strings.NewReader("# Title\nSee |Home|."), &out, false, markup.Options{})
	require.NoError(t, err)
	assert.Equal(t, `<h1 id="Title">Title</h1><p>See <a href="/node/Home">Home</a>.</p>`+"\n", out.String())
}

func TestRender_Tokens(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, render(strings.NewReader("a"), &out, true, markup.Options{}))
	assert.Equal(t, "open paragraph\nliteral \"a\"\nclosed paragraph\n", out.String())
}

func TestRender_Error(t *testing.T) {
	var out bytes.Buffer
	err := render(strings.NewReader("# open"), &out, false, markup.Options{})
	assert.ErrorIs(t, err, markup.ErrUnclosedHeader)
	assert.Empty(t, out.String())
}

func TestConvertGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.toml")
	require.NoError(t, os.WriteFile(path, []byte("root_node = \"A\"\n[nodes.A]\ntext = \"hi\"\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, convertGraph(path, "json", &out))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "A", decoded["root_node"])

	assert.Error(t, convertGraph(path, "xml", &out))
	assert.Error(t, convertGraph(filepath.Join(t.TempDir(), "missing.toml"), "json", &out))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "json", "warn")
	log.Info("hidden")
	log.Warn("shown", "key", "value")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	log = newLogger(&buf, "text", "debug")
	log.Debug("details", "key", "value")
	assert.Contains(t, buf.String(), "details")
	assert.Contains(t, buf.String(), "key=value")
}
