// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docio

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/outline-engine/pkg/types"
)

func TestReadDocumentLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.org")
	require.NoError(t, os.WriteFile(path, []byte("* Headline\nbody\n"), 0o644))

	text, err := ReadDocument(context.Background(), path, types.FetchConfig{})
	require.NoError(t, err)
	assert.Equal(t, "* Headline\nbody\n", text)
}

func TestReadDocumentMissingFile(t *testing.T) {
	_, err := ReadDocument(context.Background(), filepath.Join(t.TempDir(), "absent.org"), types.FetchConfig{})
	assert.Error(t, err)
}

func TestReadDocumentURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "outline-engine-test", r.Header.Get("User-Agent"))
		w.Write([]byte("* Remote\n"))
	}))
	defer ts.Close()

	cfg := types.FetchConfig{HTTPConfig: types.HTTPConfig{UserAgent: "outline-engine-test"}}
	text, err := ReadDocument(context.Background(), ts.URL, cfg)
	require.NoError(t, err)
	assert.Equal(t, "* Remote\n", text)
}

func TestReadDocumentURLErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := ReadDocument(context.Background(), ts.URL, types.FetchConfig{})
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", ""}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\r\nb"))
	assert.Equal(t, []string{""}, SplitLines(""))
}

func TestWriteOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput("", "to writer", &buf))
	assert.Equal(t, "to writer", buf.String())

	path := filepath.Join(t.TempDir(), "out.md")
	require.NoError(t, WriteOutput(path, "to file", &buf))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "to file", string(data))
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("http://example.com/doc.org"))
	assert.True(t, IsURL("https://example.com/doc.org"))
	assert.False(t, IsURL("doc.org"))
	assert.False(t, IsURL("/abs/path/doc.org"))
}
