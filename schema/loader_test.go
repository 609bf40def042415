package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semschema/schema"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveSourcesFilesAndDirs(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.graphql", "type Query { ok: Boolean }")
	b := writeFile(t, dir, "nested/b.graphqls", "type Door { isOpen: Boolean }")
	writeFile(t, dir, "ignored.txt", "not a schema")

	paths, err := schema.ResolveSources([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, paths, "directory resolution must be recursive, filtered, and sorted")
}

func TestResolveSourcesDeduplicates(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.graphql", "type Query { ok: Boolean }")

	paths, err := schema.ResolveSources([]string{a, a, dir})
	require.NoError(t, err)
	assert.Equal(t, []string{a}, paths)
}

func TestResolveSourcesMissingPath(t *testing.T) {
	_, err := schema.ResolveSources([]string{"/does/not/exist.graphql"})
	assert.Error(t, err)
}

func TestResolveSourcesEmptyDir(t *testing.T) {
	_, err := schema.ResolveSources([]string{t.TempDir()})
	assert.Error(t, err, "a directory without SDL files is a configuration mistake, not an empty schema")
}

func TestLoadParsesMultipleFilesAsOneSchema(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "root.graphql", "type Query { cabin: Cabin }")
	writeFile(t, dir, "cabin.graphql", "type Cabin { isLocked: Boolean }")

	model, err := schema.LoadModel([]string{dir})
	require.NoError(t, err)
	require.Len(t, model.Definitions, 1)
	assert.Equal(t, "Cabin", model.Definitions[0].Name)
}

func TestLoadRejectsInvalidSDL(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.graphql", "type Query { cabin: Cabin }") // Cabin undefined

	_, err := schema.LoadModel([]string{dir})
	assert.Error(t, err)
}

func TestLoadNoFiles(t *testing.T) {
	_, err := schema.Load(nil)
	assert.Error(t, err)
}

func TestIsURL(t *testing.T) {
	assert.True(t, schema.IsURL("http://example.com/schema.graphql"))
	assert.True(t, schema.IsURL("https://example.com/schema.graphql"))
	assert.False(t, schema.IsURL("schemas/cabin.graphql"))
	assert.False(t, schema.IsURL("/abs/path/cabin.graphql"))
	assert.False(t, schema.IsURL("ftp://example.com/schema.graphql"))
}
