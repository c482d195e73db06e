package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShaderTerminates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.vert"), []byte("void main() {}\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.frag"), []byte("void main() {}\x00"), 0o600))

	vs, fs, err := LoadProgramSources(dir, "a")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(vs, "\n\x00"))
	assert.Equal(t, 1, strings.Count(fs, "\x00"))
}

func TestLoadShaderErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadShader(dir, "missing.vert")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.frag"), nil, 0o600))
	_, err = LoadShader(dir, "empty.frag")
	assert.ErrorContains(t, err, "empty file")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.vert"), []byte("x"), 0o600))
	_, _, err = LoadProgramSources(dir, "b")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRepoShadersLoad(t *testing.T) {
	vs, fs, err := LoadProgramSources(filepath.Join("..", "..", "assets", "shaders"), "unlit")
	require.NoError(t, err)
	assert.Contains(t, vs, "sg_modelViewMatrix")
	assert.Contains(t, fs, "sg_material")
}
