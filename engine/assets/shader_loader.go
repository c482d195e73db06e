package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadShader reads dir/name into a null-terminated string for OpenGL.
func LoadShader(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("load shader %q: empty file", name)
	}
	// Ensure null termination for gl.Str
	if b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// LoadProgramSources loads <name>.vert and <name>.frag from dir.
func LoadProgramSources(dir, name string) (vert, frag string, err error) {
	if vert, err = LoadShader(dir, name+".vert"); err != nil {
		return "", "", err
	}
	if frag, err = LoadShader(dir, name+".frag"); err != nil {
		return "", "", err
	}
	return vert, frag, nil
}
