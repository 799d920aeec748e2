package assets

import (
	"embed"
	"fmt"
	"path"
)

//go:embed shaders/*.glsl
var shaders embed.FS

// LoadShader returns an embedded GLSL source, null-terminated for gl.Strs.
func LoadShader(name string) (string, error) {
	b, err := shaders.ReadFile(path.Join("shaders", name))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
