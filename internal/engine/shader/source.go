package shader

import (
	"path/filepath"
)

// Source names a shader pair that is embedded in the binary and can be
// overridden by <dir>/<Name>.vert and <dir>/<Name>.frag on disk.
type Source struct {
	Name     string
	Vertex   string
	Fragment string
}

// Paths returns the on-disk locations of the pair inside dir.
func (s Source) Paths(dir string) (vertexPath, fragmentPath string) {
	return filepath.Join(dir, s.Name+".vert"), filepath.Join(dir, s.Name+".frag")
}

// Build compiles the pair. An empty dir selects the embedded sources;
// otherwise both files are loaded from dir.
func (s Source) Build(dir string) (*Program, error) {
	if dir == "" {
		return New(s.Vertex, s.Fragment)
	}
	return Load(s.Paths(dir))
}
