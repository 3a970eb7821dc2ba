package spin3d

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMeshBuiltins(t *testing.T) {
	testCases := []struct {
		name  string
		faces int
	}{
		{"cube", 6},
		{"torus", 32 * 16},
		{"sphere", 16 * 10},
		{"terrain", 24 * 24},
		{"Cube", 6},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mesh = tc.name
			m, err := LoadMesh(cfg)
			if err != nil {
				t.Fatalf("LoadMesh: %v", err)
			}
			if len(m.Faces) != tc.faces {
				t.Errorf("got %d faces, want %d", len(m.Faces), tc.faces)
			}
			if r := m.Radius(); r >= cfg.DepthOffset {
				t.Errorf("mesh radius %v reaches the camera at depth %v", r, cfg.DepthOffset)
			}
		})
	}
}

func TestLoadMeshTiltAndReverse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tilt = 0
	flat, err := LoadMesh(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Tilt = 0.3
	cfg.Reverse = true
	tilted, err := LoadMesh(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if flat.Vertices[0] == tilted.Vertices[0] {
		t.Errorf("tilt did not move the vertices")
	}
	if tilted.Faces[0].Indices[0] != flat.Faces[0].Indices[3] {
		t.Errorf("faces not reversed: %v vs %v", tilted.Faces[0].Indices, flat.Faces[0].Indices)
	}
}

func TestLoadMeshFiles(t *testing.T) {
	dir := t.TempDir()
	plyPath := filepath.Join(dir, "pyramid.PLY")
	if err := os.WriteFile(plyPath, []byte(plyPyramid), 0o600); err != nil {
		t.Fatal(err)
	}
	dxfPath := filepath.Join(dir, "sample.dxf")
	if err := os.WriteFile(dxfPath, []byte(dxfSample), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	for _, path := range []string{plyPath, dxfPath} {
		cfg.Mesh = path
		m, err := LoadMesh(cfg)
		if err != nil {
			t.Fatalf("LoadMesh(%s): %v", path, err)
		}
		if r := m.Radius(); !almostEqual(r, 1) {
			t.Errorf("%s: radius %v, want 1 after fitting", path, r)
		}
	}

	for _, bad := range []string{"teapot", filepath.Join(dir, "missing.ply"), filepath.Join(dir, "mesh.obj")} {
		cfg.Mesh = bad
		if _, err := LoadMesh(cfg); err == nil {
			t.Errorf("LoadMesh(%q) succeeded", bad)
		}
	}
}
