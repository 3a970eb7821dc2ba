package spin3d

import (
	"fmt"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"github.com/go-gl/mathgl/mgl64"
)

// LoadMesh builds the mesh named by cfg.Mesh: one of the built-in shapes or
// a .ply/.dxf file. Files are centred and scaled to a unit radius. The
// configured tilt is then applied once so the spin shows more than the
// sides.
func LoadMesh(cfg Config) (*Mesh, error) {
	var mesh *Mesh
	var err error
	switch name := cfg.Mesh; strings.ToLower(name) {
	case "cube":
		mesh = NewCube(1.4)
	case "torus":
		mesh = NewTorus(1.0, 0.38, 32, 16)
	case "sphere":
		mesh = NewUVSphere(1.2, 16, 10)
	case "terrain":
		mesh = NewTerrain(24, 24, 0.1, 0.5, cfg.Seed)
	default:
		switch strings.ToLower(filepath.Ext(name)) {
		case ".ply":
			mesh, err = LoadMeshFromPLYFile(name)
		case ".dxf":
			mesh, err = LoadMeshFromDXFFile(name)
		default:
			return nil, fmt.Errorf("unknown mesh %q", name)
		}
		if err != nil {
			return nil, err
		}
		mesh.FitTo(1)
	}

	if cfg.Reverse {
		mesh.ReverseWinding()
	}
	if cfg.Tilt != 0 {
		mesh.Transform(mgl64.HomogRotate3DX(cfg.Tilt))
	}
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	log.Infof("Mesh %s: %d vertices, %d faces (%d polygons)",
		cfg.Mesh, len(mesh.Vertices), len(mesh.Faces), mesh.PolygonCount())
	return mesh, nil
}
