package spin3d

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/log"
)

func LoadMeshFromDXFFile(fileName string) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open DXF file %s: %w", fileName, err)
	}
	defer file.Close()

	mesh, err := LoadMeshFromDXF(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing DXF file %s: %w", fileName, err)
	}
	return mesh, nil
}

// dxfEntity collects the coordinate groups of one entity. Group codes 10-13,
// 20-23 and 30-33 hold x, y and z of corners 0 to 3.
type dxfEntity struct {
	kind    string
	corners [4]Vector3
	seen    int // highest corner index seen, plus one
}

func (e *dxfEntity) set(code int, v float64) {
	corner := code % 10
	if corner > 3 {
		return
	}
	switch code / 10 {
	case 1:
		e.corners[corner].X = v
	case 2:
		e.corners[corner].Y = v
	case 3:
		e.corners[corner].Z = v
	default:
		return
	}
	e.seen = max(e.seen, corner+1)
}

// LoadMeshFromDXF reads 3DFACE and LINE entities from an ASCII DXF stream.
// A 3DFACE whose fourth corner repeats the third becomes a triangle and a
// LINE becomes a two-index edge face. Other entities, and entities inside
// other sections such as BLOCKS, are skipped.
func LoadMeshFromDXF(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	mesh := NewMesh()
	skipped := make(map[string]int)

	// Geometry is read from the ENTITIES section, or from anywhere in a file
	// without sections. Block definitions are skipped.
	section := ""
	expectName := false
	var current *dxfEntity
	flush := func() {
		if current == nil {
			return
		}
		switch current.kind {
		case "3DFACE":
			mesh.AddFacePoints(current.corners[:max(current.seen, 3)])
		case "LINE":
			mesh.AddFacePoints(current.corners[:2])
		}
		current = nil
	}

	for {
		if !scanner.Scan() {
			break
		}
		codeText := strings.TrimSpace(scanner.Text())
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file after group code %q", codeText)
		}
		value := strings.TrimSpace(scanner.Text())
		code, err := strconv.Atoi(codeText)
		if err != nil {
			return nil, fmt.Errorf("could not parse group code '%s': %w", codeText, err)
		}

		if code == 0 {
			flush()
			expectName = value == "SECTION"
			switch value {
			case "SECTION", "EOF":
			case "ENDSEC":
				section = ""
			case "3DFACE", "LINE":
				if section != "" && section != "ENTITIES" {
					skipped[value]++
					break
				}
				current = &dxfEntity{kind: value}
			default:
				skipped[value]++
			}
			if value == "EOF" {
				break
			}
			continue
		}
		if code == 2 && expectName {
			section = value
			expectName = false
			continue
		}
		if current == nil || code < 10 || code > 33 {
			continue
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse float value '%s': %w", value, err)
		}
		current.set(code, v)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from DXF source: %w", err)
	}
	for kind, n := range skipped {
		log.Warnf("DXF: skipped %d %s entities", n, kind)
	}
	return mesh, nil
}

func SaveDXF(fileName string, mesh *Mesh) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create DXF file %s: %w", fileName, err)
	}
	defer file.Close()
	return WriteDXF(file, mesh)
}

// WriteDXF writes the mesh as 3DFACE entities (triangles repeat their third
// corner, larger polygons are split into a fan) and edge faces as LINE
// entities.
func WriteDXF(w io.Writer, mesh *Mesh) error {
	writer := bufio.NewWriter(w)

	writePair := func(code int, value any) {
		_, _ = fmt.Fprintf(writer, "%d\n%v\n", code, value)
	}
	writePoint := func(corner int, p Vector3) {
		writePair(10+corner, p.X)
		writePair(20+corner, p.Y)
		writePair(30+corner, p.Z)
	}
	write3DFace := func(p0, p1, p2, p3 Vector3) {
		writePair(0, "3DFACE")
		writePair(8, "0")
		writePoint(0, p0)
		writePoint(1, p1)
		writePoint(2, p2)
		writePoint(3, p3)
	}

	writePair(0, "SECTION")
	writePair(2, "HEADER")
	writePair(0, "ENDSEC")
	writePair(0, "SECTION")
	writePair(2, "ENTITIES")

	for _, f := range mesh.Faces {
		pts := f.gather(nil, mesh.Vertices)
		switch {
		case len(pts) == 2:
			writePair(0, "LINE")
			writePair(8, "0")
			writePoint(0, pts[0])
			writePoint(1, pts[1])
		case len(pts) == 3:
			write3DFace(pts[0], pts[1], pts[2], pts[2])
		case len(pts) == 4:
			write3DFace(pts[0], pts[1], pts[2], pts[3])
		case len(pts) > 4:
			for i := 2; i < len(pts); i++ {
				write3DFace(pts[0], pts[i-1], pts[i], pts[i])
			}
		}
	}

	writePair(0, "ENDSEC")
	writePair(0, "EOF")
	return writer.Flush()
}
