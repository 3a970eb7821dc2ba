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

func LoadMeshFromPLYFile(fileName string) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	mesh, err := LoadMeshFromPLYReader(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing PLY file %s: %w", fileName, err)
	}
	return mesh, nil
}

// LoadMeshFromPLYReader reads an ASCII PLY file. Only the first three vertex
// properties (x, y, z) and the face index lists are used; colors and any
// other properties are ignored. Vertex order is preserved so face indices
// refer to the same points as in the file.
func LoadMeshFromPLYReader(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)

	var vertexCount, faceCount int
	headerDone := false
	lineNo := 0

	for !headerDone && scanner.Scan() {
		lineNo++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "ply", "comment", "obj_info", "property":
		case "format":
			if len(parts) < 2 || parts[1] != "ascii" {
				return nil, fmt.Errorf("unsupported PLY format %q", strings.Join(parts[1:], " "))
			}
		case "element":
			if len(parts) != 3 {
				return nil, fmt.Errorf("malformed element line %d", lineNo)
			}
			n, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("bad element count on line %d: %w", lineNo, err)
			}
			switch parts[1] {
			case "vertex":
				vertexCount = n
			case "face":
				faceCount = n
			default:
				log.Warnf("PLY element %q ignored", parts[1])
			}
		case "end_header":
			headerDone = true
		default:
			log.Warnf("PLY header line %d ignored: %q", lineNo, scanner.Text())
		}
	}
	if !headerDone {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading PLY header: %w", err)
		}
		return nil, fmt.Errorf("missing end_header")
	}

	mesh := NewMesh()
	for i := 0; i < vertexCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading vertices")
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid vertex data for vertex %d", i)
		}
		var xyz [3]float64
		for j := range xyz {
			v, err := strconv.ParseFloat(parts[j], 64)
			if err != nil {
				return nil, fmt.Errorf("vertex %d: %w", i, err)
			}
			xyz[j] = v
		}
		mesh.AddVertex(NewVector3(xyz[0], xyz[1], xyz[2]))
	}

	for i := 0; i < faceCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading faces")
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			return nil, fmt.Errorf("empty face line for face %d", i)
		}
		numFaceVerts, err := strconv.Atoi(parts[0])
		if err != nil || numFaceVerts < 0 || len(parts) < numFaceVerts+1 {
			return nil, fmt.Errorf("invalid face data for face %d", i)
		}
		indices := make([]int, numFaceVerts)
		for j := range indices {
			idx, err := strconv.Atoi(parts[j+1])
			if err != nil {
				return nil, fmt.Errorf("face %d: %w", i, err)
			}
			indices[j] = idx
		}
		mesh.Faces = append(mesh.Faces, Face{Indices: indices})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from PLY source: %w", err)
	}
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return mesh, nil
}
