// Package loaders reads external mesh assets into engine data.
package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// ParseOBJ reads a minimal OBJ subset: '#' comments, 'v x y z' vertices and
// 'f i0 i1 i2' triangles with 1-based vertex indices. No texture or normal
// indices, no quads. Per-face normals are precomputed from the winding
// order; degenerate faces get a zero-vector normal (the zero-length cross
// product normalizes to zero) and are kept (rejecting them would shift face
// indexing relative to the file) and counted in a logged warning.
func ParseOBJ(filename string) (positions []math.Vec3, indices []int, normals []math.Vec3, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening OBJ: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, nil, fmt.Errorf("parsing OBJ %s:%d: vertex needs 3 coordinates", filename, lineNo)
			}
			var v math.Vec3
			for i, dst := range []*float32{&v.X, &v.Y, &v.Z} {
				value, parseErr := strconv.ParseFloat(fields[i+1], 32)
				if parseErr != nil {
					return nil, nil, nil, fmt.Errorf("parsing OBJ %s:%d: %w", filename, lineNo, parseErr)
				}
				*dst = float32(value)
			}
			positions = append(positions, v)

		case "f":
			if len(fields) < 4 {
				return nil, nil, nil, fmt.Errorf("parsing OBJ %s:%d: face needs 3 indices", filename, lineNo)
			}
			for i := 1; i <= 3; i++ {
				idx, parseErr := strconv.Atoi(fields[i])
				if parseErr != nil {
					return nil, nil, nil, fmt.Errorf("parsing OBJ %s:%d: %w", filename, lineNo, parseErr)
				}
				indices = append(indices, idx-1)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("reading OBJ %s: %w", filename, err)
	}

	// Precompute per-face normals
	degenerate := 0
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= len(positions) || i1 >= len(positions) || i2 >= len(positions) {
			return nil, nil, nil, fmt.Errorf("parsing OBJ %s: face %d references vertex out of range", filename, i/3)
		}

		edgeV0V1 := positions[i1].Subtract(positions[i0])
		edgeV0V2 := positions[i2].Subtract(positions[i0])
		normal := edgeV0V1.Cross(edgeV0V2).Normalize()

		if math32.IsNaN(normal.X) || normal == (math.Vec3{}) {
			degenerate++
		}
		normals = append(normals, normal)
	}

	if degenerate > 0 {
		zap.L().Warn("OBJ contains degenerate faces",
			zap.String("file", filename),
			zap.Int("count", degenerate))
	}

	zap.L().Info("parsed OBJ",
		zap.String("file", filename),
		zap.Int("vertices", len(positions)),
		zap.Int("faces", len(indices)/3))

	return positions, indices, normals, nil
}
