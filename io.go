package meshsimp

import (
	"bufio"
	"errors"
	"github.com/nat-n/gomesh/mesh"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadOBJ parses a triangle-only OBJ stream into a new mesh wrapper.
// Vertex lines carry three doubles and face lines three 1-based indices;
// slash-delimited texture/normal sub-indices are ignored, only the first
// field of each corner is read. Anything after a # is a comment. Indices are
// converted to 0-based. A resulting mesh with zero vertices or zero faces is
// an error.
func ReadOBJ(obj_reader io.Reader, name string) (mw *MeshWrapper, err error) {
	m := mesh.New(name)

	var line string
	var words []string
	line_no := 0

	scanner := bufio.NewScanner(obj_reader)
	for scanner.Scan() {
		line_no++
		line = strings.TrimSpace(scanner.Text())
		// firstly discard anything on this line after a #
		if comment_start := strings.Index(line, "#"); comment_start >= 0 {
			line = line[:comment_start]
		}
		if len(line) == 0 {
			continue
		}
		words = strings.Fields(line)
		switch words[0] {
		case "v":
			if len(words) < 4 {
				err = objError("vertex", line_no)
				return
			}
			x, err_x := strconv.ParseFloat(words[1], 64)
			y, err_y := strconv.ParseFloat(words[2], 64)
			z, err_z := strconv.ParseFloat(words[3], 64)
			if err_x != nil || err_y != nil || err_z != nil {
				err = objError("vertex", line_no)
				return
			}
			m.Verts.Append(x, y, z)
		case "f":
			if len(words) != 4 {
				err = errors.New("Only triangle faces are supported, line: " +
					strconv.Itoa(line_no))
				return
			}
			var corners [3]int
			for i, word := range words[1:] {
				// compensate for indices in obj files starting at 1
				index, index_err := strconv.Atoi(strings.Split(word, "/")[0])
				if index_err != nil || index < 1 {
					err = objError("face", line_no)
					return
				}
				corners[i] = index - 1
			}
			m.Faces.Append(corners[0], corners[1], corners[2])
		default:
			// normals, texture coordinates, groups etc. are not carried
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}

	if m.Verts.Len() == 0 || m.Faces.Len() == 0 {
		err = errors.New("Empty mesh: " + name)
		return
	}
	return Wrap(m), nil
}

func ReadOBJFile(path string) (mw *MeshWrapper, err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()
	name := strings.TrimSuffix(filepath.Base(path), ".obj")
	return ReadOBJ(file, name)
}

// WriteOBJ emits the wrapped mesh as a triangle-only OBJ stream, converting
// face indices back to 1-based.
func (mw *MeshWrapper) WriteOBJ(obj_writer io.Writer) (err error) {
	w := bufio.NewWriter(obj_writer)
	if _, err = w.WriteString("# meshsimp output\n"); err != nil {
		return
	}
	verts := mw.Mesh.Verts.Buffer
	for i := 0; i+2 < len(verts); i += 3 {
		_, err = w.WriteString("v " +
			formatCoord(verts[i]) + " " +
			formatCoord(verts[i+1]) + " " +
			formatCoord(verts[i+2]) + "\n")
		if err != nil {
			return
		}
	}
	faces := mw.Mesh.Faces.Buffer
	for i := 0; i+2 < len(faces); i += 3 {
		_, err = w.WriteString("f " +
			strconv.Itoa(faces[i]+1) + " " +
			strconv.Itoa(faces[i+1]+1) + " " +
			strconv.Itoa(faces[i+2]+1) + "\n")
		if err != nil {
			return
		}
	}
	return w.Flush()
}

func (mw *MeshWrapper) WriteOBJFile(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return
	}
	defer file.Close()
	return mw.WriteOBJ(file)
}

func formatCoord(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func objError(kind string, line_no int) error {
	return errors.New("Could not parse " + kind + " on line: " +
		strconv.Itoa(line_no))
}
