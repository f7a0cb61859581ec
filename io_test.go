package meshsimp

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

const sample_obj = `# a triangle with decorations
v 0 0 0
v 1 0 0   # trailing comment
v 0 1 0

vt 0 0
vt 1 0
vn 0 0 1
f 1/1/1 2/2/1 3/1/1
`

func TestReadOBJ(t *testing.T) {
	mw, err := ReadOBJ(strings.NewReader(sample_obj), "sample")
	if err != nil {
		t.Fatal(err)
	}
	if mw.Mesh.Verts.Len() != 3 || mw.Mesh.Faces.Len() != 1 {
		t.Fatalf("verts=%d faces=%d", mw.Mesh.Verts.Len(), mw.Mesh.Faces.Len())
	}
	faces := mw.Mesh.Faces.Buffer
	if faces[0] != 0 || faces[1] != 1 || faces[2] != 2 {
		t.Fatalf("face indices not converted to 0-based: %v", faces)
	}
	if mw.Mesh.Verts.Buffer[3] != 1 {
		t.Fatalf("vertex buffer=%v", mw.Mesh.Verts.Buffer)
	}
}

func TestReadOBJPlainFaceIndices(t *testing.T) {
	mw, err := ReadOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), "plain")
	if err != nil {
		t.Fatal(err)
	}
	if mw.Mesh.Faces.Len() != 1 {
		t.Fatalf("faces=%d", mw.Mesh.Faces.Len())
	}
}

func TestReadOBJRejectsEmptyMesh(t *testing.T) {
	if _, err := ReadOBJ(strings.NewReader("# nothing\n"), "empty"); err == nil {
		t.Fatal("empty stream accepted")
	}
	if _, err := ReadOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\n"), "faceless"); err == nil {
		t.Fatal("mesh without faces accepted")
	}
	if _, err := ReadOBJ(strings.NewReader("f 1 2 3\n"), "vertless"); err == nil {
		t.Fatal("mesh without vertices accepted")
	}
}

func TestReadOBJRejectsMalformedLines(t *testing.T) {
	if _, err := ReadOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\nf 1 2 3 4\n"), "quad"); err == nil {
		t.Fatal("quad face accepted")
	}
	if _, err := ReadOBJ(strings.NewReader("v 0 0 zero\nf 1 2 3\n"), "badvert"); err == nil {
		t.Fatal("unparsable vertex accepted")
	}
	if _, err := ReadOBJ(strings.NewReader("v 0 0 0\nf 1 x 3\n"), "badface"); err == nil {
		t.Fatal("unparsable face index accepted")
	}
}

func TestWriteOBJRoundTrip(t *testing.T) {
	mw := wrapMesh(cubeVerts(), cubeFaces())

	var buf bytes.Buffer
	if err := mw.WriteOBJ(&buf); err != nil {
		t.Fatal(err)
	}
	again, err := ReadOBJ(&buf, "roundtrip")
	if err != nil {
		t.Fatal(err)
	}
	if again.Mesh.Verts.Len() != mw.Mesh.Verts.Len() ||
		again.Mesh.Faces.Len() != mw.Mesh.Faces.Len() {
		t.Fatalf("verts=%d faces=%d", again.Mesh.Verts.Len(), again.Mesh.Faces.Len())
	}
	for i, v := range mw.Mesh.Verts.Buffer {
		if math.Abs(again.Mesh.Verts.Buffer[i]-v) > 0 {
			t.Fatalf("vertex coordinate %d did not survive the round trip", i)
		}
	}
	for i, index := range mw.Mesh.Faces.Buffer {
		if again.Mesh.Faces.Buffer[i] != index {
			t.Fatalf("face index %d did not survive the round trip", i)
		}
	}
}
