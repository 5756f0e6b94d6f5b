package strokefile

import (
	"path/filepath"
	"strings"
	"testing"

	"circle/internal/scoring"
)

func TestRead(t *testing.T) {
	in := `# stroke
10,20
 30 40

5.5	-1.25
`
	points, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []scoring.Point{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 5.5, Y: -1.25}}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, points[i], want[i])
		}
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"one coordinate":    "1,2\n3\n",
		"three coordinates": "1,2,3\n",
		"bad x":             "a,2\n",
		"bad y":             "1,b\n",
		"nan":               "1,2\nNaN,1\n",
		"inf":               "Inf,0\n",
		"negative inf":      "3,-Inf\n",
	}
	for name, in := range tests {
		if _, err := Read(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	_, err := Read(strings.NewReader("1,2\n\nx,y\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error = %v, want it to name line 3", err)
	}

	_, err = Read(strings.NewReader("1,2\n3,4\nNaN,1\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error = %v, want it to name line 3", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stroke.txt")
	points := []scoring.Point{{X: 0, Y: 0}, {X: 1.5, Y: 2.25}, {X: -3, Y: 1e-3}}
	if err := Save(path, points); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(points) {
		t.Fatalf("got %d points, want %d", len(got), len(points))
	}
	for i := range points {
		if got[i] != points[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], points[i])
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
