package layouts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-trains/internal/board"
	"github.com/vovakirdan/tui-trains/internal/core"
	"github.com/vovakirdan/tui-trains/internal/layouts/formats"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: demo
steps:
  - path: [[0, 0], [1, 0]]
  - op: rotate
    at: [1, 0]
  - op: erase
    at: [0, 0]
    path: [[5, 5]]
`)

	l, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML error: %v", err)
	}
	if l.Name != "demo" {
		t.Errorf("Name = %q, expected the id as fallback", l.Name)
	}

	want := []formats.Step{
		{Op: "place", Col: 0, Row: 0},
		{Op: "place", Col: 1, Row: 0},
		{Op: "rotate", Col: 1, Row: 0},
		{Op: "erase", Col: 0, Row: 0},
		{Op: "erase", Col: 5, Row: 5},
	}
	if len(l.Steps) != len(want) {
		t.Fatalf("got %d steps, expected %d", len(l.Steps), len(want))
	}
	for i := range want {
		if l.Steps[i] != want[i] {
			t.Errorf("step %d = %+v, expected %+v", i, l.Steps[i], want[i])
		}
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no id", "steps:\n  - at: [0, 0]\n"},
		{"unknown op", "id: x\nsteps:\n  - op: train\n    at: [0, 0]\n"},
		{"short coordinate", "id: x\nsteps:\n  - at: [0]\n"},
		{"empty step", "id: x\nsteps:\n  - op: place\n"},
		{"bad yaml", "id: [x\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := formats.ParseYAML([]byte(tc.data)); err == nil {
				t.Error("ParseYAML should fail")
			}
		})
	}
}

func TestEmbeddedPresets(t *testing.T) {
	loader := Embedded()

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs error: %v", err)
	}
	want := []string{"junction", "line", "loop", "spur", "zigzag"}
	if len(ids) != len(want) {
		t.Fatalf("ListIDs() = %v, expected %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ListIDs()[%d] = %q, expected %q", i, ids[i], want[i])
		}
	}

	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll error: %v", err)
	}
	for _, l := range all {
		b := board.New()
		if n := l.Replay(b); n == 0 {
			t.Errorf("layout %s changed nothing", l.ID)
		}
		for _, cell := range b.Cells() {
			if cell.Direction == core.DirNone {
				t.Errorf("layout %s left %v unresolved", l.ID, cell.Coord)
			}
		}
	}
}

func TestReplayPresets(t *testing.T) {
	tests := []struct {
		id    string
		at    core.Coord
		want  core.Direction
		cells int
	}{
		{"line", core.C(3, 0), core.DirHorizontal, 6},
		{"loop", core.C(0, 0), core.DirRightDown, 12},
		{"loop", core.C(4, 2), core.DirLeftUp, 12},
		{"junction", core.C(2, 2), core.DirCross, 9},
		{"zigzag", core.C(1, 0), core.DirLeftDown, 8},
		{"spur", core.C(5, 0), core.DirRightUp, 5},
		{"spur", core.C(4, 0), core.DirLeftUp, 5},
	}

	loader := Embedded()
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			l, err := loader.LoadByID(tc.id)
			if err != nil {
				t.Fatalf("LoadByID(%s) error: %v", tc.id, err)
			}

			b := board.New()
			l.Replay(b)

			if b.Len() != tc.cells {
				t.Errorf("board has %d cells, expected %d", b.Len(), tc.cells)
			}
			cell, ok := b.Cell(tc.at)
			if !ok {
				t.Fatalf("no cell at %v", tc.at)
			}
			if cell.Direction != tc.want {
				t.Errorf("%v = %v, expected %v", tc.at, cell.Direction, tc.want)
			}
		})
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.yaml":        "id: beta\nsteps:\n  - at: [0, 0]\n",
		"nested/a.yml":  "id: alpha\nsteps:\n  - at: [1, 1]\n",
		"broken.yaml":   "id: [oops\n",
		"readme.txt":    "not a layout",
		"nested/c.yaml": "id: line\nname: Override\nsteps:\n  - at: [9, 9]\n",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := NewLoader(dir).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs error: %v", err)
	}
	if len(ids) != 3 || ids[0] != "alpha" || ids[1] != "beta" || ids[2] != "line" {
		t.Errorf("ListIDs() = %v, expected [alpha beta line]", ids)
	}

	if _, err := NewLoader(dir).LoadByID("missing"); err == nil {
		t.Error("LoadByID should fail for an unknown id")
	}

	catalog, err := Catalog(dir, filepath.Join(dir, "does-not-exist"))
	if err != nil {
		t.Fatalf("Catalog error: %v", err)
	}
	line, ok := Find(catalog, "line")
	if !ok || line.Name != "Override" {
		t.Errorf("user layout should replace the embedded one, got %+v", line)
	}
	if _, ok := Find(catalog, "loop"); !ok {
		t.Error("catalog should keep embedded presets")
	}
	if _, ok := Find(catalog, "alpha"); !ok {
		t.Error("catalog should include user layouts")
	}
}

func TestSuggest(t *testing.T) {
	catalog, err := Embedded().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll error: %v", err)
	}

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"lop", "loop", true},
		{"Junctoin", "junction", true},
		{"zigzag", "zigzag", true},
		{"roundhouse", "", false},
	}
	for _, tt := range tests {
		got, ok := Suggest(catalog, tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Suggest(%q) = %q, %v; expected %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}

	if _, ok := Suggest(nil, "loop"); ok {
		t.Error("empty catalog should not suggest anything")
	}
}
