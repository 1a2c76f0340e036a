// Package layouts provides preset track layouts that can be replayed onto a board.
// This package depends on board and core; neither depends on layouts.
package layouts

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/vovakirdan/tui-trains/internal/board"
	"github.com/vovakirdan/tui-trains/internal/core"
	"github.com/vovakirdan/tui-trains/internal/layouts/formats"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// Op is the edit a step performs.
type Op string

const (
	OpPlace  Op = "place"
	OpErase  Op = "erase"
	OpRotate Op = "rotate"
)

// Step is one edit of a layout.
type Step struct {
	Op Op
	At core.Coord
}

// Layout represents a complete layout definition.
type Layout struct {
	ID          string
	Name        string
	Description string
	Steps       []Step
	Metadata    map[string]string
	FilePath    string
}

// Replay applies every step to the board in order and returns how many changed it.
func (l *Layout) Replay(b *board.Board) int {
	changed := 0
	for _, s := range l.Steps {
		var ok bool
		switch s.Op {
		case OpPlace:
			ok = b.PlaceTrack(s.At)
		case OpErase:
			ok = b.EraseTrack(s.At)
		case OpRotate:
			ok = b.RotateTrack(s.At)
		}
		if ok {
			changed++
		}
	}
	return changed
}

// Loader handles loading layouts from a file system.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Embedded returns a loader over the presets compiled into the binary.
func Embedded() *Loader {
	sub, err := fs.Sub(presetFS, "presets")
	if err != nil {
		panic(fmt.Sprintf("layouts: embedded presets: %v", err))
	}
	return &Loader{fsys: sub, root: "presets"}
}

// LoadAll recursively scans and loads all layout files.
// Returns layouts sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		layout, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		layouts = append(layouts, layout)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.root, err)
	}

	// Sort by ID for determinism
	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})

	return layouts, nil
}

// LoadFile loads a single layout file, relative to the loader root.
func (l *Loader) LoadFile(p string) (Layout, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	steps := make([]Step, len(parsed.Steps))
	for i, s := range parsed.Steps {
		steps[i] = Step{Op: Op(s.Op), At: core.C(s.Col, s.Row)}
	}

	return Layout{
		ID:          parsed.ID,
		Name:        parsed.Name,
		Description: parsed.Description,
		Steps:       steps,
		Metadata:    parsed.Metadata,
		FilePath:    path.Join(l.root, p),
	}, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}

	for _, lay := range layouts {
		if lay.ID == id {
			return lay, nil
		}
	}

	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

// ListIDs returns all layout IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(layouts))
	for i, lay := range layouts {
		ids[i] = lay.ID
	}
	return ids, nil
}

// Catalog merges the embedded presets with layouts from extra directories.
// Later sources replace earlier ones with the same ID. Missing directories are skipped.
func Catalog(dirs ...string) ([]Layout, error) {
	byID := make(map[string]Layout)

	loaders := []*Loader{Embedded()}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		loaders = append(loaders, NewLoader(dir))
	}

	for _, loader := range loaders {
		found, err := loader.LoadAll()
		if err != nil {
			return nil, err
		}
		for _, lay := range found {
			byID[lay.ID] = lay
		}
	}

	out := make([]Layout, 0, len(byID))
	for _, lay := range byID {
		out = append(out, lay)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Find returns the layout with the given ID from a catalog.
func Find(catalog []Layout, id string) (Layout, bool) {
	for _, lay := range catalog {
		if lay.ID == id {
			return lay, true
		}
	}
	return Layout{}, false
}

// Suggest returns the catalog id closest to a mistyped one. Ids further than
// half their length away are not suggested.
func Suggest(catalog []Layout, id string) (string, bool) {
	best, bestDist := "", -1
	for _, lay := range catalog {
		dist := levenshtein.ComputeDistance(strings.ToLower(id), strings.ToLower(lay.ID))
		if bestDist < 0 || dist < bestDist {
			best, bestDist = lay.ID, dist
		}
	}
	if bestDist < 0 || bestDist > max(len(best), len(id))/2 {
		return "", false
	}
	return best, true
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Layout, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
