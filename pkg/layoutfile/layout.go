package layoutfile

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hipstersmoothie/react-resizable-panels/pkg/panels"
)

type layoutFile struct {
	Sizes map[string]float64 `json:"sizes"`
}

// WriteLayout encodes the group's committed sizes as JSON and writes
// them to w, keyed by panel ID. Panels with no committed size yet are
// omitted.
func WriteLayout(g *panels.Group, w io.Writer) error {
	out := layoutFile{Sizes: make(map[string]float64)}
	for _, p := range g.Panels() {
		size := g.PanelSize(p.ID)
		if math.IsNaN(size) {
			continue
		}
		out.Sizes[p.ID] = size
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// SaveLayout writes a group's layout snapshot to a JSON file at path.
// This is a convenience wrapper around [WriteLayout] for file-based output.
func SaveLayout(g *panels.Group, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(g, f)
}

// ReadLayout decodes a layout snapshot from r and applies it to the
// group. Sizes are matched by panel ID: snapshot entries for panels that
// no longer exist are dropped, and panels absent from the snapshot start
// at zero. The assembled vector goes through the group's validation, so
// the committed result always satisfies the current constraints and sums
// to the full extent.
func ReadLayout(g *panels.Group, r io.Reader) error {
	var file layoutFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	group := g.Panels()
	candidate := make([]float64, len(group))
	for i, p := range group {
		candidate[i] = file.Sizes[p.ID]
	}
	g.SetLayout(candidate)
	return nil
}

// LoadLayout reads a JSON layout snapshot at path and applies it to the
// group, with the same matching and validation rules as [ReadLayout].
func LoadLayout(g *panels.Group, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLayout(g, f)
}
