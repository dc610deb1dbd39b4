package layoutfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/hipstersmoothie/react-resizable-panels/pkg/panels"
)

// ErrInvalidDeclaration reports a group declaration that parsed as TOML
// but does not describe a usable group.
var ErrInvalidDeclaration = errors.New("invalid group declaration")

type groupFile struct {
	Direction string      `toml:"direction"`
	Units     string      `toml:"units"`
	Panels    []panelDecl `toml:"panel"`
}

type panelDecl struct {
	ID            string   `toml:"id"`
	Order         *int     `toml:"order"`
	MinSize       float64  `toml:"min-size"`
	MaxSize       *float64 `toml:"max-size"`
	DefaultSize   *float64 `toml:"default-size"`
	CollapsedSize float64  `toml:"collapsed-size"`
	Collapsible   bool     `toml:"collapsible"`
}

var directionFromString = map[string]panels.Direction{
	"":           panels.Horizontal,
	"horizontal": panels.Horizontal,
	"vertical":   panels.Vertical,
}

var unitsFromString = map[string]panels.Units{
	"":            panels.UnitsPercentages,
	"percentages": panels.UnitsPercentages,
	"pixels":      panels.UnitsPixels,
}

// ParseGroup decodes a TOML group declaration from r and returns a group
// with every declared panel registered. Direction defaults to horizontal
// and units to percentages when omitted. A panel declared without an id
// receives a generated one so registration cannot collide.
//
// The returned group has no committed layout yet; call Layout, or
// restore a snapshot with [LoadLayout].
func ParseGroup(r io.Reader) (*panels.Group, error) {
	var file groupFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	direction, ok := directionFromString[file.Direction]
	if !ok {
		return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidDeclaration, file.Direction)
	}
	units, ok := unitsFromString[file.Units]
	if !ok {
		return nil, fmt.Errorf("%w: unknown units %q", ErrInvalidDeclaration, file.Units)
	}
	if len(file.Panels) == 0 {
		return nil, fmt.Errorf("%w: no panels declared", ErrInvalidDeclaration)
	}

	g := panels.NewGroup(direction, units)
	for _, decl := range file.Panels {
		id := decl.ID
		if id == "" {
			id = uuid.NewString()
		}
		p := &panels.Panel{
			ID:    id,
			Order: decl.Order,
			Constraints: panels.Constraints{
				MinSize:       decl.MinSize,
				MaxSize:       decl.MaxSize,
				DefaultSize:   decl.DefaultSize,
				CollapsedSize: decl.CollapsedSize,
				Collapsible:   decl.Collapsible,
			},
		}
		if err := g.Register(p); err != nil {
			return nil, fmt.Errorf("panel %s: %w", id, err)
		}
	}
	return g, nil
}

// ReadGroupFile reads a TOML group declaration from path.
// This is a convenience wrapper around [ParseGroup] for file-based input.
func ReadGroupFile(path string) (*panels.Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseGroup(f)
}
