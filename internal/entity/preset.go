package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/minesweeper-backend/internal/apperror"
)

const CustomPresetName = "custom"

// Preset is a named board configuration.
type Preset struct {
	Name  string
	Rows  int
	Cols  int
	Mines int
}

func (that Preset) String() string {
	return fmt.Sprintf("%s: %dx%d (%d mines)", that.Name, that.Rows, that.Cols, that.Mines)
}

// DefaultPreset is the board a fresh start opens with.
var DefaultPreset = Preset{Name: "default", Rows: 10, Cols: 10, Mines: 10}

var presets = []Preset{
	{Name: "beginner", Rows: 9, Cols: 9, Mines: 10},
	{Name: "beginner-dense", Rows: 9, Cols: 9, Mines: 35},
	{Name: "intermediate", Rows: 16, Cols: 16, Mines: 40},
	{Name: "intermediate-dense", Rows: 16, Cols: 16, Mines: 99},
	{Name: "expert", Rows: 16, Cols: 30, Mines: 99},
	{Name: "expert-sparse", Rows: 16, Cols: 30, Mines: 70},
}

// Presets - the selectable board sizes, in menu order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)

	return out
}

// FindPreset - looks a preset up by name, case-insensitively. "default" is accepted too.
func FindPreset(name string) (Preset, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if name == DefaultPreset.Name {
		return DefaultPreset, nil
	}

	for _, preset := range presets {
		if preset.Name == name {
			return preset, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %q", apperror.ErrUnknownPreset, name)
}

// CustomPreset - validated user-chosen configuration.
func CustomPreset(rows, cols, mines int) (Preset, error) {
	if err := ValidateConfiguration(rows, cols, mines); err != nil {
		return Preset{}, err
	}

	return Preset{Name: CustomPresetName, Rows: rows, Cols: cols, Mines: mines}, nil
}
