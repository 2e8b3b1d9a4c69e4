package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/minesweeper-backend/internal/apperror"
)

func TestPresets(t *testing.T) {
	// When: listing presets
	list := Presets()

	// Then: the classic sizes come in menu order
	expected := []Preset{
		{Name: "beginner", Rows: 9, Cols: 9, Mines: 10},
		{Name: "beginner-dense", Rows: 9, Cols: 9, Mines: 35},
		{Name: "intermediate", Rows: 16, Cols: 16, Mines: 40},
		{Name: "intermediate-dense", Rows: 16, Cols: 16, Mines: 99},
		{Name: "expert", Rows: 16, Cols: 30, Mines: 99},
		{Name: "expert-sparse", Rows: 16, Cols: 30, Mines: 70},
	}
	require.Equal(t, expected, list)

	// Then: mutating the returned slice does not leak back
	list[0].Mines = 1
	assert.Equal(t, 10, Presets()[0].Mines)
}

func TestFindPreset(t *testing.T) {
	t.Run("Finds presets by name", func(t *testing.T) {
		preset, err := FindPreset(" Expert ")
		require.NoError(t, err)
		assert.Equal(t, 99, preset.Mines)
	})

	t.Run("Finds the default preset", func(t *testing.T) {
		preset, err := FindPreset("default")
		require.NoError(t, err)
		assert.Equal(t, DefaultPreset, preset)
	})

	t.Run("Unknown names fail", func(t *testing.T) {
		_, err := FindPreset("nightmare")
		require.ErrorIs(t, err, apperror.ErrUnknownPreset)
	})
}

func TestCustomPreset(t *testing.T) {
	t.Run("Accepts a valid triple", func(t *testing.T) {
		preset, err := CustomPreset(5, 7, 34)
		require.NoError(t, err)
		assert.Equal(t, Preset{Name: CustomPresetName, Rows: 5, Cols: 7, Mines: 34}, preset)
	})

	t.Run("Rejects mines filling the board", func(t *testing.T) {
		_, err := CustomPreset(5, 7, 35)
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
	})

	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		_, err := CustomPreset(0, 7, 3)
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
	})
}
