// Package options contains the program options.
package options

import "github.com/retroenv/rom2msx/internal/layout"

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output flash image file (default: input name with .bin extension)"`
	Config string `flag:"c" usage:"TOML file with default conversion settings"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.rom)"`
}

// Flags contains behavior options.
type Flags struct {
	Chip    int    `flag:"chip" usage:"flash chip size in KiB: 64, 128, 256, 512" default:"128"`
	Type    string `flag:"type" usage:"mapper type: mega, rc755, s64k" default:"mega"`
	Address int    `flag:"addr" usage:"Simple64K start bank 0..7 (default: auto)" default:"-1"`
	Jobs    int    `flag:"j" usage:"number of files converted in parallel in batch mode"`
	Verify  bool   `flag:"verify" usage:"read back the written image and verify its layout"`
	Debug   bool   `flag:"debug" usage:"enable debug logging"`
	Quiet   bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the converter.
type Program struct {
	Parameters
	Flags
}

// Layout defines the validated parameters of a conversion.
type Layout struct {
	Chip      layout.Chip
	Mapper    layout.Mapper
	StartHint int // layout.NoStartHint if not set
}

// NewLayout returns layout options with the default chip and mapper.
func NewLayout() Layout {
	return Layout{
		Chip:      layout.DefaultChip,
		Mapper:    layout.MegaSCC,
		StartHint: layout.NoStartHint,
	}
}
