// Package detector handles MSX cartridge header detection.
package detector

import (
	"encoding/binary"

	"github.com/retroenv/retrogolib/log"
)

// headerOffsets are the ROM offsets a cartridge header is searched at,
// the start of the ROM and the start of page 1 for ROMs with a leading page 0.
var headerOffsets = []int{0x0000, 0x4000}

const headerSize = 16

// Header contains the fields of an MSX cartridge header.
type Header struct {
	Offset    int    // ROM offset of the header
	Init      uint16 // address of the initialization routine
	Statement uint16 // address of the BASIC CALL statement handler
	Device    uint16 // address of the device handler
	Text      uint16 // address of the BASIC program
}

// Detector handles cartridge header detection in ROM data.
type Detector struct {
	logger *log.Logger
}

// New creates a new header detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect searches the ROM for an MSX cartridge header starting with the "AB" ID.
// It returns nil if no header was found. The ROM data is not modified.
func (d *Detector) Detect(rom []byte, name string) *Header {
	for _, offset := range headerOffsets {
		header, ok := parseHeader(rom, offset)
		if !ok {
			continue
		}
		d.logger.Debug("Cartridge header found",
			log.String("file", name),
			log.Hex("offset", header.Offset),
			log.Hex("init", header.Init))
		return header
	}

	d.logger.Warn("No MSX cartridge header found, ROM might not start on its own",
		log.String("file", name))
	return nil
}

func parseHeader(rom []byte, offset int) (*Header, bool) {
	if len(rom) < offset+headerSize {
		return nil, false
	}
	data := rom[offset : offset+headerSize]
	if data[0] != 'A' || data[1] != 'B' {
		return nil, false
	}

	return &Header{
		Offset:    offset,
		Init:      binary.LittleEndian.Uint16(data[2:]),
		Statement: binary.LittleEndian.Uint16(data[4:]),
		Device:    binary.LittleEndian.Uint16(data[6:]),
		Text:      binary.LittleEndian.Uint16(data[8:]),
	}, true
}
