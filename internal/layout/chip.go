package layout

import (
	"fmt"
	"strconv"
)

// Chip is a flash chip capacity in KiB.
type Chip int

// Supported chip capacities.
const (
	Chip64K  Chip = 64
	Chip128K Chip = 128
	Chip256K Chip = 256
	Chip512K Chip = 512
)

// DefaultChip is the SST39SF010 used by most cartridge boards.
const DefaultChip = Chip128K

var chipParts = map[Chip]string{
	Chip64K:  "SST39SF512",
	Chip128K: "SST39SF010",
	Chip256K: "SST39SF020",
	Chip512K: "SST39SF040",
}

// ParseChip converts a capacity in KiB to a chip.
func ParseChip(kib int) (Chip, error) {
	chip := Chip(kib)
	if !chip.Valid() {
		return 0, fmt.Errorf("unsupported chip size %d KiB, use 64, 128, 256 or 512", kib)
	}
	return chip, nil
}

// Valid returns whether the chip capacity is supported.
func (c Chip) Valid() bool {
	_, ok := chipParts[c]
	return ok
}

// Size returns the capacity in bytes.
func (c Chip) Size() int {
	return int(c) * 1024
}

// Banks returns the number of bank slots of the chip.
func (c Chip) Banks() int {
	return c.Size() / BankSize
}

// Part returns the reference flash part name of the capacity.
func (c Chip) Part() string {
	return chipParts[c]
}

func (c Chip) String() string {
	return strconv.Itoa(int(c)) + " KiB"
}
