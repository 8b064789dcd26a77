package layout

import (
	"fmt"
	"strings"
)

// Mapper is a cartridge bank switching convention.
type Mapper int

// Supported mappers.
const (
	MegaSCC Mapper = iota
	RC755
	Simple64K
)

// NoStartHint marks an unset start bank hint.
const NoStartHint = -1

// simple64KLowThreshold is the largest ROM size in KiB that is placed above
// the first 16 KiB of the Simple64K window by default.
const simple64KLowThreshold = 32

var mapperNames = map[string]Mapper{
	"mega":      MegaSCC,
	"scc":       MegaSCC,
	"megascc":   MegaSCC,
	"rc755":     RC755,
	"s64k":      Simple64K,
	"simple64k": Simple64K,
}

// ParseMapper returns the mapper for a name, names are case insensitive.
func ParseMapper(name string) (Mapper, error) {
	mapper, ok := mapperNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown mapper type '%s', use mega, rc755 or s64k", name)
	}
	return mapper, nil
}

// Valid returns whether the mapper is one of the supported mappers.
func (m Mapper) Valid() bool {
	return m >= MegaSCC && m <= Simple64K
}

func (m Mapper) String() string {
	switch m {
	case MegaSCC:
		return "MegaSCC"
	case RC755:
		return "RC755"
	case Simple64K:
		return "Simple64K"
	default:
		return fmt.Sprintf("Mapper(%d)", int(m))
	}
}

// SupportsStartHint returns whether the mapper uses a start bank hint.
func (m Mapper) SupportsStartHint() bool {
	return m == Simple64K
}

// MaxBanks returns the bank limit imposed by the mapper window,
// 0 if the mapper is only limited by the chip size.
func (m Mapper) MaxBanks() int {
	if m == Simple64K {
		return Simple64KBanks
	}
	return 0
}

// StartBank returns the bank slot that the first ROM bank is placed at.
// The hint is only used by Simple64K, NoStartHint selects the default placement.
func (m Mapper) StartBank(bankCount, sizeKiB, hint int) (int, error) {
	switch m {
	case MegaSCC, RC755:
		return 0, nil

	case Simple64K:
		return simple64KStartBank(bankCount, sizeKiB, hint)

	default:
		return 0, fmt.Errorf("unsupported mapper %s", m)
	}
}

func simple64KStartBank(bankCount, sizeKiB, hint int) (int, error) {
	if hint != NoStartHint {
		if hint < 0 || hint >= Simple64KBanks || hint+bankCount > Simple64KBanks {
			return 0, &RangeError{Start: hint, Banks: bankCount, Limit: Simple64KBanks}
		}
		return hint, nil
	}

	start := 0
	if sizeKiB <= simple64KLowThreshold {
		start = 2
	}
	// unreachable for ROMs that passed the window check, kept in case the threshold changes
	if start+bankCount > Simple64KBanks {
		return 0, &RangeError{Start: start, Banks: bankCount, Limit: Simple64KBanks}
	}
	return start, nil
}
