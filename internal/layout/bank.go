/*
Package layout implements the flash image layout of MSX cartridge ROMs.

A ROM is split into 8 KiB banks after padding it with the erased flash value
$FF. The banks are copied in order into an image of the selected chip size,
starting at a bank slot chosen by the mapper. Every byte of the image that
does not belong to a placed bank keeps the value $FF.
*/
package layout

const (
	// BankSize is the size of a ROM bank and the unit of placement.
	BankSize = 0x2000

	// FillByte is the erased flash value used for padding and unused space.
	FillByte = 0xFF

	// Simple64KBanks is the number of bank slots in the 64 KiB Simple64K window.
	Simple64KBanks = 8
)

// Normalize returns a copy of the ROM padded with FillByte to a multiple of
// BankSize and the resulting number of banks.
func Normalize(rom []byte) ([]byte, int) {
	banks := (len(rom) + BankSize - 1) / BankSize
	normalized := make([]byte, banks*BankSize)
	n := copy(normalized, rom)
	fill(normalized[n:])
	return normalized, banks
}

// bankRange returns the start and end offset of a bank slot.
func bankRange(slot int) (int, int) {
	start := slot * BankSize
	return start, start + BankSize
}

func fill(data []byte) {
	for i := range data {
		data[i] = FillByte
	}
}
