package layout

import "fmt"

// Image is a flash image produced by Convert.
type Image struct {
	Data      []byte // chip sized image
	ROM       []byte // normalized ROM the image was built from
	Mapper    Mapper
	Chip      Chip
	StartBank int
	BankCount int
}

// Convert lays out a ROM for the given chip and mapper. The hint selects the
// Simple64K start bank, pass NoStartHint for the default placement.
// All checks complete before the image buffer is allocated, no image is
// returned on error.
func Convert(rom []byte, chip Chip, mapper Mapper, hint int) (*Image, error) {
	if !chip.Valid() {
		return nil, fmt.Errorf("unsupported chip size %d KiB", int(chip))
	}
	if !mapper.Valid() {
		return nil, fmt.Errorf("unsupported mapper %s", mapper)
	}

	normalized, bankCount := Normalize(rom)

	if err := validateCapacity(len(normalized), bankCount, chip, mapper); err != nil {
		return nil, err
	}

	startBank, err := mapper.StartBank(bankCount, len(normalized)/1024, hint)
	if err != nil {
		return nil, fmt.Errorf("resolving %s start bank: %w", mapper, err)
	}

	data := make([]byte, chip.Size())
	fill(data)

	if err := place(data, normalized, startBank, bankCount); err != nil {
		return nil, err
	}

	return &Image{
		Data:      data,
		ROM:       normalized,
		Mapper:    mapper,
		Chip:      chip,
		StartBank: startBank,
		BankCount: bankCount,
	}, nil
}

// Placed returns whether the image offset lies inside a placed bank.
func (img *Image) Placed(offset int) bool {
	return placed(offset, img.StartBank, img.BankCount)
}

// Verify checks the image data against the layout rules.
func (img *Image) Verify() error {
	return Verify(img.Data, img.ROM, img.StartBank, img.BankCount)
}

func validateCapacity(size, bankCount int, chip Chip, mapper Mapper) error {
	if maxBanks := mapper.MaxBanks(); maxBanks > 0 && bankCount > maxBanks {
		return &CapacityError{
			Size:   size,
			Limit:  maxBanks * BankSize,
			Reason: fmt.Sprintf("ROM too large for %s", mapper),
		}
	}
	if size > chip.Size() {
		return &CapacityError{
			Size:   size,
			Limit:  chip.Size(),
			Reason: fmt.Sprintf("ROM larger than %s chip", chip.Part()),
		}
	}
	return nil
}

func place(data, rom []byte, startBank, bankCount int) error {
	for bank := range bankCount {
		dst, end := bankRange(startBank + bank)
		if dst < 0 || end > len(data) {
			return &OverflowError{Bank: bank, Offset: dst, End: end, Size: len(data)}
		}
		src, srcEnd := bankRange(bank)
		copy(data[dst:end], rom[src:srcEnd])
	}
	return nil
}

func placed(offset, startBank, bankCount int) bool {
	slot := offset / BankSize
	return slot >= startBank && slot < startBank+bankCount
}
