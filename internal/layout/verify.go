package layout

import "fmt"

// Verify checks that every placed bank of the output equals its ROM bank and
// that every other byte holds FillByte. The first divergence is returned as a
// *VerifyMismatchError.
func Verify(output, rom []byte, startBank, bankCount int) error {
	if startBank < 0 || bankCount < 0 || len(rom) < bankCount*BankSize {
		return fmt.Errorf("%w: invalid verify parameters: start bank %d, %d banks, ROM size %d",
			ErrVerifyMismatch, startBank, bankCount, len(rom))
	}
	if err := verifyBanks(output, rom, startBank, bankCount); err != nil {
		return err
	}
	return verifyFiller(output, startBank, bankCount)
}

func verifyBanks(output, rom []byte, startBank, bankCount int) error {
	for bank := range bankCount {
		dst, _ := bankRange(startBank + bank)
		src, _ := bankRange(bank)

		for i := range BankSize {
			offset := dst + i
			if offset >= len(output) {
				// truncated output
				return &VerifyMismatchError{Bank: bank, Offset: offset, Expected: rom[src+i], Missing: true}
			}
			if output[offset] != rom[src+i] {
				return &VerifyMismatchError{
					Bank:     bank,
					Offset:   offset,
					Expected: rom[src+i],
					Got:      output[offset],
				}
			}
		}
	}
	return nil
}

func verifyFiller(output []byte, startBank, bankCount int) error {
	for offset, value := range output {
		if value == FillByte || placed(offset, startBank, bankCount) {
			continue
		}
		return &VerifyMismatchError{Bank: -1, Offset: offset, Expected: FillByte, Got: value}
	}
	return nil
}
