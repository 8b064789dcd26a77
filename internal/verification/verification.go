// Package verification verifies that the written flash image matches the bank layout.
package verification

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/rom2msx/internal/layout"
	"github.com/retroenv/rom2msx/internal/loader"
)

// maxLoggedMismatches limits the number of differing offsets that are logged.
const maxLoggedMismatches = 10

// VerifyOutput reads the written image back from the output file and checks it
// against the layout of the converted image.
func VerifyOutput(ctx context.Context, logger *log.Logger, output string, img *layout.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	written, err := loader.New().Load(output)
	if err != nil {
		return fmt.Errorf("reading output back: %w", err)
	}

	return VerifyImage(logger, written, img)
}

// VerifyImage checks the written image data against the layout of the converted image.
func VerifyImage(logger *log.Logger, written []byte, img *layout.Image) error {
	if len(written) != img.Chip.Size() {
		return fmt.Errorf("%w: image size %d, expected %d", layout.ErrVerifyMismatch, len(written), img.Chip.Size())
	}

	err := layout.Verify(written, img.ROM, img.StartBank, img.BankCount)
	if err == nil {
		return nil
	}

	var mismatch *layout.VerifyMismatchError
	if errors.As(err, &mismatch) {
		diffs := logMismatches(logger, img.Data, written)
		return fmt.Errorf("%d offset mismatches: %w", diffs, err)
	}
	return err
}

// logMismatches logs the first differing offsets and returns the total number of differences.
func logMismatches(logger *log.Logger, expected, got []byte) uint64 {
	var diffs uint64
	for i := range expected {
		if expected[i] == got[i] {
			continue
		}

		diffs++
		if diffs <= maxLoggedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", expected[i]),
				log.Hex("got", got[i]))
		}
	}
	return diffs
}
