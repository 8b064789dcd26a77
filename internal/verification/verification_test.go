package verification

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/rom2msx/internal/config"
	"github.com/retroenv/rom2msx/internal/layout"
)

func convertTestROM(t *testing.T) *layout.Image {
	t.Helper()
	rom := make([]byte, 0x5000)
	for i := range rom {
		rom[i] = byte(i)
	}
	img, err := layout.Convert(rom, layout.Chip64K, layout.Simple64K, 3)
	assert.NoError(t, err)
	return img
}

func writeImage(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flash.bin")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to create image file: %v", err)
	}
	return path
}

func TestVerifyOutput(t *testing.T) {
	logger := log.NewTestLogger(t)
	// mismatches are logged at error level, which fails tests using the test logger
	mismatchLogger := config.CreateLogger(false, true)
	ctx := context.Background()

	t.Run("matching image", func(t *testing.T) {
		img := convertTestROM(t)
		path := writeImage(t, img.Data)

		assert.NoError(t, VerifyOutput(ctx, logger, path, img))
	})

	t.Run("corrupted bank", func(t *testing.T) {
		img := convertTestROM(t)
		data := append([]byte(nil), img.Data...)
		data[3*layout.BankSize+2] ^= 0xFF
		data[4*layout.BankSize+7] ^= 0xFF
		path := writeImage(t, data)

		err := VerifyOutput(ctx, mismatchLogger, path, img)
		assert.True(t, errors.Is(err, layout.ErrVerifyMismatch))
		assert.ErrorContains(t, err, "2 offset mismatches")
		assert.ErrorContains(t, err, "bank 0")
	})

	t.Run("corrupted filler", func(t *testing.T) {
		img := convertTestROM(t)
		data := append([]byte(nil), img.Data...)
		data[len(data)-1] = 0x00
		path := writeImage(t, data)

		err := VerifyOutput(ctx, mismatchLogger, path, img)
		assert.True(t, errors.Is(err, layout.ErrVerifyMismatch))
		assert.ErrorContains(t, err, "outside written area")
	})

	t.Run("wrong size", func(t *testing.T) {
		img := convertTestROM(t)
		path := writeImage(t, img.Data[:layout.BankSize])

		err := VerifyOutput(ctx, logger, path, img)
		assert.True(t, errors.Is(err, layout.ErrVerifyMismatch))
		assert.ErrorContains(t, err, "image size")
	})

	t.Run("missing file", func(t *testing.T) {
		img := convertTestROM(t)

		err := VerifyOutput(ctx, logger, filepath.Join(t.TempDir(), "missing.bin"), img)
		assert.True(t, errors.Is(err, layout.ErrIO))
	})

	t.Run("cancelled", func(t *testing.T) {
		img := convertTestROM(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := VerifyOutput(cancelled, logger, "unused.bin", img)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
