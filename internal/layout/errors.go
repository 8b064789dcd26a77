package layout

import (
	"errors"
	"fmt"
)

// Error kinds, usable with errors.Is on any error returned by this package
// or by the packages that read and write images.
var (
	ErrIO             = errors.New("i/o error")
	ErrCapacity       = errors.New("capacity exceeded")
	ErrRange          = errors.New("start bank out of range")
	ErrOverflow       = errors.New("output overflow")
	ErrVerifyMismatch = errors.New("verify mismatch")
)

// IOError is returned when a ROM source can not be read or an image sink can not be written.
type IOError struct {
	Op   string // read or write
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s '%s': %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// CapacityError is returned when the normalized ROM does not fit the chip or the mapper window.
type CapacityError struct {
	Size   int // normalized ROM size in bytes
	Limit  int // maximum size in bytes
	Reason string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: ROM size %d KiB exceeds limit of %d KiB", e.Reason, e.Size/1024, e.Limit/1024)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }

// RangeError is returned when a start bank and the bank count do not fit the bank window.
type RangeError struct {
	Start int
	Banks int
	Limit int
}

func (e *RangeError) Error() string {
	if e.Start < 0 || e.Start >= e.Limit {
		return fmt.Sprintf("start bank %d outside of 0..%d", e.Start, e.Limit-1)
	}
	return fmt.Sprintf("start bank %d + %d banks exceeds %d banks", e.Start, e.Banks, e.Limit)
}

func (e *RangeError) Is(target error) bool { return target == ErrRange }

// OverflowError is returned when a bank destination range ends past the output image.
// It indicates a start bank resolution that disagrees with the capacity validation.
type OverflowError struct {
	Bank   int
	Offset int
	End    int
	Size   int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("bank %d placement $%X-$%X exceeds image size $%X", e.Bank, e.Offset, e.End, e.Size)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }

// VerifyMismatchError describes the first divergence found by Verify.
// Bank is -1 when the offset lies outside all placed banks.
type VerifyMismatchError struct {
	Bank     int
	Offset   int
	Expected byte
	Got      byte
	Missing  bool // offset is past the end of the output
}

func (e *VerifyMismatchError) Error() string {
	if e.Missing {
		return fmt.Sprintf("output truncated in bank %d at offset $%X", e.Bank, e.Offset)
	}
	if e.Bank < 0 {
		return fmt.Sprintf("non-$%02X byte $%02X found outside written area at offset $%X", FillByte, e.Got, e.Offset)
	}
	return fmt.Sprintf("mismatch in bank %d at offset $%X, expected $%02X but got $%02X",
		e.Bank, e.Offset, e.Expected, e.Got)
}

func (e *VerifyMismatchError) Is(target error) bool { return target == ErrVerifyMismatch }
