package layout

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseMapper(t *testing.T) {
	tests := []struct {
		name    string
		want    Mapper
		wantErr bool
	}{
		{name: "mega", want: MegaSCC},
		{name: "scc", want: MegaSCC},
		{name: "MegaSCC", want: MegaSCC},
		{name: "rc755", want: RC755},
		{name: "RC755", want: RC755},
		{name: "s64k", want: Simple64K},
		{name: "simple64k", want: Simple64K},
		{name: "ascii8", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapper, err := ParseMapper(tt.name)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unknown mapper type")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, mapper)
		})
	}
}

func TestMapperString(t *testing.T) {
	assert.Equal(t, "MegaSCC", MegaSCC.String())
	assert.Equal(t, "RC755", RC755.String())
	assert.Equal(t, "Simple64K", Simple64K.String())
	assert.Equal(t, "Mapper(9)", Mapper(9).String())
}

func TestStartBank(t *testing.T) {
	tests := []struct {
		name      string
		mapper    Mapper
		banks     int
		hint      int
		wantStart int
		wantErr   bool
	}{
		{name: "megascc", mapper: MegaSCC, banks: 64, hint: NoStartHint, wantStart: 0},
		{name: "rc755", mapper: RC755, banks: 16, hint: NoStartHint, wantStart: 0},
		{name: "rc755 with hint", mapper: RC755, banks: 16, hint: 3, wantStart: 0},
		{name: "s64k auto 4 banks", mapper: Simple64K, banks: 4, hint: NoStartHint, wantStart: 2},
		{name: "s64k auto 5 banks", mapper: Simple64K, banks: 5, hint: NoStartHint, wantStart: 0},
		{name: "s64k auto 8 banks", mapper: Simple64K, banks: 8, hint: NoStartHint, wantStart: 0},
		{name: "s64k hint fits", mapper: Simple64K, banks: 2, hint: 6, wantStart: 6},
		{name: "s64k hint spills", mapper: Simple64K, banks: 2, hint: 7, wantErr: true},
		{name: "s64k hint 7 single bank", mapper: Simple64K, banks: 1, hint: 7, wantStart: 7},
		{name: "s64k auto window exceeded", mapper: Simple64K, banks: 9, hint: NoStartHint, wantErr: true},
		{name: "unknown mapper", mapper: Mapper(3), banks: 1, hint: NoStartHint, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := tt.mapper.StartBank(tt.banks, tt.banks*BankSize/1024, tt.hint)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
		})
	}
}

func TestStartBankAutoRangeCheck(t *testing.T) {
	// a size below the threshold with more banks than the window can hold
	// only happens when the resolver is called without capacity validation
	_, err := Simple64K.StartBank(7, 32, NoStartHint)
	assert.True(t, errors.Is(err, ErrRange))
}

func TestParseChip(t *testing.T) {
	for _, kib := range []int{64, 128, 256, 512} {
		chip, err := ParseChip(kib)
		assert.NoError(t, err)
		assert.Equal(t, kib*1024, chip.Size())
		assert.Equal(t, kib/8, chip.Banks())
		assert.True(t, chip.Part() != "")
	}

	_, err := ParseChip(32)
	assert.ErrorContains(t, err, "unsupported chip size 32 KiB")

	assert.Equal(t, "SST39SF010", DefaultChip.Part())
	assert.Equal(t, "128 KiB", DefaultChip.String())
}
