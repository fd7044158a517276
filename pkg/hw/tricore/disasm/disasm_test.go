package disasm

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Manu343726/tricore/pkg/hw/tricore/instructions"
	"github.com/Manu343726/tricore/pkg/hw/tricore/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mov d0, #5; ld.w d1, [a2]4; j -2; <invalid>; ret
var program = []byte{
	0x82, 0x50,
	0x09, 0x21, 0x04, 0x09,
	0x3C, 0xFF,
	0x00, 0x00,
	0x00, 0x90,
}

func TestDisassemble(t *testing.T) {
	listing, err := Disassemble(program, 0x80000000)

	require.NoError(t, err)
	require.Len(t, listing.Entries, 5)
	assert.Empty(t, listing.Truncated)

	expected := []struct {
		address  uint64
		mnemonic instructions.Mnemonic
		text     string
	}{
		{0x80000000, instructions.Mnemonic_MOV, "mov d0, #5"},
		{0x80000002, instructions.Mnemonic_LD_W, "ld.w d1, [a2]4"},
		{0x80000006, instructions.Mnemonic_J, "j #-2147483644"},
		{0x80000008, instructions.Mnemonic_Invalid, "invalid"},
		{0x8000000A, instructions.Mnemonic_RET, "ret"},
	}

	for i, e := range expected {
		assert.Equal(t, e.address, listing.Entries[i].Address)
		assert.Equal(t, e.mnemonic, listing.Entries[i].Mnemonic)
		assert.Equal(t, e.text, listing.Entries[i].String())
	}

	assert.Equal(t, uint64(0x8000000C), listing.End())
	assert.Equal(t, 1, listing.Find(0x80000002))
	assert.Equal(t, -1, listing.Find(0x80000003))
	assert.Equal(t, -1, listing.Find(0x90000000))
}

func TestDisassemble_TruncatedTail(t *testing.T) {
	code := append(append([]byte{}, program...), 0x09, 0x21, 0x04)

	listing, err := Disassemble(code, 0)

	require.NoError(t, err)
	assert.Len(t, listing.Entries, 5)
	assert.Equal(t, []byte{0x09, 0x21, 0x04}, listing.Truncated)
	assert.Equal(t, uint64(len(code)), listing.End())
}

func TestDisassemble_SingleOddByte(t *testing.T) {
	listing, err := Disassemble([]byte{0x82}, 0x10)

	require.NoError(t, err)
	assert.Empty(t, listing.Entries)
	assert.Equal(t, []byte{0x82}, listing.Truncated)
	assert.Equal(t, uint64(0x11), listing.End())
}

func TestDisassemble_Empty(t *testing.T) {
	listing, err := Disassemble(nil, 0x10)

	require.NoError(t, err)
	assert.Empty(t, listing.Entries)
	assert.Equal(t, uint64(0x10), listing.End())
}

func TestDisassembleContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DisassembleContext(ctx, program, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDisassembleSections(t *testing.T) {
	sections := []loader.Section{
		{Name: ".text", Address: 0x80000000, Data: program},
		{Name: ".boot", Address: 0xA0000000, Data: []byte{0x00, 0x90}},
		{Name: ".empty", Address: 0xB0000000},
	}
	symbols := map[uint64]string{0x80000002: "load", 0xA0000000: "_start"}

	listings, err := DisassembleSections(context.Background(), sections, symbols)

	require.NoError(t, err)
	require.Len(t, listings, 3)

	assert.Equal(t, ".text", listings[0].Name)
	assert.Len(t, listings[0].Entries, 5)
	assert.Equal(t, "", listings[0].Entries[0].Label)
	assert.Equal(t, "load", listings[0].Entries[1].Label)

	assert.Equal(t, ".boot", listings[1].Name)
	require.Len(t, listings[1].Entries, 1)
	assert.Equal(t, "_start", listings[1].Entries[0].Label)

	assert.Equal(t, ".empty", listings[2].Name)
	assert.Empty(t, listings[2].Entries)
}

func TestDisassembleSections_MatchesSequentialDecoding(t *testing.T) {
	sections := make([]loader.Section, 16)
	for i := range sections {
		sections[i] = loader.Section{Address: uint64(i) * 0x1000, Data: program[i%4:]}
	}

	listings, err := DisassembleSections(context.Background(), sections, nil)
	require.NoError(t, err)

	for i, section := range sections {
		expected, err := Disassemble(section.Data, section.Address)
		require.NoError(t, err)
		assert.Equal(t, expected.Entries, listings[i].Entries)
		assert.Equal(t, expected.Truncated, listings[i].Truncated)
	}
}

func TestStats(t *testing.T) {
	listing, err := Disassemble(append(append([]byte{}, program...), 0x01), 0)
	require.NoError(t, err)

	stats := listing.Stats()

	assert.Equal(t, 5, stats.Instructions)
	assert.Equal(t, 1, stats.Invalid)
	assert.Equal(t, 1, stats.Jumps)
	assert.Equal(t, 4, stats.Short)
	assert.Equal(t, 1, stats.Long)
	assert.Equal(t, 13, stats.Bytes)
	assert.Equal(t, 1, stats.TruncatedBytes)
	assert.Equal(t, map[instructions.Mnemonic]int{
		instructions.Mnemonic_MOV:  1,
		instructions.Mnemonic_LD_W: 1,
		instructions.Mnemonic_J:    1,
		instructions.Mnemonic_RET:  1,
	}, stats.Mnemonics)

	merged := MergedStats([]Listing{listing, listing})
	assert.Equal(t, 10, merged.Instructions)
	assert.Equal(t, 2, merged.Mnemonics[instructions.Mnemonic_RET])

	var report bytes.Buffer
	stats.Dump(&report)
	assert.Contains(t, report.String(), "Invalid:      1")
	assert.Contains(t, report.String(), "ld.w")
}

func TestFormatter_Dump(t *testing.T) {
	listing, err := DisassembleSection(context.Background(), loader.Section{
		Name:    ".text",
		Address: 0x80000000,
		Data:    append(append([]byte{}, program...), 0x09),
	}, map[uint64]string{0x80000000: "main"})
	require.NoError(t, err)

	var out bytes.Buffer
	formatter := Formatter{}
	require.NoError(t, formatter.Dump(&out, &listing))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "=== Section .text (0x80000000 - 0x8000000d) ===", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "main:", lines[2])
	assert.Equal(t, "80000000:  82 50        mov d0, #5", lines[3])
	assert.Equal(t, "80000002:  09 21 04 09  ld.w d1, [a2]4", lines[4])
	assert.Equal(t, "80000008:  00 00        invalid", lines[6])
	assert.Equal(t, "8000000c:  09           (truncated)", lines[8])

	out.Reset()
	formatter.HideBytes = true
	require.NoError(t, formatter.Dump(&out, &listing))
	assert.Contains(t, out.String(), "80000002:  ld.w d1, [a2]4\n")
}
