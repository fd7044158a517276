package disasm

import (
	"bytes"
	"testing"

	dis "github.com/Manu343726/tricore/pkg/hw/tricore/disasm"
	"github.com/Manu343726/tricore/pkg/hw/tricore/instructions"
	"github.com/rivo/tview"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseHexBytes(t *testing.T) {
	cases := []struct {
		args     []string
		expected []byte
	}{
		{[]string{"82 50"}, []byte{0x82, 0x50}},
		{[]string{"0x8250"}, []byte{0x82, 0x50}},
		{[]string{"82,50", "0X0d"}, []byte{0x82, 0x50, 0x0d}},
		{[]string{"09", "21", "04", "09"}, []byte{0x09, 0x21, 0x04, 0x09}},
	}

	for _, c := range cases {
		data, err := parseHexBytes(c.args)

		require.NoError(t, err, "%v", c.args)
		assert.Equal(t, c.expected, data, "%v", c.args)
	}

	for _, args := range [][]string{{"825"}, {"zz"}, {"82 5"}} {
		_, err := parseHexBytes(args)
		assert.ErrorIs(t, err, ErrInvalidSetting, "%v", args)
	}
}

func TestParseAddress(t *testing.T) {
	address, err := parseAddress("0x80000000")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x80000000), address)

	address, err = parseAddress(" 4096 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(4096), address)

	_, err = parseAddress("0x100000000")
	assert.ErrorIs(t, err, ErrInvalidSetting)

	_, err = parseAddress("main")
	assert.ErrorIs(t, err, ErrInvalidSetting)
}

func TestConfiguredAddress(t *testing.T) {
	viper.Set("address", "0xa0000000")
	t.Cleanup(func() { viper.Set("address", nil) })

	address, err := configuredAddress()
	require.NoError(t, err)
	assert.Equal(t, uint64(0xa0000000), address)
}

func testListings(t *testing.T) []dis.Listing {
	listing, err := dis.Disassemble([]byte{0x82, 0x50, 0x09, 0x21, 0x04, 0x09, 0x00, 0x00, 0x3C}, 0x1000)
	require.NoError(t, err)

	listing.Name = ".text"
	listing.Entries[0].Label = "main"

	return []dis.Listing{listing}
}

func TestWriteYAML(t *testing.T) {
	listings := testListings(t)
	stats := dis.MergedStats(listings)

	var out bytes.Buffer
	require.NoError(t, writeYAML(&out, listings, &stats))

	var document struct {
		Listings []struct {
			Section      string `yaml:"section"`
			Address      string `yaml:"address"`
			Truncated    string `yaml:"truncated"`
			Instructions []struct {
				Address  string   `yaml:"address"`
				Bytes    string   `yaml:"bytes"`
				Label    string   `yaml:"label"`
				Mnemonic string   `yaml:"mnemonic"`
				Operands []string `yaml:"operands"`
			} `yaml:"instructions"`
		} `yaml:"listings"`
		Stats map[string]any `yaml:"stats"`
	}

	require.NoError(t, yaml.Unmarshal(out.Bytes(), &document))
	require.Len(t, document.Listings, 1)

	listing := document.Listings[0]
	assert.Equal(t, ".text", listing.Section)
	assert.Equal(t, "0x00001000", listing.Address)
	assert.Equal(t, "3c", listing.Truncated)
	require.Len(t, listing.Instructions, 3)

	assert.Equal(t, "main", listing.Instructions[0].Label)
	assert.Equal(t, "mov", listing.Instructions[0].Mnemonic)
	assert.Equal(t, []string{"d0", "#5"}, listing.Instructions[0].Operands)
	assert.Equal(t, "8250", listing.Instructions[0].Bytes)

	assert.Equal(t, "0x00001002", listing.Instructions[1].Address)
	assert.Equal(t, "ld.w", listing.Instructions[1].Mnemonic)
	assert.Equal(t, []string{"d1", "[a2]4"}, listing.Instructions[1].Operands)

	assert.Equal(t, "invalid", listing.Instructions[2].Mnemonic)
	assert.Empty(t, listing.Instructions[2].Operands)

	assert.NotNil(t, document.Stats)
}

func TestWriteListings(t *testing.T) {
	listings := testListings(t)
	formatter := dis.Formatter{}

	var text bytes.Buffer
	require.NoError(t, writeListings(&text, FormatText, listings, nil, &formatter))
	assert.Contains(t, text.String(), "=== Section .text")
	assert.Contains(t, text.String(), "ld.w d1, [a2]4")

	var dump bytes.Buffer
	require.NoError(t, writeListings(&dump, FormatDump, listings, nil, &formatter))
	assert.Contains(t, dump.String(), "Label: (string) (len=4) \"main\"")

	assert.ErrorIs(t, writeListings(&bytes.Buffer{}, "xml", listings, nil, &formatter), ErrInvalidSetting)
}

func TestDescribeEntry(t *testing.T) {
	listings := testListings(t)

	mov := describeEntry(&listings[0].Entries[0])
	assert.Contains(t, mov, "main:")
	assert.Contains(t, mov, "address:  0x00001000")
	assert.Contains(t, mov, "bytes:    82 50")
	assert.Contains(t, mov, "size:     16 bits")
	assert.Contains(t, mov, "mnemonic: mov")
	assert.Contains(t, mov, "Memory layout:")

	load := describeEntry(&listings[0].Entries[1])
	assert.Contains(t, load, "d1")
	assert.Contains(t, load, "[a2]4")
	assert.Contains(t, load, instructions.OperandKind_Memory.String())

	invalid := describeEntry(&listings[0].Entries[2])
	assert.Contains(t, invalid, "mnemonic: invalid")
	assert.Contains(t, invalid, instructions.ErrUnrecognizedOpcode.Error())
	assert.NotContains(t, invalid, "operands:")
}

func TestBuildListingTable(t *testing.T) {
	listings := testListings(t)
	table := tview.NewTable()

	rows := buildListingTable(table, listings)

	require.Len(t, rows, 4)
	assert.Nil(t, rows[0])
	assert.Same(t, &listings[0].Entries[0], rows[1])
	assert.Same(t, &listings[0].Entries[2], rows[3])

	assert.Equal(t, 4, table.GetRowCount())
	assert.Equal(t, "00001000", table.GetCell(1, 0).Text)
	assert.Equal(t, "82 50", table.GetCell(1, 1).Text)
	assert.Equal(t, "main", table.GetCell(1, 2).Text)
	assert.Equal(t, "mov d0, #5", table.GetCell(1, 3).Text)
	assert.Equal(t, tview.Escape("ld.w d1, [a2]4"), table.GetCell(2, 3).Text)
	assert.True(t, table.GetCell(0, 0).NotSelectable)
}
