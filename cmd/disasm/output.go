package disasm

import (
	"fmt"
	"io"

	dis "github.com/Manu343726/tricore/pkg/hw/tricore/disasm"
	"github.com/Manu343726/tricore/pkg/hw/tricore/instructions"
	"github.com/Manu343726/tricore/pkg/utils"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

// Listing output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatDump = "dump"
)

type yamlInstruction struct {
	Address  string                `yaml:"address"`
	Bytes    string                `yaml:"bytes"`
	Label    string                `yaml:"label,omitempty"`
	Mnemonic instructions.Mnemonic `yaml:"mnemonic"`
	Operands []string              `yaml:"operands,omitempty"`
	Groups   []string              `yaml:"groups,omitempty"`
}

type yamlListing struct {
	Section      string            `yaml:"section"`
	Address      string            `yaml:"address"`
	Instructions []yamlInstruction `yaml:"instructions"`
	Truncated    string            `yaml:"truncated,omitempty"`
}

type yamlDocument struct {
	Listings []yamlListing `yaml:"listings"`
	Stats    *dis.Stats    `yaml:"stats,omitempty"`
}

func toYAMLInstruction(entry *dis.Entry) yamlInstruction {
	result := yamlInstruction{
		Address:  utils.FormatUintHex(entry.Address, 8),
		Bytes:    fmt.Sprintf("%x", entry.RawBytes()),
		Label:    entry.Label,
		Mnemonic: entry.Mnemonic,
		Operands: utils.Map(entry.Operands.Slice(), instructions.Operand.String),
	}

	for _, group := range entry.Groups.All() {
		result.Groups = append(result.Groups, group.String())
	}

	return result
}

func toYAMLListing(listing *dis.Listing) yamlListing {
	result := yamlListing{
		Section:      listing.Name,
		Address:      utils.FormatUintHex(listing.Address, 8),
		Instructions: make([]yamlInstruction, len(listing.Entries)),
	}

	for i := range listing.Entries {
		result.Instructions[i] = toYAMLInstruction(&listing.Entries[i])
	}

	if len(listing.Truncated) > 0 {
		result.Truncated = fmt.Sprintf("%x", listing.Truncated)
	}

	return result
}

// Writes listings as a YAML document. Stats are included if not nil
func writeYAML(w io.Writer, listings []dis.Listing, stats *dis.Stats) error {
	document := yamlDocument{
		Listings: make([]yamlListing, len(listings)),
		Stats:    stats,
	}

	for i := range listings {
		document.Listings[i] = toYAMLListing(&listings[i])
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(&document); err != nil {
		return err
	}

	return encoder.Close()
}

// Writes the raw listing data structures, for debugging
func writeDump(w io.Writer, listings []dis.Listing, stats *dis.Stats) {
	config := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		DisableMethods:          true,
		SortKeys:                true,
	}

	config.Fdump(w, listings)

	if stats != nil {
		config.Fdump(w, *stats)
	}
}

// Writes listings in the given format
func writeListings(w io.Writer, format string, listings []dis.Listing, stats *dis.Stats, formatter *dis.Formatter) error {
	switch format {
	case FormatText, "":
		if err := formatter.DumpAll(w, listings); err != nil {
			return err
		}

		if stats != nil {
			stats.Dump(w)
		}

		return nil
	case FormatYAML:
		return writeYAML(w, listings, stats)
	case FormatDump:
		writeDump(w, listings, stats)
		return nil
	}

	return utils.MakeError(ErrInvalidSetting, "listing format '%v' (expected %v, %v or %v)", format, FormatText, FormatYAML, FormatDump)
}
