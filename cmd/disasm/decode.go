package disasm

import (
	"fmt"
	"os"

	dis "github.com/Manu343726/tricore/pkg/hw/tricore/disasm"
	"github.com/Manu343726/tricore/pkg/hw/tricore/loader"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var decodeNoBytes bool

var DecodeCmd = &cobra.Command{
	Use:   "decode <hex bytes>...",
	Short: "Decode instruction bytes given in the command line",
	Long: `Decodes hex encoded machine code bytes and prints one instruction per line.
Bytes are given in memory order, so a 32 bit instruction is written as its four
little endian bytes.

Example:
  tricore decode 82 50
  tricore decode --address 0x1000 3cfe 0d008001`,
	Args: cobra.MinimumNArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(viper.BindPFlag("address", cmd.Flags().Lookup("address")))
	},
	Run: runDecode,
}

func init() {
	DecodeCmd.Flags().StringP("address", "a", fmt.Sprintf("0x%x", loader.DefaultBaseAddress), "Address of the first byte")
	DecodeCmd.Flags().BoolVar(&decodeNoBytes, "no-bytes", false, "Do not print raw instruction bytes")
}

func runDecode(cmd *cobra.Command, args []string) {
	code, err := parseHexBytes(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	address, err := configuredAddress()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	colored, err := useColor(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	listing, err := dis.Disassemble(code, address)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding: %v\n", err)
		os.Exit(2)
	}

	formatter := dis.Formatter{Color: colored, HideBytes: decodeNoBytes}

	for i := range listing.Entries {
		fmt.Println(formatter.Line(&listing.Entries[i]))
	}

	if len(listing.Truncated) > 0 {
		fmt.Fprintf(os.Stderr, "Error decoding: %d trailing bytes (%x) do not hold a whole instruction\n", len(listing.Truncated), listing.Truncated)
		os.Exit(3)
	}
}
