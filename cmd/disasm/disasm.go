package disasm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	dis "github.com/Manu343726/tricore/pkg/hw/tricore/disasm"
	"github.com/Manu343726/tricore/pkg/hw/tricore/loader"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	disasmFileFormat string
	disasmOffset     int64
	disasmLength     int64
	disasmStats      bool
	disasmNoBytes    bool
	disasmOutput     string
)

var DisasmCmd = &cobra.Command{
	Use:   "disasm <file>",
	Short: "Disassemble a TriCore ELF file or raw image",
	Long: `Decodes all the code of a TriCore program and prints the resulting listing.

ELF files are detected by their magic number: all their executable sections are
decoded and function symbols are shown as labels. Anything else is decoded as a
raw image loaded at the base address.

Bytes that do not encode a known instruction are listed as "invalid" and decoding
continues after them.

Example:
  tricore disasm firmware.elf
  tricore disasm --base-address 0xa0000000 --offset 0x100 flash.bin
  tricore disasm --format yaml --stats firmware.elf`,
	Args: cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(viper.BindPFlag("address", cmd.Flags().Lookup("base-address")))
		cobra.CheckErr(viper.BindPFlag("format", cmd.Flags().Lookup("format")))
	},
	Run: runDisasm,
}

func init() {
	DisasmCmd.Flags().StringP("format", "f", FormatText, "Listing format: text, yaml or dump")
	DisasmCmd.Flags().StringP("base-address", "b", fmt.Sprintf("0x%x", loader.DefaultBaseAddress), "Load address of raw images")
	DisasmCmd.Flags().StringVar(&disasmFileFormat, "file-format", loader.FormatAuto.String(), "Input file format: auto, elf or raw")
	DisasmCmd.Flags().Int64Var(&disasmOffset, "offset", 0, "Offset of the code within a raw image")
	DisasmCmd.Flags().Int64Var(&disasmLength, "length", 0, "Number of raw image bytes to decode (0 = up to the end of the file)")
	DisasmCmd.Flags().BoolVarP(&disasmStats, "stats", "s", false, "Print listing statistics")
	DisasmCmd.Flags().BoolVar(&disasmNoBytes, "no-bytes", false, "Do not print raw instruction bytes")
	DisasmCmd.Flags().StringVarP(&disasmOutput, "output", "o", "", "Output file. If not specified, the listing is written to stdout.")
}

// Builds the loader options from the command settings
func loaderOptions(fileFormat string, offset, length int64) (*loader.Options, error) {
	format, err := loader.ParseFileFormat(fileFormat)
	if err != nil {
		return nil, err
	}

	address, err := configuredAddress()
	if err != nil {
		return nil, err
	}

	opts := loader.DefaultOptions()
	opts.Format = format
	opts.BaseAddress = address
	opts.Offset = offset
	opts.Length = length

	return &opts, nil
}

// Loads and disassembles a program. Ctrl+C cancels decoding
func disassembleFile(path string, opts *loader.Options) (*loader.Program, []dis.Listing, error) {
	program, err := loader.LoadFile(path, opts)
	if err != nil {
		return nil, nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	listings, err := dis.DisassembleProgram(ctx, program)
	if err != nil {
		return nil, nil, err
	}

	return program, listings, nil
}

func runDisasm(cmd *cobra.Command, args []string) {
	opts, err := loaderOptions(disasmFileFormat, disasmOffset, disasmLength)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	program, listings, err := disassembleFile(args[0], opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error disassembling program: %v\n", err)
		os.Exit(2)
	}

	slog.Info("program disassembled", "path", program.Path, "format", program.Format, "sections", len(listings), "bytes", program.Size())

	var out io.Writer = os.Stdout
	colored := false

	if disasmOutput != "" {
		file, err := os.Create(disasmOutput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
			os.Exit(3)
		}
		defer file.Close()

		out = file
	} else {
		colored, err = useColor(os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	var stats *dis.Stats
	if disasmStats {
		merged := dis.MergedStats(listings)
		stats = &merged
	}

	formatter := dis.Formatter{Color: colored, HideBytes: disasmNoBytes}

	if err := writeListings(out, viper.GetString("format"), listings, stats, &formatter); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing listing: %v\n", err)
		os.Exit(4)
	}
}
