package disasm

import (
	"fmt"
	"os"
	"strings"

	dis "github.com/Manu343726/tricore/pkg/hw/tricore/disasm"
	"github.com/Manu343726/tricore/pkg/hw/tricore/instructions"
	"github.com/Manu343726/tricore/pkg/hw/tricore/loader"
	"github.com/Manu343726/tricore/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	viewFileFormat string
	viewOffset     int64
	viewLength     int64
)

var ViewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse the disassembly of a program interactively",
	Long: `Disassembles a program like the disasm command and opens the listing in a
terminal browser. The selected instruction is shown in detail, together with the
encoding documentation of its instruction format.

Keys:
  up/down, pgup/pgdn  move through the listing
  q, esc              quit`,
	Args: cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(viper.BindPFlag("address", cmd.Flags().Lookup("base-address")))
	},
	Run: runView,
}

func init() {
	ViewCmd.Flags().StringP("base-address", "b", fmt.Sprintf("0x%x", loader.DefaultBaseAddress), "Load address of raw images")
	ViewCmd.Flags().StringVar(&viewFileFormat, "file-format", loader.FormatAuto.String(), "Input file format: auto, elf or raw")
	ViewCmd.Flags().Int64Var(&viewOffset, "offset", 0, "Offset of the code within a raw image")
	ViewCmd.Flags().Int64Var(&viewLength, "length", 0, "Number of raw image bytes to decode (0 = up to the end of the file)")
}

// Returns a multiline description of a listing entry: its fields, its operands and the
// documentation of the encoding it was decoded from
func describeEntry(entry *dis.Entry) string {
	var builder strings.Builder

	if entry.Label != "" {
		builder.WriteString(fmt.Sprintf("%s:\n\n", entry.Label))
	}

	builder.WriteString(fmt.Sprintf("address:  %s\n", utils.FormatUintHex(entry.Address, 8)))
	builder.WriteString(fmt.Sprintf("bytes:    % x\n", entry.RawBytes()))
	builder.WriteString(fmt.Sprintf("size:     %d bits\n", entry.Size*8))
	builder.WriteString(fmt.Sprintf("mnemonic: %s\n", entry.Mnemonic))
	builder.WriteString(fmt.Sprintf("groups:   %s\n", entry.Groups))

	if !entry.IsValid() {
		if _, err := instructions.DecodeWord(entry.Word(), entry.Size, entry.Address); err != nil {
			builder.WriteString(fmt.Sprintf("\n%v\n", err))
		}

		return builder.String()
	}

	builder.WriteString("operands:\n")

	for i, operand := range entry.Operands.Slice() {
		builder.WriteString(fmt.Sprintf("  %d: %-12s %s\n", i, operand, operand.Kind()))
	}

	descriptor, err := instructions.Instructions.Lookup(entry.Word(), entry.Size)
	if err != nil {
		return builder.String()
	}

	doc, err := descriptor.Documentation(0)
	if err != nil {
		builder.WriteString(fmt.Sprintf("\n%v\n", err))
		return builder.String()
	}

	builder.WriteString("\n")
	builder.WriteString(doc)

	return builder.String()
}

// Fills a table with one row per listing entry, preceded by a header row per listing.
// Returns the entry shown in each row, nil for header rows
func buildListingTable(table *tview.Table, listings []dis.Listing) []*dis.Entry {
	var rows []*dis.Entry

	addRow := func(entry *dis.Entry, cells ...*tview.TableCell) {
		for column, cell := range cells {
			table.SetCell(len(rows), column, cell)
		}

		rows = append(rows, entry)
	}

	for i := range listings {
		listing := &listings[i]

		header := fmt.Sprintf("%s (%s - %s)", listing.Name, utils.FormatUintHex(listing.Address, 8), utils.FormatUintHex(listing.End(), 8))
		addRow(nil, tview.NewTableCell(tview.Escape(header)).SetTextColor(tcell.ColorGreen).SetSelectable(false).SetExpansion(1))

		for j := range listing.Entries {
			entry := &listing.Entries[j]

			textColor := tcell.ColorWhite
			if !entry.IsValid() {
				textColor = tcell.ColorRed
			} else if entry.InGroup(instructions.Group_Jump) {
				textColor = tcell.ColorYellow
			}

			addRow(entry,
				tview.NewTableCell(fmt.Sprintf("%08x", entry.Address)).SetTextColor(tcell.ColorGray),
				tview.NewTableCell(fmt.Sprintf("% x", entry.RawBytes())).SetTextColor(tcell.ColorBlue),
				tview.NewTableCell(tview.Escape(entry.Label)).SetTextColor(tcell.ColorGreen),
				tview.NewTableCell(tview.Escape(entry.String())).SetTextColor(textColor).SetExpansion(1),
			)
		}
	}

	return rows
}

func runView(cmd *cobra.Command, args []string) {
	opts, err := loaderOptions(viewFileFormat, viewOffset, viewLength)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	_, listings, err := disassembleFile(args[0], opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error disassembling program: %v\n", err)
		os.Exit(2)
	}

	app := tview.NewApplication()

	table := tview.NewTable().SetSelectable(true, false).SetFixed(0, 0)
	table.SetBorder(true).SetTitle(" " + tview.Escape(args[0]) + " ")

	details := tview.NewTextView().SetWrap(false).SetScrollable(true)
	details.SetBorder(true).SetTitle(" Instruction ")

	rows := buildListingTable(table, listings)

	table.SetSelectionChangedFunc(func(row, column int) {
		if row < 0 || row >= len(rows) || rows[row] == nil {
			details.SetText("")
			return
		}

		details.SetText(describeEntry(rows[row])).ScrollToBeginning()
	})

	// first selectable row
	for row, entry := range rows {
		if entry != nil {
			table.Select(row, 0)
			break
		}
	}

	layout := tview.NewFlex().
		AddItem(table, 0, 3, true).
		AddItem(details, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			app.Stop()
			return nil
		}

		return event
	})

	if err := app.SetRoot(layout, true).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(3)
	}
}
