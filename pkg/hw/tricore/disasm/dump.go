package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/tricore/pkg/utils"
	"github.com/fatih/color"
)

var (
	addressColor = color.New(color.FgHiBlack)
	bytesColor   = color.New(color.FgBlue)
	sectionColor = color.New(color.FgGreen, color.Bold)
)

// Formats listings as objdump like text
type Formatter struct {
	// Colorize the output
	Color bool
	// Omit the raw instruction bytes column
	HideBytes bool
}

func hexBytes(data []byte) string {
	parts := make([]string, len(data))

	for i, b := range data {
		parts[i] = fmt.Sprintf("%02x", b)
	}

	return strings.Join(parts, " ")
}

func (f *Formatter) paint(c *color.Color, text string) string {
	if !f.Color {
		return text
	}

	return c.Sprint(text)
}

func (f *Formatter) prefix(address uint64, data []byte) string {
	var builder strings.Builder

	builder.WriteString(f.paint(addressColor, fmt.Sprintf("%08x:", address)))
	builder.WriteString("  ")

	if !f.HideBytes {
		// widest instruction: "xx xx xx xx"
		builder.WriteString(f.paint(bytesColor, fmt.Sprintf("%-11s", hexBytes(data))))
		builder.WriteString("  ")
	}

	return builder.String()
}

// Returns the listing line of an instruction, without label
func (f *Formatter) Line(entry *Entry) string {
	text := entry.String()
	if f.Color {
		text = utils.HighlightAssembly(text)
	}

	return f.prefix(entry.Address, entry.RawBytes()) + text
}

// Writes a listing, one instruction per line. Labeled instructions are preceded by their label
func (f *Formatter) Dump(w io.Writer, listing *Listing) error {
	if _, err := fmt.Fprintln(w, f.paint(sectionColor, fmt.Sprintf("=== Section %s (%s - %s) ===", listing.Name, utils.FormatUintHex(listing.Address, 8), utils.FormatUintHex(listing.End(), 8)))); err != nil {
		return err
	}

	for i := range listing.Entries {
		entry := &listing.Entries[i]

		if entry.Label != "" {
			label := fmt.Sprintf("\n%s:", entry.Label)
			if f.Color {
				label = "\n" + utils.HighlightAssembly(entry.Label+":")
			}

			if _, err := fmt.Fprintln(w, label); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w, f.Line(entry)); err != nil {
			return err
		}
	}

	if len(listing.Truncated) > 0 {
		tailAddress := listing.End() - uint64(len(listing.Truncated))

		if _, err := fmt.Fprintln(w, f.prefix(tailAddress, listing.Truncated)+"(truncated)"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}

// Writes several listings
func (f *Formatter) DumpAll(w io.Writer, listings []Listing) error {
	for i := range listings {
		if err := f.Dump(w, &listings[i]); err != nil {
			return err
		}
	}

	return nil
}
