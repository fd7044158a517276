// Package disasm decodes whole code buffers into instruction listings.
//
// A buffer is decoded sequentially, each instruction starting where the previous one ended.
// Undecodable bytes show up as invalid instructions in the listing instead of stopping it.
// Independent buffers (for example the code sections of an ELF file) are decoded in parallel.
package disasm

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"github.com/Manu343726/tricore/pkg/hw/tricore/instructions"
	"github.com/Manu343726/tricore/pkg/hw/tricore/loader"
	"golang.org/x/sync/errgroup"
)

// How many instructions are decoded between context cancellation checks
const cancellationCheckInterval = 4096

// A decoded instruction of a listing
type Entry struct {
	instructions.Instruction

	// Name of the function symbol at the instruction address, if any
	Label string
}

// Instructions decoded from a contiguous code buffer
type Listing struct {
	// Name of the decoded section
	Name string
	// Address of the first byte of the buffer
	Address uint64
	// Decoded instructions, in address order
	Entries []Entry
	// Trailing bytes too short to hold the instruction they start (at most 3)
	Truncated []byte
}

// Returns the address past the last decoded byte, truncated tail included
func (l *Listing) End() uint64 {
	if len(l.Entries) == 0 {
		return l.Address + uint64(len(l.Truncated))
	}

	last := l.Entries[len(l.Entries)-1]
	return last.Address + uint64(last.Size) + uint64(len(l.Truncated))
}

// Returns the index of the entry decoded at the given address, or -1
func (l *Listing) Find(address uint64) int {
	low, high := 0, len(l.Entries)

	for low < high {
		mid := (low + high) / 2

		if l.Entries[mid].Address < address {
			low = mid + 1
		} else {
			high = mid
		}
	}

	if low < len(l.Entries) && l.Entries[low].Address == address {
		return low
	}

	return -1
}

// Decodes all the instructions of a code buffer located at the given address
func Disassemble(code []byte, address uint64) (Listing, error) {
	return DisassembleContext(context.Background(), code, address)
}

// Like Disassemble, but stops early with the context error if the context is cancelled
func DisassembleContext(ctx context.Context, code []byte, address uint64) (Listing, error) {
	listing := Listing{
		Address: address,
		Entries: make([]Entry, 0, len(code)/3),
	}

	offset := 0

	for offset < len(code) {
		if len(listing.Entries)%cancellationCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Listing{}, err
			}
		}

		instruction, size, err := instructions.Decode(code[offset:], address+uint64(offset))
		if errors.Is(err, instructions.ErrBufferTooShort) {
			listing.Truncated = code[offset:]
			break
		} else if err != nil {
			return Listing{}, err
		}

		listing.Entries = append(listing.Entries, Entry{Instruction: instruction})
		offset += size
	}

	return listing, nil
}

// Decodes a loaded code section, labeling the instructions with the given function symbols (which may be nil)
func DisassembleSection(ctx context.Context, section loader.Section, symbols map[uint64]string) (Listing, error) {
	listing, err := DisassembleContext(ctx, section.Data, section.Address)
	if err != nil {
		return Listing{}, err
	}

	listing.Name = section.Name

	for i := range listing.Entries {
		if label, ok := symbols[listing.Entries[i].Address]; ok {
			listing.Entries[i].Label = label
		}
	}

	slog.Debug("section disassembled", "section", section.Name, "instructions", len(listing.Entries), "truncated", len(listing.Truncated))

	return listing, nil
}

// Decodes several independent code sections in parallel. Listings are returned in section order
func DisassembleSections(ctx context.Context, sections []loader.Section, symbols map[uint64]string) ([]Listing, error) {
	listings := make([]Listing, len(sections))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i := range sections {
		i := i
		group.Go(func() error {
			listing, err := DisassembleSection(ctx, sections[i], symbols)
			if err != nil {
				return err
			}

			listings[i] = listing
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return listings, nil
}

// Decodes all the code sections of a loaded program
func DisassembleProgram(ctx context.Context, program *loader.Program) ([]Listing, error) {
	return DisassembleSections(ctx, program.Sections, program.Symbols)
}
