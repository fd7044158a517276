package disasm

import (
	"fmt"
	"io"
	"sort"

	"github.com/Manu343726/tricore/pkg/hw/tricore/instructions"
)

// Summary of a set of listings
type Stats struct {
	// Total decoded instructions, invalid ones included
	Instructions int `yaml:"instructions"`
	// Instructions that could not be decoded
	Invalid int `yaml:"invalid"`
	// Instructions in the jump group
	Jumps int `yaml:"jumps"`
	// 16 and 32 bit instruction counts
	Short int `yaml:"short"`
	Long  int `yaml:"long"`
	// Decoded bytes, truncated tails included
	Bytes int `yaml:"bytes"`
	// Trailing bytes that did not hold a whole instruction
	TruncatedBytes int `yaml:"truncated_bytes"`
	// Instruction count per mnemonic
	Mnemonics map[instructions.Mnemonic]int `yaml:"mnemonics"`
}

// Returns the statistics of the listing
func (l *Listing) Stats() Stats {
	stats := Stats{
		Mnemonics: map[instructions.Mnemonic]int{},
	}

	for i := range l.Entries {
		entry := &l.Entries[i]

		stats.Instructions++
		stats.Bytes += entry.Size

		if entry.Size == 2 {
			stats.Short++
		} else {
			stats.Long++
		}

		if !entry.IsValid() {
			stats.Invalid++
			continue
		}

		if entry.InGroup(instructions.Group_Jump) {
			stats.Jumps++
		}

		stats.Mnemonics[entry.Mnemonic]++
	}

	stats.TruncatedBytes = len(l.Truncated)
	stats.Bytes += len(l.Truncated)

	return stats
}

// Adds the statistics of other to s
func (s *Stats) Merge(other Stats) {
	if s.Mnemonics == nil {
		s.Mnemonics = map[instructions.Mnemonic]int{}
	}

	s.Instructions += other.Instructions
	s.Invalid += other.Invalid
	s.Jumps += other.Jumps
	s.Short += other.Short
	s.Long += other.Long
	s.Bytes += other.Bytes
	s.TruncatedBytes += other.TruncatedBytes

	for m, count := range other.Mnemonics {
		s.Mnemonics[m] += count
	}
}

// Returns the merged statistics of several listings
func MergedStats(listings []Listing) Stats {
	stats := Stats{
		Mnemonics: map[instructions.Mnemonic]int{},
	}

	for i := range listings {
		stats.Merge(listings[i].Stats())
	}

	return stats
}

// Writes a human readable report of the statistics, most frequent mnemonics first
func (s *Stats) Dump(w io.Writer) {
	fmt.Fprintln(w, "=== Statistics ===")
	fmt.Fprintf(w, "Instructions: %d (%d x 16 bit, %d x 32 bit)\n", s.Instructions, s.Short, s.Long)
	fmt.Fprintf(w, "Invalid:      %d\n", s.Invalid)
	fmt.Fprintf(w, "Jumps:        %d\n", s.Jumps)
	fmt.Fprintf(w, "Bytes:        %d (%d truncated)\n", s.Bytes, s.TruncatedBytes)

	mnemonics := make([]instructions.Mnemonic, 0, len(s.Mnemonics))
	for m := range s.Mnemonics {
		mnemonics = append(mnemonics, m)
	}

	sort.Slice(mnemonics, func(i, j int) bool {
		if s.Mnemonics[mnemonics[i]] != s.Mnemonics[mnemonics[j]] {
			return s.Mnemonics[mnemonics[i]] > s.Mnemonics[mnemonics[j]]
		}
		return mnemonics[i] < mnemonics[j]
	})

	for _, m := range mnemonics {
		fmt.Fprintf(w, "  %-10s %d\n", m, s.Mnemonics[m])
	}
}
