// Package loader provides high-level APIs for loading TriCore code into memory for disassembly.
//
// Two file formats are supported:
//
//   - 32 bit little endian ELF files for the TriCore machine (EM_TRICORE). Every
//     section holding executable code is loaded at its link address, and function
//     symbols are collected so listings can be labeled.
//   - Raw memory images, loaded as one code section at a configurable base address.
//
// Typical usage:
//
//	opts := loader.DefaultOptions()
//	program, err := loader.LoadFile("firmware.elf", &opts)
//	if err != nil { ... }
//	for _, section := range program.Sections { ... }
package loader

import (
	"bytes"
	"debug/elf"
	"errors"
	"log/slog"
	"os"
	"sort"

	"github.com/Manu343726/tricore/pkg/utils"
)

// Load address of raw images when no other is given: start of the cached program flash on AURIX devices
const DefaultBaseAddress uint64 = 0x80000000

// FileFormat represents the type of program file
type FileFormat int

const (
	// Detect the format from the file contents
	FormatAuto FileFormat = iota
	// ELF executable or object file
	FormatELF
	// Raw memory image
	FormatRaw
)

// String returns the string representation of a FileFormat
func (f FileFormat) String() string {
	switch f {
	case FormatELF:
		return "elf"
	case FormatRaw:
		return "raw"
	default:
		return "auto"
	}
}

// Parses a format name as returned by FileFormat.String()
func ParseFileFormat(name string) (FileFormat, error) {
	for _, f := range []FileFormat{FormatAuto, FormatELF, FormatRaw} {
		if f.String() == name {
			return f, nil
		}
	}

	return FormatAuto, utils.MakeError(ErrUnsupportedFile, "unknown file format '%v'", name)
}

// Options configures the program loading process
type Options struct {
	// Format of the file. FormatAuto detects ELF files by their magic number and
	// loads anything else as a raw image
	Format FileFormat

	// Load address of raw images
	BaseAddress uint64

	// Offset within a raw image where code starts. Bytes before it are skipped and
	// the code is loaded at BaseAddress
	Offset int64

	// Number of bytes of a raw image to load, starting at Offset. Zero loads up to the end of the file
	Length int64
}

// DefaultOptions returns the default loading options
func DefaultOptions() Options {
	return Options{
		Format:      FormatAuto,
		BaseAddress: DefaultBaseAddress,
	}
}

// A contiguous block of code loaded at a given address
type Section struct {
	Name    string
	Address uint64
	Data    []byte
}

// Returns the address past the last byte of the section
func (s *Section) End() uint64 {
	return s.Address + uint64(len(s.Data))
}

// Returns true if the address falls within the section
func (s *Section) Contains(address uint64) bool {
	return address >= s.Address && address < s.End()
}

// Contains all the code of a loaded file
type Program struct {
	// Path of the loaded file
	Path string
	// Format the file was loaded as
	Format FileFormat
	// Entry point address (ELF files only)
	Entry uint64
	// Code sections, sorted by address
	Sections []Section
	// Function symbols by address (ELF files only)
	Symbols map[uint64]string
}

// Returns the name of the function symbol at the given address, if any
func (p *Program) Symbol(address uint64) (string, bool) {
	name, ok := p.Symbols[address]
	return name, ok
}

// Returns the total number of code bytes
func (p *Program) Size() int {
	return utils.Accumulate(p.Sections, func(s Section) int { return len(s.Data) })
}

var (
	ErrUnsupportedFile = errors.New("unsupported file")
	ErrInvalidRange    = errors.New("invalid load range")
)

// LoadFile loads a program file from the given path
func LoadFile(path string, opts *Options) (*Program, error) {
	if opts == nil {
		defaults := DefaultOptions()
		opts = &defaults
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.MakeError(err, "reading '%v'", path)
	}

	program, err := Load(data, opts)
	if err != nil {
		return nil, utils.MakeError(err, "loading '%v'", path)
	}

	program.Path = path

	slog.Debug("program loaded", "path", path, "format", program.Format, "sections", len(program.Sections), "bytes", program.Size())

	return program, nil
}

// Load loads a program from the contents of a file
func Load(data []byte, opts *Options) (*Program, error) {
	format := opts.Format

	if format == FormatAuto {
		if IsELF(data) {
			format = FormatELF
		} else {
			format = FormatRaw
		}
	}

	switch format {
	case FormatELF:
		return LoadELF(data)
	case FormatRaw:
		return LoadRaw(data, opts)
	}

	return nil, utils.MakeError(ErrUnsupportedFile, "format %v", format)
}

// Returns true if the data starts with the ELF magic number
func IsELF(data []byte) bool {
	return bytes.HasPrefix(data, []byte(elf.ELFMAG))
}

// LoadRaw loads (a window of) a raw memory image as a single section
func LoadRaw(data []byte, opts *Options) (*Program, error) {
	if opts.Offset < 0 || opts.Length < 0 {
		return nil, utils.MakeError(ErrInvalidRange, "offset %v and length %v must not be negative", opts.Offset, opts.Length)
	}

	if opts.Offset > int64(len(data)) {
		return nil, utils.MakeError(ErrInvalidRange, "offset %v is past the end of the %v bytes image", opts.Offset, len(data))
	}

	end := int64(len(data))
	if opts.Length > 0 {
		if opts.Offset+opts.Length > end {
			return nil, utils.MakeError(ErrInvalidRange, "%v bytes at offset %v exceed the %v bytes image", opts.Length, opts.Offset, len(data))
		}

		end = opts.Offset + opts.Length
	}

	return &Program{
		Format: FormatRaw,
		Sections: []Section{
			{
				Name:    "raw",
				Address: opts.BaseAddress,
				Data:    data[opts.Offset:end],
			},
		},
		Symbols: map[uint64]string{},
	}, nil
}

// LoadELF loads all the executable sections and function symbols of a TriCore ELF file
func LoadELF(data []byte) (*Program, error) {
	elfFile, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, utils.MakeError(ErrUnsupportedFile, "failed to parse ELF file: %v", err)
	}
	defer elfFile.Close()

	if elfFile.Class != elf.ELFCLASS32 {
		return nil, utils.MakeError(ErrUnsupportedFile, "expected 32-bit ELF file, got %v", elfFile.Class)
	}

	if elfFile.Data != elf.ELFDATA2LSB {
		return nil, utils.MakeError(ErrUnsupportedFile, "expected little-endian ELF file, got %v", elfFile.Data)
	}

	if elfFile.Machine != elf.EM_TRICORE {
		return nil, utils.MakeError(ErrUnsupportedFile, "expected %v ELF file, got %v", elf.EM_TRICORE, elfFile.Machine)
	}

	program := &Program{
		Format:  FormatELF,
		Entry:   elfFile.Entry,
		Symbols: map[uint64]string{},
	}

	for _, section := range elfFile.Sections {
		if section.Type != elf.SHT_PROGBITS || section.Flags&elf.SHF_EXECINSTR == 0 || section.Size == 0 {
			continue
		}

		code, err := section.Data()
		if err != nil {
			return nil, utils.MakeError(err, "failed to read section %v", section.Name)
		}

		slog.Debug("code section", "name", section.Name, "address", utils.FormatUintHex(section.Addr, 8), "size", len(code))

		program.Sections = append(program.Sections, Section{
			Name:    section.Name,
			Address: section.Addr,
			Data:    code,
		})
	}

	sort.SliceStable(program.Sections, func(i, j int) bool {
		return program.Sections[i].Address < program.Sections[j].Address
	})

	symbols, err := elfFile.Symbols()
	if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
		// Go's ELF parser reports an empty symbol section as a plain string error
		if err.Error() != "symbol section is empty" {
			return nil, utils.MakeError(err, "failed to read symbols")
		}
	}

	for _, symbol := range symbols {
		if elf.ST_TYPE(symbol.Info) != elf.STT_FUNC || symbol.Name == "" {
			continue
		}

		program.Symbols[symbol.Value] = symbol.Name
	}

	return program, nil
}
