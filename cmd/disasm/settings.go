package disasm

import (
	"encoding/hex"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/Manu343726/tricore/pkg/utils"
	"github.com/fatih/color"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var ErrInvalidSetting = errors.New("invalid setting")

// Parses an address in decimal, or in hex with 0x prefix
func parseAddress(text string) (uint64, error) {
	address, err := strconv.ParseUint(strings.TrimSpace(text), 0, 32)
	if err != nil {
		return 0, utils.MakeError(ErrInvalidSetting, "address '%v' is not a 32 bit number", text)
	}

	return address, nil
}

// Returns the configured base address
func configuredAddress() (uint64, error) {
	return parseAddress(viper.GetString("address"))
}

// Decides whether output written to the given file is colored, and configures the color package accordingly
func useColor(out *os.File) (bool, error) {
	var enabled bool

	switch mode := viper.GetString("color"); mode {
	case "", "auto":
		enabled = term.IsTerminal(int(out.Fd()))
	case "always":
		enabled = true
	case "never":
		enabled = false
	default:
		return false, utils.MakeError(ErrInvalidSetting, "color mode '%v' (expected auto, always or never)", mode)
	}

	color.NoColor = !enabled
	return enabled, nil
}

// Parses hex encoded bytes. Spaces, commas and 0x prefixes are ignored, so "82 50", "0x8250" and "82,50" are equivalent
func parseHexBytes(args []string) ([]byte, error) {
	var builder strings.Builder

	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' }) {
			builder.WriteString(strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X"))
		}
	}

	data, err := hex.DecodeString(builder.String())
	if err != nil {
		return nil, utils.MakeError(ErrInvalidSetting, "'%v' is not a hex byte string: %v", strings.Join(args, " "), err)
	}

	return data, nil
}
