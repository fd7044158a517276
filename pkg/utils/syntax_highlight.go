package utils

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// Assembly syntax highlighting colors
var (
	// Instruction mnemonics
	asmMnemonicColor = color.New(color.FgMagenta, color.Bold)
	// Undecodable instructions
	asmInvalidColor = color.New(color.FgRed, color.Bold)
	// Registers
	asmRegisterColor = color.New(color.FgCyan)
	// Immediates and displacements
	asmNumberColor = color.New(color.FgYellow)
	// Comments
	asmCommentColor = color.New(color.FgHiBlack)
	// Labels
	asmLabelColor = color.New(color.FgHiYellow)
	// Memory operand brackets
	asmOperatorColor = color.New(color.FgRed)
)

// Syntax elements of a listing line
var (
	// Matches comments up to the end of the line
	asmCommentPattern = regexp.MustCompile(`;.*$`)
	// Matches a label definition at the start of the line
	asmLabelPattern = regexp.MustCompile(`^\s*[A-Za-z_.$][A-Za-z0-9_.$]*:`)
	// Matches the mnemonic: the first word of the line, dots included
	asmMnemonicPattern = regexp.MustCompile(`^\s*[a-z][a-z0-9.]*`)
	// Matches TriCore register names
	asmRegisterPattern = regexp.MustCompile(`\b(?:[dae](?:1[0-5]|[0-9])|psw|pcxi|pc|fcx)\b`)
	// Matches immediates (#-12), hex numbers and memory displacements after a bracket
	asmNumberPattern = regexp.MustCompile(`#-?[0-9]+|\b0x[0-9a-fA-F]+\b|\]-?[0-9]+`)
	// Matches memory operand brackets
	asmOperatorPattern = regexp.MustCompile(`[\[\]]`)
)

// Colors assigned to each byte of a line. Earlier matches take precedence over later ones
type highlight struct {
	code   string
	colors []*color.Color
}

// Colors code[start:end] unless the range is empty or some of its bytes are already colored
func (h *highlight) paint(start, end int, c *color.Color) {
	if start >= end {
		return
	}

	for _, existing := range h.colors[start:end] {
		if existing != nil {
			return
		}
	}

	for i := start; i < end; i++ {
		h.colors[i] = c
	}
}

func (h *highlight) paintAll(pattern *regexp.Regexp, c *color.Color) {
	for _, match := range pattern.FindAllStringIndex(h.code, -1) {
		h.paint(match[0], match[1], c)
	}
}

// Returns the line with each run of equally colored bytes wrapped in its color codes
func (h *highlight) String() string {
	var result strings.Builder

	for start := 0; start < len(h.code); {
		end := start + 1
		for end < len(h.code) && h.colors[end] == h.colors[start] {
			end++
		}

		if c := h.colors[start]; c != nil {
			result.WriteString(c.Sprint(h.code[start:end]))
		} else {
			result.WriteString(h.code[start:end])
		}

		start = end
	}

	return result.String()
}

// HighlightAssembly applies syntax highlighting to one line of TriCore assembly and returns the colored string
func HighlightAssembly(code string) string {
	h := highlight{code: code, colors: make([]*color.Color, len(code))}

	h.paintAll(asmCommentPattern, asmCommentColor)

	body := 0
	if match := asmLabelPattern.FindStringIndex(code); match != nil {
		h.paint(match[0], match[1], asmLabelColor)
		body = match[1]
	}

	if match := asmMnemonicPattern.FindStringIndex(code[body:]); match != nil {
		mnemonic := strings.TrimLeft(code[body+match[0]:body+match[1]], " \t")
		end := body + match[1]

		c := asmMnemonicColor
		if mnemonic == "invalid" {
			c = asmInvalidColor
		}

		h.paint(end-len(mnemonic), end, c)
	}

	h.paintAll(asmRegisterPattern, asmRegisterColor)

	for _, match := range asmNumberPattern.FindAllStringIndex(code, -1) {
		start := match[0]
		if code[start] == ']' {
			start++
		}

		h.paint(start, match[1], asmNumberColor)
	}

	h.paintAll(asmOperatorPattern, asmOperatorColor)

	return h.String()
}
