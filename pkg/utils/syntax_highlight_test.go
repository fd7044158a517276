package utils

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withColor(t *testing.T, enabled bool) {
	previous := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = previous })
}

func TestHighlightAssembly_NoColorKeepsText(t *testing.T) {
	withColor(t, false)

	for _, line := range []string{"mov d0, #5", "ld.w d1, [a2]-4", "main: ret", "invalid", "j #4092 ; loop"} {
		assert.Equal(t, line, HighlightAssembly(line))
	}
}

func TestHighlightAssembly_Tokens(t *testing.T) {
	withColor(t, true)

	line := "ld.w d1, [a2]-4 ; load"
	highlighted := HighlightAssembly(line)

	assert.Contains(t, highlighted, asmMnemonicColor.Sprint("ld.w"))
	assert.Contains(t, highlighted, asmRegisterColor.Sprint("d1"))
	assert.Contains(t, highlighted, asmRegisterColor.Sprint("a2"))
	assert.Contains(t, highlighted, asmNumberColor.Sprint("-4"))
	assert.Contains(t, highlighted, asmOperatorColor.Sprint("["))
	assert.Contains(t, highlighted, asmCommentColor.Sprint("; load"))
}

func TestHighlightAssembly_LabelsAndInvalid(t *testing.T) {
	withColor(t, true)

	assert.Contains(t, HighlightAssembly("main: ret"), asmLabelColor.Sprint("main:"))
	assert.Contains(t, HighlightAssembly("main: ret"), asmMnemonicColor.Sprint("ret"))
	assert.Equal(t, asmInvalidColor.Sprint("invalid"), HighlightAssembly("invalid"))
	assert.Empty(t, HighlightAssembly(""))
}
