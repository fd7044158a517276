package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequences(t *testing.T) {
	words := []string{"ld.w", "mov", "j"}

	assert.Equal(t, []int{4, 3, 1}, Map(words, func(w string) int { return len(w) }))
	assert.Equal(t, 8, Accumulate(words, func(w string) int { return len(w) }))
	assert.Equal(t, 4, Max([]int{1, 4, 3}))
	assert.Equal(t, map[int]string{4: "ld.w", 3: "mov", 1: "j"}, GenMap(words, func(w string) int { return len(w) }))

	keys := Keys(map[string]func(){"b": nil, "a": nil})
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestFormatUintHex(t *testing.T) {
	assert.Equal(t, "0x00001000", FormatUintHex(0x1000, 8))
	assert.Equal(t, "0x80000000", FormatUintHex(0x80000000, 8))
	assert.Equal(t, "0x123456789", FormatUintHex(0x123456789, 8))
}
