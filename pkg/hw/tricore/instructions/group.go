package instructions

import (
	"fmt"
	"strings"
)

// Coarse classification of instructions, for consumers that need control flow awareness
// without per mnemonic knowledge
type Group uint8

const (
	Group_Invalid Group = iota

	// All jump instructions (conditional, direct and indirect jumps)
	Group_Jump

	// Total groups, including Group_Invalid
	TOTAL_GROUPS
)

func (g Group) String() string {
	switch g {
	case Group_Invalid:
		return "invalid"
	case Group_Jump:
		return "jump"
	}

	return fmt.Sprintf("Group(%d)", uint8(g))
}

// Set of groups an instruction belongs to
type Groups uint32

// Returns a set with the given groups
func MakeGroups(groups ...Group) Groups {
	var result Groups

	for _, g := range groups {
		result = result.With(g)
	}

	return result
}

// Returns true if the group is in the set
func (s Groups) Has(g Group) bool {
	return g > Group_Invalid && g < TOTAL_GROUPS && s&(1<<g) != 0
}

// Returns a copy of the set including the given group. Invalid groups are ignored
func (s Groups) With(g Group) Groups {
	if g <= Group_Invalid || g >= TOTAL_GROUPS {
		return s
	}

	return s | (1 << g)
}

// Returns all the groups in the set, in enumeration order
func (s Groups) All() []Group {
	var result []Group

	for g := Group_Invalid + 1; g < TOTAL_GROUPS; g++ {
		if s.Has(g) {
			result = append(result, g)
		}
	}

	return result
}

// Returns the number of groups in the set
func (s Groups) Len() int {
	return len(s.All())
}

func (s Groups) String() string {
	names := make([]string, 0, TOTAL_GROUPS)

	for _, g := range s.All() {
		names = append(names, g.String())
	}

	return "[" + strings.Join(names, ",") + "]"
}
