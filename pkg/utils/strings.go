package utils

import (
	"fmt"
	"strconv"
)

// Formats an uint value into a 0x prefixed hex string of at least n digits
func FormatUintHex(value uint64, digits int) string {
	leadingZerosFormat := "0x%0" + fmt.Sprint(digits) + "s"
	return fmt.Sprintf(leadingZerosFormat, strconv.FormatUint(value, 16))
}
