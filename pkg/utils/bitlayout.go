package utils

import (
	"errors"
	"slices"
	"sort"
	"strconv"
	"strings"
)

var ErrInvalidLayout = errors.New("invalid bit layout")

// Name of the columns covering bits no field uses
const unusedLayoutField = "-"

// A named range of bits of a bit layout diagram
type LayoutField struct {
	Name string
	BitRange
}

// Sorts fields from the most significant bit down, adding unnamed columns for the gaps between them
func layoutColumns(fields []LayoutField, bits int) ([]LayoutField, error) {
	sorted := slices.Clone(fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position > sorted[j].Position })

	columns := make([]LayoutField, 0, 2*len(sorted)+1)
	next := bits - 1

	for _, field := range sorted {
		msb := field.MostSignificantBit()

		if field.Width <= 0 || field.Position < 0 || msb >= bits {
			return nil, MakeError(ErrInvalidLayout, "field '%v' (bits %v:%v) does not fit in %v bits", field.Name, msb, field.Position, bits)
		}

		if msb > next {
			return nil, MakeError(ErrInvalidLayout, "field '%v' (bits %v:%v) overlaps bit %v", field.Name, msb, field.Position, next+1)
		}

		if msb < next {
			columns = append(columns, LayoutField{
				Name:     unusedLayoutField,
				BitRange: BitRange{Position: msb + 1, Width: next - msb},
			})
		}

		columns = append(columns, field)
		next = field.Position - 1
	}

	if next >= 0 {
		columns = append(columns, LayoutField{
			Name:     unusedLayoutField,
			BitRange: BitRange{Position: 0, Width: next + 1},
		})
	}

	return columns, nil
}

func center(text string, width int) string {
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}

// Draws an ascii diagram of a word of the given bit width, most significant bit on the left:
//
//	 15 12 11  8 7    0
//	+-----+-----+------+
//	| [1] | [0] | 0x82 |
//	+-----+-----+------+
//
// Fields must not overlap. Bits not covered by any field are drawn as "-" columns
func DrawBitLayout(fields []LayoutField, bits int, leftpad int) (string, error) {
	columns, err := layoutColumns(fields, bits)
	if err != nil {
		return "", err
	}

	var indices, border, body strings.Builder

	for _, column := range columns {
		msb := strconv.Itoa(column.MostSignificantBit())
		lsb := strconv.Itoa(column.Position)

		labelWidth := len(msb)
		if column.Width > 1 {
			labelWidth += 1 + len(lsb)
		}

		width := max(labelWidth, len(column.Name)+2)

		indices.WriteString(" ")
		if column.Width > 1 {
			indices.WriteString(msb + strings.Repeat(" ", width-len(msb)-len(lsb)) + lsb)
		} else {
			indices.WriteString(center(msb, width))
		}

		border.WriteString("+" + strings.Repeat("-", width))
		body.WriteString("|" + center(column.Name, width))
	}

	border.WriteString("+")
	body.WriteString("|")

	pad := strings.Repeat(" ", leftpad)
	var result strings.Builder

	for _, row := range []string{strings.TrimRight(indices.String(), " "), border.String(), body.String(), border.String()} {
		result.WriteString(pad)
		result.WriteString(row)
		result.WriteString("\n")
	}

	return result.String(), nil
}
