package hamming84

import (
	"fmt"

	"github.com/yyyoichi/hamming84/internal/bitconv"
)

// Bit is a single binary digit, always 0 or 1.
type Bit uint8

// Data is a 4-bit data word d1..d4.
type Data [dataBits]Bit

// Codeword is an 8-bit extended Hamming codeword laid out as
// p1, p2, d1, p3, d2, d3, d4 followed by the overall parity bit.
type Codeword [codewordBits]Bit

// ParseData parses exactly four '0'/'1' symbols into a Data word.
func ParseData(s string) (Data, error) {
	var d Data
	if err := parseBits(s, d[:]); err != nil {
		return Data{}, fmt.Errorf("data word: %w", err)
	}
	return d, nil
}

// ParseCodeword parses exactly eight '0'/'1' symbols into a Codeword.
func ParseCodeword(s string) (Codeword, error) {
	var c Codeword
	if err := parseBits(s, c[:]); err != nil {
		return Codeword{}, fmt.Errorf("codeword: %w", err)
	}
	return c, nil
}

func parseBits(s string, dst []Bit) error {
	if len(s) != len(dst) {
		return fmt.Errorf("%w: expected %d symbols, got %d", ErrInvalidInput, len(dst), len(s))
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			dst[i] = 0
		case '1':
			dst[i] = 1
		default:
			return fmt.Errorf("%w: symbol %q at index %d is not binary", ErrInvalidInput, s[i], i)
		}
	}
	return nil
}

// validBits rejects any Bit other than 0 or 1, for words built without Parse.
func validBits(bits []Bit) error {
	for i, b := range bits {
		if b > 1 {
			return fmt.Errorf("%w: bit value %d at index %d is not binary", ErrInvalidInput, b, i)
		}
	}
	return nil
}

func formatBits(bits []Bit) string {
	buf := make([]byte, len(bits))
	for i, b := range bits {
		buf[i] = '0' + byte(b)
	}
	return string(buf)
}

// String returns the data word as four '0'/'1' symbols.
func (d Data) String() string {
	return formatBits(d[:])
}

// String returns the codeword as eight '0'/'1' symbols.
func (c Codeword) String() string {
	return formatBits(c[:])
}

// Nibble packs the data word into the low four bits of a byte, d1 first.
func (d Data) Nibble() byte {
	var bits [8]bool
	for i, b := range d {
		bits[4+i] = b == 1
	}
	return bitconv.ToByte(bits)
}

// DataFromNibble is the inverse of Data.Nibble. Values above 0x0f are rejected.
func DataFromNibble(n byte) (Data, error) {
	if n > 0x0f {
		return Data{}, fmt.Errorf("%w: nibble 0x%02x exceeds 4 bits", ErrInvalidInput, n)
	}
	var d Data
	bits := bitconv.FromByte(n)
	for i := range d {
		d[i] = fromBool(bits[4+i])
	}
	return d, nil
}

// Byte packs the codeword into a byte with position 0 as the most significant bit.
func (c Codeword) Byte() byte {
	var bits [8]bool
	for i, b := range c {
		bits[i] = b == 1
	}
	return bitconv.ToByte(bits)
}

// CodewordFromByte is the inverse of Codeword.Byte.
func CodewordFromByte(b byte) Codeword {
	var c Codeword
	for i, v := range bitconv.FromByte(b) {
		c[i] = fromBool(v)
	}
	return c
}

func fromBool(v bool) Bit {
	if v {
		return 1
	}
	return 0
}

// assemble lays out parity, data and the overall parity bit in codeword order.
func assemble(p [parityBits]Bit, d Data, overall Bit) Codeword {
	var c Codeword
	for i, pos := range parityPos {
		c[pos] = p[i]
	}
	for i, pos := range dataPos {
		c[pos] = d[i]
	}
	c[overallPos] = overall
	return c
}

// split is the inverse of assemble.
func (c Codeword) split() (p [parityBits]Bit, d Data, overall Bit) {
	for i, pos := range parityPos {
		p[i] = c[pos]
	}
	for i, pos := range dataPos {
		d[i] = c[pos]
	}
	return p, d, c[overallPos]
}
