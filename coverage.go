package hamming84

// coverage lists, for p1, p2 and p3, the data-bit indices each parity bit protects.
var coverage = [parityBits][3]int{
	{0, 1, 3}, // p1: d1, d2, d4
	{0, 2, 3}, // p2: d1, d3, d4
	{1, 2, 3}, // p3: d2, d3, d4
}

const (
	dataBits     = 4
	parityBits   = 3
	codewordBits = 8
)

// codeword positions
var (
	parityPos  = [parityBits]int{0, 1, 3}
	dataPos    = [dataBits]int{2, 4, 5, 6}
	overallPos = 7
)

// parity returns p1, p2 and p3 for d.
func parity(d Data) [parityBits]Bit {
	var p [parityBits]Bit
	for i, row := range coverage {
		for _, idx := range row {
			p[i] ^= d[idx]
		}
	}
	return p
}

func xor(bits []Bit) Bit {
	var sum Bit
	for _, b := range bits {
		sum ^= b
	}
	return sum
}
