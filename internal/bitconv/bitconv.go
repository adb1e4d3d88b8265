package bitconv

import "github.com/yyyoichi/bitstream-go"

// FromByte expands b into its eight bits, most significant first.
func FromByte(b byte) [8]bool {
	w := bitstream.NewBitWriter[uint64](0, 0)
	w.Write8(0, 8, b)
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	var bits [8]bool
	for i := range bits {
		bits[i], _ = r.ReadBitAt(i)
	}
	return bits
}

// ToByte packs eight bits, most significant first, into a byte.
func ToByte(bits [8]bool) byte {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())
	return r.Read8R(8, 0)
}
