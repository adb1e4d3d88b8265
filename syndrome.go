package hamming84

import (
	"math/bits"
	"slices"

	"github.com/chronos-tachyon/assert"
)

// NoCorrection is the Report position used when the syndrome points at no bit.
const NoCorrection = -1

// Syndrome records which of p1, p2 and p3 disagree with the parity recomputed
// from the received data bits. Bit i is set when parity bit i+1 mismatches.
type Syndrome uint8

func newSyndrome(received, expected [parityBits]Bit) Syndrome {
	var s Syndrome
	for i := range received {
		if received[i] != expected[i] {
			s |= 1 << i
		}
	}
	return s
}

// Mismatch reports whether parity bit i (0 for p1) mismatched.
func (s Syndrome) Mismatch(i int) bool {
	return s&(1<<i) != 0
}

// String returns the syndrome as three symbols in p1, p2, p3 order,
// '1' marking a mismatch.
func (s Syndrome) String() string {
	buf := make([]byte, parityBits)
	for i := range buf {
		buf[i] = '0'
		if s.Mismatch(i) {
			buf[i] = '1'
		}
	}
	return string(buf)
}

func (s Syndrome) weight() int {
	return bits.OnesCount8(uint8(s))
}

// dataCandidates maps a syndrome to the data index whose covering parity bits
// are exactly the mismatching ones, or -1.
var dataCandidates = buildDataCandidates()

func buildDataCandidates() [1 << parityBits]int {
	var table [1 << parityBits]int
	for i := range table {
		table[i] = -1
	}
	for idx := range dataBits {
		var s Syndrome
		for p, row := range coverage {
			if slices.Contains(row[:], idx) {
				s |= 1 << p
			}
		}
		assert.Assertf(s.weight() >= 2, "data bit %d is covered by only %d parity bits", idx, s.weight())
		assert.Assertf(table[s] == -1, "data bits %d and %d share syndrome %s", table[s], idx, s)
		table[s] = idx
	}
	return table
}

var _ corrector = dataOnly{}
var _ corrector = withParity{}

type corrector interface {
	// locate returns the codeword position the syndrome blames, or NoCorrection.
	locate(s Syndrome) int
}

// dataOnly blames data bits only. A single mismatching parity bit is left alone.
type dataOnly struct{}

func (dataOnly) locate(s Syndrome) int {
	if idx := dataCandidates[s]; idx >= 0 {
		return dataPos[idx]
	}
	return NoCorrection
}

// withParity also blames a parity bit when it is the only mismatch.
type withParity struct{}

func (withParity) locate(s Syndrome) int {
	if pos := (dataOnly{}).locate(s); pos != NoCorrection {
		return pos
	}
	if s.weight() == 1 {
		return parityPos[bits.TrailingZeros8(uint8(s))]
	}
	return NoCorrection
}
