// Package hamming84 implements an extended Hamming(8,4) code: four data bits,
// three structural parity bits and one overall parity bit.
//
// Decode corrects a single error in a data bit and reports
// ErrUnrecoverableDoubleError when the tentative correction leaves the
// overall parity odd. An error confined to a single parity bit is not
// corrected by default; the data bits are returned as received.
package hamming84

import (
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/sirupsen/logrus"
)

// Codec encodes and decodes Hamming(8,4) codewords. A Codec is immutable and
// safe for concurrent use.
type Codec struct {
	corrector corrector
	log       logrus.FieldLogger
}

// Report describes what Inspect did with a codeword.
type Report struct {
	Syndrome Syndrome
	// Position is the codeword position the syndrome blamed, or NoCorrection.
	Position int
	// Corrected is true when the bit at Position was flipped and the result
	// passed the overall parity check.
	Corrected bool
}

var std = New()

// New returns a Codec configured by opts.
func New(opts ...Option) *Codec {
	c := &Codec{corrector: dataOnly{}}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = l
	}
	return c
}

// Encode encodes d with the default Codec.
func Encode(d Data) Codeword {
	return std.Encode(d)
}

// Decode decodes c with the default Codec.
func Decode(c Codeword) (Data, error) {
	return std.Decode(c)
}

// EncodeString encodes a data word given as four '0'/'1' symbols.
func EncodeString(s string) (string, error) {
	return std.EncodeString(s)
}

// DecodeString decodes a codeword given as eight '0'/'1' symbols.
func DecodeString(s string) (string, error) {
	return std.DecodeString(s)
}

// Encode computes p1, p2 and p3 from the coverage table, lays the bits out as
// p1 p2 d1 p3 d2 d3 d4 and appends the parity of those seven bits.
// Encode panics if d holds a bit other than 0 or 1.
func (c *Codec) Encode(d Data) Codeword {
	err := validBits(d[:])
	assert.Assertf(err == nil, "data word: %v", err)
	cw := assemble(parity(d), d, 0)
	cw[overallPos] = xor(cw[:overallPos])
	return cw
}

// Decode returns the data word carried by cw, correcting at most one bit.
// A codeword holding a bit other than 0 or 1 fails with ErrInvalidInput.
// On ErrUnrecoverableDoubleError the returned Data is meaningless.
func (c *Codec) Decode(cw Codeword) (Data, error) {
	d, _, err := c.Inspect(cw)
	return d, err
}

// Inspect is Decode with a Report of the syndrome and any correction.
//
// Process:
//  1. Split cw into received parity, data and overall parity.
//  2. Recompute parity from the data and compare to build the syndrome.
//  3. Without a blamed position, return the data as received.
//  4. Otherwise flip the blamed bit and require even parity over all 8 bits.
func (c *Codec) Inspect(cw Codeword) (Data, Report, error) {
	if err := validBits(cw[:]); err != nil {
		return Data{}, Report{Position: NoCorrection}, fmt.Errorf("codeword: %w", err)
	}
	received, data, _ := cw.split()
	s := newSyndrome(received, parity(data))
	r := Report{Syndrome: s, Position: c.corrector.locate(s)}
	if r.Position == NoCorrection {
		return data, r, nil
	}

	fixed := cw
	fixed[r.Position] ^= 1
	if xor(fixed[:]) != 0 {
		c.log.WithFields(logrus.Fields{
			"codeword": cw.String(),
			"syndrome": s.String(),
			"position": r.Position,
		}).Warn("codeword contains two errors")
		return Data{}, r, fmt.Errorf("%w: codeword %s, syndrome %s", ErrUnrecoverableDoubleError, cw, s)
	}
	r.Corrected = true
	_, data, _ = fixed.split()
	c.log.WithFields(logrus.Fields{
		"codeword": cw.String(),
		"syndrome": s.String(),
		"position": r.Position,
	}).Debug("corrected single bit error")
	return data, r, nil
}

// EncodeString parses s with ParseData and returns the encoded codeword string.
func (c *Codec) EncodeString(s string) (string, error) {
	d, err := ParseData(s)
	if err != nil {
		return "", err
	}
	return c.Encode(d).String(), nil
}

// DecodeString parses s with ParseCodeword and returns the decoded data string.
func (c *Codec) DecodeString(s string) (string, error) {
	cw, err := ParseCodeword(s)
	if err != nil {
		return "", err
	}
	d, err := c.Decode(cw)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}
