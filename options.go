package hamming84

import "github.com/sirupsen/logrus"

// Option configures a Codec.
type Option func(*Codec)

// WithLogger reports corrections at debug level and double errors at warn
// level to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Codec) {
		if l != nil {
			c.log = l
		}
	}
}

// WithParityBitCorrection lets a lone mismatching parity bit count as the
// erroneous bit. It is flipped and checked against the overall parity like a
// data bit, so a parity-bit error paired with a second error is reported as
// ErrUnrecoverableDoubleError instead of passing silently. Data bits are never
// altered on this path.
func WithParityBitCorrection() Option {
	return func(c *Codec) {
		c.corrector = withParity{}
	}
}
