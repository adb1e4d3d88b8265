package hamming84

import "errors"

var (
	// ErrInvalidInput is returned when a data word or codeword has the wrong
	// length or contains a symbol other than '0' and '1'.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnrecoverableDoubleError is returned by Decode when a tentative
	// single-bit correction leaves the overall parity odd. The codeword holds
	// two errors and its data is lost.
	ErrUnrecoverableDoubleError = errors.New("unrecoverable double error")
)
