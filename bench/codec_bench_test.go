package bench_test

import (
	"testing"

	"github.com/yyyoichi/hamming84"
)

func BenchmarkDecode(b *testing.B) {
	test := []struct {
		name     string
		opts     []hamming84.Option
		codeword string
	}{
		{name: "clean", codeword: "01100110"},
		{name: "data_error", codeword: "01000110"},
		{name: "double_error", codeword: "10100110"},
		{name: "parity_correction_clean",
			opts:     []hamming84.Option{hamming84.WithParityBitCorrection()},
			codeword: "01100110"},
		{name: "parity_correction_parity_error",
			opts:     []hamming84.Option{hamming84.WithParityBitCorrection()},
			codeword: "11100110"},
	}
	for _, tt := range test {
		b.Run(tt.name, func(b *testing.B) {
			c := hamming84.New(tt.opts...)
			cw, err := hamming84.ParseCodeword(tt.codeword)
			if err != nil {
				b.Fatalf("Failed to parse codeword (%s): %v", tt.name, err)
			}
			b.ReportAllocs()
			for b.Loop() {
				_, _ = c.Decode(cw)
			}
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	c := hamming84.New()
	d, err := hamming84.ParseData("1011")
	if err != nil {
		b.Fatalf("Failed to parse data: %v", err)
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = c.Encode(d)
	}
}

func BenchmarkDecodeString(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = hamming84.DecodeString("01000110")
	}
}
