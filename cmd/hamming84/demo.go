package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yyyoichi/hamming84"
)

type demoSet struct {
	data      string
	encoded   string
	codewords []string
}

// demoSets replays the reference vectors: the clean codeword, every single-bit
// error and a handful of double errors. encoded is the expected codeword; the
// header prints it and the next line prints what the encoder produced.
var demoSets = []demoSet{
	{data: "1011", encoded: "01100110", codewords: []string{
		"01100110",
		"11100110", "00100110", "01000110", "01110110",
		"01101110", "01100010", "01100100", "01100111",
		"00000110", "10100110", "01100000", "01100011", "01000111",
	}},
	{data: "0101", encoded: "01001011", codewords: []string{
		"01001011", "11001011", "10001011",
	}},
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the reference encode/decode vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := newCodec(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, set := range demoSets {
				cw, err := codec.EncodeString(set.data)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\nTESTING %s --- Encoded: %s\n", set.data, set.encoded)
				fmt.Fprintf(out, "encode(%s) = %s\n", set.data, cw)
				for _, s := range set.codewords {
					c, err := hamming84.ParseCodeword(s)
					if err != nil {
						return err
					}
					d, r, err := codec.Inspect(c)
					if err != nil {
						fmt.Fprintf(out, "%s  syndrome=%s  %v\n", s, r.Syndrome, err)
						continue
					}
					fmt.Fprintf(out, "%s  syndrome=%s  %s\n", s, r.Syndrome, d)
				}
			}
			return nil
		},
	}
}
