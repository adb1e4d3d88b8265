package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errDecodeFailed = errors.New("one or more codewords could not be decoded")

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <codeword>...",
		Short: "Decode 8-bit codewords",
		Long: `Decode 8-bit codewords. Every argument is decoded; a failure is printed in
place of its data word and the command exits non-zero afterwards.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := newCodec(cmd)
			if err != nil {
				return err
			}
			failed := false
			for _, arg := range args {
				d, err := codec.DecodeString(arg)
				if err != nil {
					failed = true
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", arg, err)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			if failed {
				return errDecodeFailed
			}
			return nil
		},
	}
}
