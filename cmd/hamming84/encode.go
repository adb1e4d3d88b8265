package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <data>...",
		Short: "Encode 4-bit data words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := newCodec(cmd)
			if err != nil {
				return err
			}
			for _, arg := range args {
				cw, err := codec.EncodeString(arg)
				if err != nil {
					return fmt.Errorf("encode %q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), cw)
			}
			return nil
		},
	}
}
