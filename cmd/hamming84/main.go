package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yyyoichi/hamming84"
	"github.com/yyyoichi/hamming84/internal/log"
)

const (
	flagVerbose          = "verbose"
	flagLogFormat        = "log-format"
	flagParityCorrection = "parity-correction"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hamming84",
		Short: "Encode and decode extended Hamming(8,4) codewords",
		Long: `Encode 4-bit data words into 8-bit extended Hamming codewords and decode
codewords back, correcting a single data-bit error and reporting double errors.

Words are written as strings of '0' and '1', for example:
  hamming84 encode 1011
  hamming84 decode 01100110 11100110`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolP(flagVerbose, "v", false, "log corrections at debug level")
	root.PersistentFlags().String(flagLogFormat, "text", "log format: text or json")
	root.PersistentFlags().Bool(flagParityCorrection, false, "also blame a lone mismatching parity bit")

	root.AddCommand(newEncodeCmd(), newDecodeCmd(), newDemoCmd())
	return root
}

// newCodec builds the Codec selected by the persistent flags. Logs go to stderr.
func newCodec(cmd *cobra.Command) (*hamming84.Codec, error) {
	verbose, _ := cmd.Flags().GetBool(flagVerbose)
	format, _ := cmd.Flags().GetString(flagLogFormat)
	parityCorrection, _ := cmd.Flags().GetBool(flagParityCorrection)

	logger, err := log.NewLogger("hamming84", cmd.ErrOrStderr(), format, verbose)
	if err != nil {
		return nil, err
	}
	opts := []hamming84.Option{hamming84.WithLogger(logger)}
	if parityCorrection {
		opts = append(opts, hamming84.WithParityBitCorrection())
	}
	return hamming84.New(opts...), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
