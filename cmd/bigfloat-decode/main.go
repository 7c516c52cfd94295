// Command bigfloat-decode decodes order-preserving hexadecimal strings,
// as produced by codec.Encode, and prints the decimal value of each.
//
// Rendering an exact decimal value would need an arbitrary-precision
// decimal library; this module depends on none (decimal interop is
// explicitly out of scope, per SPEC_FULL.md — only a power-of-two radix
// converter is in scope), so each value is rendered through
// BigFloat.ToFloat64: exact for values that fit a double, nearest
// otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmkristian/bigfloat/codec"
)

var root = &cobra.Command{
	Use:   "bigfloat-decode <hex>...",
	Short: "Decode order-preserving hexadecimal BigFloat strings and print their decimal values.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		n, err := codec.Decode(arg)
		if err != nil {
			return fmt.Errorf("decode %q: %w", arg, err)
		}
		fmt.Fprintf(out, "%v\n", n.ToFloat64())
	}
	return nil
}

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
