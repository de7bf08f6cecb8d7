// hlorepro executes a compiled HLO reproducer against deterministically
// filled buffers, to let a miscompile be reproduced outside of the full
// compiler and runtime.
package main

import (
	"flag"
	"os"

	"github.com/hlotools/hlorepro"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

const longHelp = `hlorepro executes an HLO reproducer in object form, so that a
miscompile can be bisected outside of the full compiler and runtime.

Expected workflow:

1) In the .hlo file, rename the root computation to EntryModule.
2) Run the .hlo file with XLA_FLAGS=--xla_dump_to set, to obtain the object
   file and the buffer-assignment report.
3) Build this driver with CGO_LDFLAGS pointing at the object file from (2),
   which provides the EntryModule symbol.
4) Run the resulting binary with the buffer-assignment report as argument.
   The driver prints the kernel's output buffer to stdout.
5) Compare the printed output between optimization levels. If the outputs
   differ, there is a miscompile.

Set the environment variable VERBOSE to see diagnostic logging and an echo of
the filled input buffers.`

var rootCmd = &cobra.Command{
	Use:          "hlorepro <buffer-assignment-file>",
	Short:        "Replay a compiled HLO reproducer over deterministic inputs",
	Long:         longHelp,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		driver := &hlorepro.Driver{
			Entry:   entryModule,
			Out:     os.Stdout,
			Verbose: verbose(),
		}
		return driver.RunFile(args[0])
	},
}

func verbose() bool {
	_, ok := os.LookupEnv("VERBOSE")
	return ok
}

func main() {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	if verbose() {
		_ = fs.Set("v", "1")
	}
	defer klog.Flush()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
