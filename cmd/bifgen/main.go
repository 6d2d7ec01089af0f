// Command bifgen compiles the built-in function and overload
// descriptor files for the Power back end into a declarations header,
// an initialization file, and a macro-alias include.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Exit codes reported to the shell, one per failure phase. A build
// driver distinguishes phases by code; the diagnostic names the spot.
const (
	ecOK = iota
	ecBadArgs
	ecNoBif
	ecNoOvld
	ecNoHeader
	ecNoInit
	ecNoDefines
	ecParseBif
	ecParseOvld
	ecWriteHeader
	ecWriteInit
	ecWriteDefines
	ecInternal
)

// exitError carries a phase code through cobra's error return.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		var xe *exitError
		if errors.As(err, &xe) {
			return xe.code
		}
		// Argument validation failures are the only errors not
		// produced by generate.
		fmt.Fprintf(os.Stderr, "bifgen: %v\n", err)
		return ecBadArgs
	}
	return ecOK
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var policyPath string

	rootCmd := &cobra.Command{
		Use:   "bifgen <bif-file> <ovld-file> <header-file> <init-file> <defines-file>",
		Short: "bifgen generates built-in function tables for the Power back end",
		Long: `bifgen compiles two flat-text descriptor files, the built-in
function table and the overload table, into generated declaration,
initialization, and macro-alias files consumed by the compiler build.
Output is deterministic: identical inputs produce byte-identical
artifacts.`,
		Version:       version,
		Args:          cobra.ExactArgs(5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(args, policyPath, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().StringVar(&policyPath, "policy", "",
		"YAML file overriding grammar policy limits")

	return rootCmd
}
