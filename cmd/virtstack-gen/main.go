// Command virtstack-gen turns a YAML error-variant declaration file into a
// Go source file of virtstack constructor functions. It is meant to be run
// via go:generate:
//
//	//go:generate virtstack-gen --in errors.yml --out errors_gen.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	virtstack "github.com/xgx-io/xgx-virtstack"
	"github.com/xgx-io/xgx-virtstack/gen"
)

func newRootCmd() *cobra.Command {
	var (
		inPath  string
		outPath string
		trace   bool
	)

	cmd := &cobra.Command{
		Use:   "virtstack-gen --in decl.yml [--out file.go]",
		Short: "Generate virtstack error constructors from a YAML declaration",
		Long: `virtstack-gen reads a declaration of error variants (name, message
template, fields, optional cause) and emits one constructor function per
variant. Generated constructors record the source coordinates of their
call sites, so every call becomes one frame of the virtual stack trace.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(inPath, outPath)
			if err != nil && trace {
				fmt.Fprintln(cmd.ErrOrStderr(), virtstack.Verbose(err))
				os.Exit(1)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "declaration file (YAML)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the full virtual stack trace on failure")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func run(inPath, outPath string) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return virtstack.Wrapf(err, "failed to read declaration file %s", inPath)
	}

	decl, err := gen.Parse(raw)
	if err != nil {
		return virtstack.Wrapf(err, "failed to parse declaration file %s", inPath)
	}

	src, err := gen.Generate(decl)
	if err != nil {
		return virtstack.Wrapf(err, "failed to generate constructors from %s", inPath)
	}

	if outPath == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return virtstack.Wrapf(err, "failed to write %s", outPath)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "virtstack-gen:", err)
		os.Exit(1)
	}
}
