package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/krizos/hack-heredoc-scanner/pkg/hostgrammar"
	"github.com/krizos/hack-heredoc-scanner/pkg/tracing"
)

var version = "dev" // set at compile time by ldflags

var (
	heredocStyle = color.New(color.FgCyan)
	hostStyle    = color.New(color.FgWhite, color.Faint)
)

func buildRootCmd() *cobra.Command {
	var trace bool

	root := &cobra.Command{
		Use:           "heredocscan",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Short:         "Drive the heredoc/nowdoc external scanner over a file and print its tokens",
		Long: heredoc.Doc(`

		heredocscan tokenizes a source file (or stdin) using the same
		heredoc/nowdoc external scanner an incremental parser would embed,
		alternating between a minimal fixture grammar and the scanner
		itself, and prints the resulting token stream.
		`),
	}

	scan := &cobra.Command{
		Use:   "scan [file]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Tokenize a file (or stdin) and print the token stream",
		Example: heredoc.Doc(`

		# Tokenize a file
		$ heredocscan scan testdata/interpolated.hack

		# Read from stdin and log each token as it is emitted
		$ cat testdata/nowdoc.hack | heredocscan scan --trace
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runScan(cmd.OutOrStdout(), src, trace)
		},
	}
	scan.Flags().BoolVar(&trace, "trace", false, "Log each emitted token (scanner or host) to stderr.")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the heredocscan version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}

	root.AddCommand(scan, versionCmd)
	return root
}

func readSource(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(args[0])
}

func runScan(out io.Writer, src []byte, trace bool) error {
	var logger tracing.Logger = tracing.Noop{}
	if trace {
		zl, err := tracing.NewZapLogger(true)
		if err != nil {
			return err
		}
		defer zl.Sync() //nolint:errcheck
		logger = zl
	}

	hooks := hostgrammar.Hooks{
		RoundTrip: true,
		OnToken: func(t hostgrammar.Token) {
			if t.Heredoc {
				logger.Debug("scanner emitted %s at %s", t.Kind, t.Start)
			} else {
				logger.Debug("host lexed %s at %s", t.Host, t.Start)
			}
		},
	}

	for _, t := range hostgrammar.TokenizeWithHooks(src, hooks) {
		if t.Heredoc {
			heredocStyle.Fprintf(out, "%-24s %s..%s\n", t.Kind, t.Start, t.End)
		} else {
			hostStyle.Fprintf(out, "%-24s %s..%s\n", t.Host, t.Start, t.End)
		}
	}
	return nil
}
