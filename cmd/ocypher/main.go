// Package main provides the ocypher CLI entry point.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/orneryd/ocypher/internal/cyplog"
	"github.com/orneryd/ocypher/pkg/parser"
	"github.com/orneryd/ocypher/pkg/perrors"
	"github.com/orneryd/ocypher/pkg/render"
	"github.com/orneryd/ocypher/pkg/result"
	"github.com/orneryd/ocypher/pkg/segment"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

var log = cyplog.New("cmd")

func main() {
	rootCmd := &cobra.Command{
		Use:   "ocypher",
		Short: "ocypher - an openCypher grammar engine and AST toolkit",
		Long: `ocypher parses openCypher statements and interpreter
commands into a typed AST, renders that AST for inspection, and
segments raw input into statement/command boundaries without building
a tree.`,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ocypher v%s (%s)\n", version, commit)
		},
	})

	parseCmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a file (or stdin) and render its AST",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runParse,
	}
	parseCmd.Flags().Bool("single", false, "stop after the first top-level element")
	parseCmd.Flags().Bool("statements-only", false, "use the statement-only grammar entry rule")
	parseCmd.Flags().Int("width", 0, "truncate the detail column to this width (0 disables)")
	rootCmd.AddCommand(parseCmd)

	quickParseCmd := &cobra.Command{
		Use:   "quick-parse [file]",
		Short: "Segment a file (or stdin) into statement/command boundaries",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runQuickParse,
	}
	quickParseCmd.Flags().Bool("statements-only", false, "fold ':' lines into the current statement")
	rootCmd.AddCommand(quickParseCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Errorf("command failed: %v", err)
		os.Exit(1)
	}
}

func colorScheme() perrors.ColorScheme {
	return perrors.SchemeByName(os.Getenv("OCYPHER_COLOR"))
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return readAll(os.Stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()
	return readAll(f)
}

func readAll(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return buf, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	single, _ := cmd.Flags().GetBool("single")
	statementsOnly, _ := cmd.Flags().GetBool("statements-only")
	width, _ := cmd.Flags().GetInt("width")

	colors := colorScheme()
	cfg := parser.DefaultConfig()
	cfg.ErrorColorization = colors

	var flags parser.Flags
	if single {
		flags |= parser.Single
	}
	if statementsOnly {
		flags |= parser.OnlyStatements
	}

	res := result.Parse(input, cfg, flags)
	if err := render.Fprint(os.Stdout, res.Elements(), render.Options{Colors: colors, Width: width}); err != nil {
		return err
	}
	for _, e := range res.Errors() {
		fmt.Fprintln(os.Stderr, e.Format(colors))
	}
	if !res.EOF() {
		log.WithField("node_count", res.NodeCount()).Warnf("parse stopped before end-of-input")
	}
	if len(res.Errors()) > 0 {
		os.Exit(1)
	}
	return nil
}

func runQuickParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	statementsOnly, _ := cmd.Flags().GetBool("statements-only")
	var flags segment.Flags
	if statementsOnly {
		flags |= segment.OnlyStatements
	}

	rc := segment.QuickParse(input, flags, func(s segment.Segment) int {
		kind := "statement"
		if s.Kind == segment.KindCommand {
			kind = "command"
		}
		fmt.Printf("%s  %s  eof=%t  %q\n", kind, s.Range.String(), s.EOF, s.Text)
		return 0
	})
	if rc != 0 {
		os.Exit(rc)
	}
	return nil
}
