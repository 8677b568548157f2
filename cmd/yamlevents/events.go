package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/elioetibr/yaml-events/internal/diag"
	"github.com/elioetibr/yaml-events/pkg/errorspkg"
	"github.com/elioetibr/yaml-events/pkg/event"
	"github.com/elioetibr/yaml-events/pkg/lexer"
	"github.com/elioetibr/yaml-events/pkg/parser"
	"github.com/elioetibr/yaml-events/pkg/source"
)

func newEventsCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "events <file...|glob...>",
		Short: "Print one line per structural event",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandArgs(args)
			if err != nil {
				return err
			}
			for _, f := range files {
				if err := runEvents(cmd.OutOrStdout(), f, *verbose); err != nil {
					return fmt.Errorf("%s: %w", f, err)
				}
			}
			return nil
		},
	}
}

// runEvents drives a Parser over file's contents, printing one rendered
// event per line. Diagnostics are printed to stderr once the run finishes
// or aborts; under ThrowOnError the first one aborts the run.
func runEvents(w io.Writer, path string, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rep := errorspkg.NewReporter(opts.ThrowOnError)
	src := source.New(f)
	lx := lexer.New(src, rep, opts)
	p := parser.NewFromSource(src, lx, rep, opts)
	defer p.Close()

	for {
		ev, err := p.NextEvent()
		if err != nil {
			printDiagnostics(p, verbose)
			return err
		}
		fmt.Fprintln(w, ev.String())
		if ev.Kind == event.End {
			break
		}
	}
	printDiagnostics(p, verbose)
	return nil
}

func printDiagnostics(p *parser.Parser, verbose bool) {
	for _, d := range p.Errors() {
		fmt.Fprintln(os.Stderr, d.Error())
		if verbose {
			diag.Dump(os.Stderr, "parser state", p.DebugState(), d)
		}
	}
}
