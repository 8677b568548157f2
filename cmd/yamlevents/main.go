// Command yamlevents is a reference consumer of pkg/parser: it drives the
// event stream over one or more files (or glob patterns) and either echoes
// the raw events or assembles them into a JSON tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elioetibr/yaml-events/pkg/options"
)

var opts options.Options

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts = options.Default()
	verbose := false

	root := &cobra.Command{
		Use:   "yamlevents",
		Short: "Stream restricted-YAML documents as structural events",
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&opts.ThrowOnError, "throw-on-error", opts.ThrowOnError, "stop at the first diagnostic instead of accumulating")
	flags.BoolVar(&opts.MergeDocuments, "merge-documents", opts.MergeDocuments, "treat multiple documents as one continuous stream")
	flags.BoolVar(&opts.IgnoreTextOutsideDocumentMarkers, "ignore-text-outside-markers", opts.IgnoreTextOutsideDocumentMarkers, "skip content before the first '---' and between documents")
	flags.BoolVar(&opts.AcceptContentOnStartDocumentLine, "accept-content-on-start-document-line", opts.AcceptContentOnStartDocumentLine, "permit content on the same line as '---'")
	flags.BoolVar(&verbose, "verbose", false, "dump parser state to stderr on each reported diagnostic")

	root.AddCommand(newEventsCmd(&verbose))
	root.AddCommand(newTreeCmd(&verbose))
	return root
}
