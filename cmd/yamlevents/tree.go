package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elioetibr/yaml-events/internal/diag"
	"github.com/elioetibr/yaml-events/pkg/errorspkg"
	"github.com/elioetibr/yaml-events/pkg/event"
	"github.com/elioetibr/yaml-events/pkg/lexer"
	"github.com/elioetibr/yaml-events/pkg/parser"
	"github.com/elioetibr/yaml-events/pkg/source"
)

func newTreeCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file...|glob...>",
		Short: "Assemble events into a JSON tree and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandArgs(args)
			if err != nil {
				return err
			}
			for _, f := range files {
				if err := runTree(cmd, f, *verbose); err != nil {
					return fmt.Errorf("%s: %w", f, err)
				}
			}
			return nil
		},
	}
}

func runTree(cmd *cobra.Command, path string, verbose bool) error {
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

	val, err := buildTree(p)
	if err != nil {
		printDiagnostics(p, verbose)
		return err
	}
	printDiagnostics(p, verbose)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(val)
}

// buildTree is the minimal consumer algorithm implied by the event
// grammar's invariants: a Mapping collects (PropertyName, value) pairs into
// a map, a Sequence collects values into a slice, and a bare String at the
// top level is itself the document value.
func buildTree(p *parser.Parser) (any, error) {
	ev, err := p.NextEvent()
	if err != nil {
		return nil, err
	}
	return buildValue(p, ev)
}

func buildValue(p *parser.Parser, ev event.Event) (any, error) {
	switch ev.Kind {
	case event.String:
		return ev.Value, nil
	case event.StartObject:
		return buildObject(p)
	case event.StartArray:
		return buildArray(p)
	case event.End:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected event %s at document start", ev)
	}
}

func buildObject(p *parser.Parser) (map[string]any, error) {
	m := make(map[string]any)
	for {
		ev, err := p.NextEvent()
		if err != nil {
			return nil, err
		}
		if ev.Kind == event.EndObject {
			return m, nil
		}
		if ev.Kind != event.PropertyName {
			return nil, fmt.Errorf("expected PropertyName, got %s", ev)
		}
		key := ev.Value

		valEv, err := p.NextEvent()
		if err != nil {
			return nil, err
		}
		v, err := buildValue(p, valEv)
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
}

func buildArray(p *parser.Parser) ([]any, error) {
	var items []any
	for {
		ev, err := p.NextEvent()
		if err != nil {
			return nil, err
		}
		if ev.Kind == event.EndArray {
			return items, nil
		}
		v, err := buildValue(p, ev)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}
