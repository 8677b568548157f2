// Package golden implements golden-file comparison for recorded event
// streams, used by pkg/parser's scenario-replay tests: a file-backed
// corpus with a readable diff on mismatch via github.com/pmezard/go-difflib.
package golden

import (
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/elioetibr/yaml-events/pkg/event"
)

// Render serializes an event stream one event per line, the format golden
// files are stored in.
func Render(events []event.Event) string {
	out := ""
	for _, e := range events {
		out += e.String() + "\n"
	}
	return out
}

// Compare reads the golden file at path and returns a unified diff against
// got if they differ, or an empty string if they match. update, when true,
// (re)writes the golden file instead of comparing (the "-update" pattern
// common to golden-file test suites).
func Compare(path string, got []event.Event, update bool) (string, error) {
	rendered := Render(got)

	if update {
		return "", os.WriteFile(path, []byte(rendered), 0o644)
	}

	want, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading golden file %s: %w", path, err)
	}
	if string(want) == rendered {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(rendered),
		FromFile: path,
		ToFile:   "got",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", err
	}
	return text, nil
}
