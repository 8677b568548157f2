package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// containsGlobChars reports whether s contains glob metacharacters.
func containsGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// expandArgs turns each CLI argument into a list of concrete file paths.
// Arguments without glob metacharacters pass through unchanged; arguments
// containing them are expanded with doublestar, which (unlike
// path/filepath.Glob) understands "**" for recursive directory matching.
func expandArgs(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if !containsGlobChars(arg) {
			out = append(out, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("glob %q matched no files", arg)
		}
		out = append(out, matches...)
	}
	sort.Strings(out)
	return out, nil
}
