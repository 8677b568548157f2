// Package diag provides a human-debugging dump of parser state, used only
// when a consumer opts into verbose diagnostics (e.g. cmd/yamlevents
// --verbose).
package diag

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/elioetibr/yaml-events/pkg/errorspkg"
)

// Config controls how Dump renders: two-space indentation, with pointer
// addresses and slice capacities left out, since frame stacks hold no
// pointers worth showing an address for.
var Config = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump writes a labeled spew dump of state (typically a Parser's
// DebugState()) alongside the diagnostic that triggered the dump.
func Dump(w io.Writer, label string, state any, d *errorspkg.Diagnostic) {
	fmt.Fprintf(w, "--- %s ---\n", label)
	fmt.Fprintf(w, "diagnostic: %s\n", d.Error())
	fmt.Fprint(w, "state:\n")
	Config.Fdump(w, state)
}
