package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elioetibr/yaml-events/pkg/options"
)

// TestExplicitKeyFormEquivalentToShorthand checks that "k: v" and
// "? k\n: v" produce the same event stream.
func TestExplicitKeyFormEquivalentToShorthand(t *testing.T) {
	shorthand := collectEvents(t, ParseString("k: v\n", options.Default()))
	explicit := collectEvents(t, ParseString("? k\n: v\n", options.Default()))
	assert.Equal(t, shorthand, explicit)
}

// TestOmittedValueProducesEmptyString checks that an omitted value before a
// dedent produces an empty string: "a:\nb: x" -> {a:"", b:"x"}.
func TestOmittedValueProducesEmptyString(t *testing.T) {
	got := collectEvents(t, ParseString("a:\nb: x\n", options.Default()))
	assert.Equal(t, "", got[2].Value)
	assert.Equal(t, "x", got[4].Value)
}

// TestScalarStylesProduceEquivalentStrings checks that block literal, block
// folded, single-quoted, double-quoted and plain scalars computing to the
// same string all produce an equivalent String event.
func TestScalarStylesProduceEquivalentStrings(t *testing.T) {
	inputs := []string{
		"k: hello world\n",
		"k: 'hello world'\n",
		"k: \"hello world\"\n",
		"k: |-\n  hello world\n",
		"k: >-\n  hello\n  world\n",
	}
	var values []string
	for _, in := range inputs {
		got := collectEvents(t, ParseString(in, options.Default()))
		values = append(values, got[2].Value)
	}
	for i, v := range values {
		assert.Equal(t, "hello world", v, "input %d (%q) produced %q", i, inputs[i], v)
	}
}

// TestNewlineStyleDoesNotAffectEventStream checks that CR/LF/CRLF choice
// never changes the event stream.
func TestNewlineStyleDoesNotAffectEventStream(t *testing.T) {
	lf := collectEvents(t, ParseString("a: 1\nb: 2\n", options.Default()))
	crlf := collectEvents(t, ParseString("a: 1\r\nb: 2\r\n", options.Default()))
	cr := collectEvents(t, ParseString("a: 1\rb: 2\r", options.Default()))
	assert.Equal(t, lf, crlf)
	assert.Equal(t, lf, cr)
}
