package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elioetibr/yaml-events/pkg/event"
	"github.com/elioetibr/yaml-events/pkg/options"
)

func collectEvents(t *testing.T, p *Parser) []event.Event {
	t.Helper()
	var out []event.Event
	for {
		ev, err := p.NextEvent()
		require.NoError(t, err)
		out = append(out, ev)
		if ev.Kind == event.End {
			return out
		}
		if len(out) > 10000 {
			t.Fatal("event stream did not terminate")
		}
	}
}

func ev(kind event.Kind) event.Event            { return event.Event{Kind: kind} }
func evv(kind event.Kind, v string) event.Event { return event.Event{Kind: kind, Value: v} }

func TestSimpleMapping(t *testing.T) {
	p := ParseString("a: 1\nb: 2\n", options.Default())
	got := collectEvents(t, p)
	want := []event.Event{
		ev(event.StartObject),
		evv(event.PropertyName, "a"),
		evv(event.String, "1"),
		evv(event.PropertyName, "b"),
		evv(event.String, "2"),
		ev(event.EndObject),
		ev(event.End),
	}
	assert.Equal(t, want, got)
}

func TestNestedMappingByIndent(t *testing.T) {
	p := ParseString("a:\n  b: 1\n  c: 2\nd: 3\n", options.Default())
	got := collectEvents(t, p)
	want := []event.Event{
		ev(event.StartObject),
		evv(event.PropertyName, "a"),
		ev(event.StartObject),
		evv(event.PropertyName, "b"),
		evv(event.String, "1"),
		evv(event.PropertyName, "c"),
		evv(event.String, "2"),
		ev(event.EndObject),
		evv(event.PropertyName, "d"),
		evv(event.String, "3"),
		ev(event.EndObject),
		ev(event.End),
	}
	assert.Equal(t, want, got)
}

func TestSequenceInsideMapping(t *testing.T) {
	p := ParseString("xs:\n  - a\n  - b\n", options.Default())
	got := collectEvents(t, p)
	want := []event.Event{
		ev(event.StartObject),
		evv(event.PropertyName, "xs"),
		ev(event.StartArray),
		evv(event.String, "a"),
		evv(event.String, "b"),
		ev(event.EndArray),
		ev(event.EndObject),
		ev(event.End),
	}
	assert.Equal(t, want, got)
}

func TestEmptyValueBeforeDedent(t *testing.T) {
	p := ParseString("a:\nb: 1\n", options.Default())
	got := collectEvents(t, p)
	want := []event.Event{
		ev(event.StartObject),
		evv(event.PropertyName, "a"),
		evv(event.String, ""),
		evv(event.PropertyName, "b"),
		evv(event.String, "1"),
		ev(event.EndObject),
		ev(event.End),
	}
	assert.Equal(t, want, got)
}

func TestFoldedBlockScalarChompStrip(t *testing.T) {
	p := ParseString("k: >-\n  one\n  two\n\n", options.Default())
	got := collectEvents(t, p)
	want := []event.Event{
		ev(event.StartObject),
		evv(event.PropertyName, "k"),
		evv(event.String, "one two"),
		ev(event.EndObject),
		ev(event.End),
	}
	assert.Equal(t, want, got)
}

func TestDoubleQuotedScalarWithEscapesAndFold(t *testing.T) {
	p := ParseString("k: \"a\\tb\n  c\"\n", options.Default())
	got := collectEvents(t, p)
	want := []event.Event{
		ev(event.StartObject),
		evv(event.PropertyName, "k"),
		evv(event.String, "a\tb c"),
		ev(event.EndObject),
		ev(event.End),
	}
	assert.Equal(t, want, got)
}

func TestTabIndentationErrorKeepsStreamBalanced(t *testing.T) {
	opts := options.Default()
	opts.ThrowOnError = false
	p := ParseString("a:\n\tb: 1\n", opts)
	got := collectEvents(t, p)

	require.True(t, p.ErrorOccurred())
	foundTab := false
	for _, d := range p.Errors() {
		if containsTab(d.Message) {
			foundTab = true
		}
	}
	assert.True(t, foundTab, "expected a diagnostic mentioning tab indentation, got %v", p.Errors())

	depth := 0
	for _, e := range got {
		switch e.Kind {
		case event.StartObject, event.StartArray:
			depth++
		case event.EndObject, event.EndArray:
			depth--
		}
	}
	assert.Equal(t, 0, depth, "event stream must be balanced even after an error")
}

func containsTab(s string) bool {
	for i := 0; i+3 <= len(s); i++ {
		if s[i:i+3] == "tab" {
			return true
		}
	}
	return false
}

func TestNextEventIsIdempotentAtEnd(t *testing.T) {
	p := ParseString("a: 1\n", options.Default())
	_ = collectEvents(t, p)
	ev1, err := p.NextEvent()
	require.NoError(t, err)
	ev2, err := p.NextEvent()
	require.NoError(t, err)
	assert.Equal(t, event.Event{Kind: event.End}, ev1)
	assert.Equal(t, event.Event{Kind: event.End}, ev2)
}
