// Package parser implements an indentation-driven event parser: it
// translates the lexer's token stream into the restricted JSON-equivalent
// event vocabulary in pkg/event, using a frame stack and bounded (roughly
// one token) lookahead.
package parser

import (
	"github.com/elioetibr/yaml-events/pkg/errorspkg"
	"github.com/elioetibr/yaml-events/pkg/event"
	"github.com/elioetibr/yaml-events/pkg/lexer"
	"github.com/elioetibr/yaml-events/pkg/options"
	"github.com/elioetibr/yaml-events/pkg/source"
	"github.com/elioetibr/yaml-events/pkg/token"
)

// Parser pulls tokens from a Lexer and produces events one at a time via
// NextEvent. It owns a frame stack for open Mappings/Sequences, a FIFO
// event queue (a single token decision can emit more than one event), and
// the derived expectingKey predicate.
type Parser struct {
	lx       *lexer.Lexer
	src      *source.Source
	reporter *errorspkg.Reporter
	opts     options.Options

	peeked *token.Token

	stack         []frame
	currentIndent int
	expectingKey  bool

	queue []event.Event
	ended bool
}

// New creates a Parser reading tokens from lx. The root context starts in
// the "awaiting key" state, with no frame open yet; the first key or
// sequence indicator opens the root collection.
func New(lx *lexer.Lexer, reporter *errorspkg.Reporter, opts options.Options) *Parser {
	return &Parser{
		lx:            lx,
		reporter:      reporter,
		opts:          opts,
		currentIndent: -1,
		expectingKey:  true,
	}
}

// NewFromSource is like New, but also remembers src so Close can honor
// opts.CloseInput.
func NewFromSource(src *source.Source, lx *lexer.Lexer, reporter *errorspkg.Reporter, opts options.Options) *Parser {
	p := New(lx, reporter, opts)
	p.src = src
	return p
}

// ParseString is a convenience constructor wiring a string source through a
// fresh Lexer into a new Parser.
func ParseString(input string, opts options.Options) *Parser {
	rep := errorspkg.NewReporter(opts.ThrowOnError)
	src := source.NewFromString(input)
	lx := lexer.New(src, rep, opts)
	return NewFromSource(src, lx, rep, opts)
}

// Close closes the underlying character source if opts.CloseInput is set;
// otherwise it is a no-op, leaving the reader's lifecycle to the caller
// that supplied it.
func (p *Parser) Close() error {
	if !p.opts.CloseInput || p.src == nil {
		return nil
	}
	return p.src.Close()
}

// Errors returns every diagnostic reported so far (lexer and parser both
// forward through the same reporter).
func (p *Parser) Errors() []*errorspkg.Diagnostic {
	return p.reporter.Errors()
}

// ErrorOccurred reports whether any diagnostic has been recorded.
func (p *Parser) ErrorOccurred() bool {
	return p.reporter.ErrorOccurred()
}

// FrameSnapshot is a debug-only view of one stack frame, exported for
// internal/diag dumps; it carries no behavior of its own.
type FrameSnapshot struct {
	Kind            string
	EnclosingIndent int
	Indent          int
}

// DebugState returns a snapshot of the parser's frame stack and derived
// state, for internal/diag.Dump. It is never consulted by parsing itself.
func (p *Parser) DebugState() any {
	frames := make([]FrameSnapshot, len(p.stack))
	for i, f := range p.stack {
		kind := "Mapping"
		if f.kind == frameSequence {
			kind = "Sequence"
		}
		frames[i] = FrameSnapshot{Kind: kind, EnclosingIndent: f.enclosingIndent, Indent: f.indent}
	}
	return struct {
		Stack         []FrameSnapshot
		CurrentIndent int
		ExpectingKey  bool
	}{Stack: frames, CurrentIndent: p.currentIndent, ExpectingKey: p.expectingKey}
}

// NextEvent returns the next event in the stream. Once the terminal End
// event has been produced, further calls return End again.
func (p *Parser) NextEvent() (event.Event, error) {
	for {
		if len(p.queue) > 0 {
			ev := p.queue[0]
			p.queue = p.queue[1:]
			return ev, nil
		}
		if p.ended {
			return event.Event{Kind: event.End}, nil
		}
		if err := p.step(); err != nil {
			return event.Event{}, err
		}
	}
}

// next consumes and returns the next token, draining the one-token peek
// buffer first if it holds one.
func (p *Parser) next() (token.Token, error) {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t, nil
	}
	return p.lx.Next()
}

// peek returns the next token without consuming it.
func (p *Parser) peek() (token.Token, error) {
	if p.peeked == nil {
		t, err := p.lx.Next()
		if err != nil {
			return token.Token{}, err
		}
		p.peeked = &t
	}
	return *p.peeked, nil
}

func (p *Parser) reportErr(pos errorspkg.Position, msg string) error {
	return p.reporter.Report(pos, errorspkg.ErrorTypeParser, msg)
}

func (p *Parser) topFrame() *frame {
	if len(p.stack) == 0 {
		return nil
	}
	return &p.stack[len(p.stack)-1]
}

func (p *Parser) topIsSequence() bool {
	top := p.topFrame()
	return top != nil && top.kind == frameSequence
}

// pushFrame opens a new collection at indent, recording the parent's
// currentIndent as its enclosingIndent, and advances currentIndent to it.
func (p *Parser) pushFrame(kind frameKind, indent int) {
	p.stack = append(p.stack, frame{kind: kind, enclosingIndent: p.currentIndent, indent: indent})
	p.currentIndent = indent
}

// emit appends an event to the queue and updates expectingKey per the
// derived predicate: false inside any Sequence frame; inside a Mapping (or
// at the root, before any frame exists), true exactly when kind is one of
// StartObject, EndObject, EndArray, or String.
func (p *Parser) emit(ev event.Event) {
	p.queue = append(p.queue, ev)
	if p.topIsSequence() {
		p.expectingKey = false
		return
	}
	switch ev.Kind {
	case event.StartObject, event.EndObject, event.EndArray, event.String:
		p.expectingKey = true
	default:
		p.expectingKey = false
	}
}

// enqueueKey decides how a key at indent fits against the currently open
// frame: deeper opens a new Mapping, equal continues the current one
// (closing a dangling value first if one is owed), shallower should never
// reach here because the caller pre-closes via closeToIndent.
func (p *Parser) enqueueKey(indent int, name string) error {
	switch {
	case indent > p.currentIndent:
		p.pushFrame(frameMapping, indent)
		p.emit(event.Event{Kind: event.StartObject})
		p.emit(event.Event{Kind: event.PropertyName, Value: name})
	case indent == p.currentIndent:
		if !p.expectingKey {
			p.emit(event.Event{Kind: event.String, Value: ""})
		}
		p.emit(event.Event{Kind: event.PropertyName, Value: name})
	default:
		// Reachable only if a caller failed to pre-close via closeToIndent.
		return p.reportErr(p.lx.Position(), "internal error: enqueueKey called with indent below currentIndent")
	}
	return nil
}

// closeToIndent pops every frame whose enclosingIndent is still >= target,
// synthesizing a dangling empty value first when a Mapping frame owes one,
// then restores currentIndent from the last popped frame's enclosingIndent
// and reports a mismatch if it doesn't land exactly on target.
func (p *Parser) closeToIndent(target int, pos errorspkg.Position) error {
	closedAny := false
	lastEnclosing := p.currentIndent

	for len(p.stack) > 0 && p.stack[len(p.stack)-1].enclosingIndent >= target {
		top := p.stack[len(p.stack)-1]
		if top.kind == frameMapping && !p.expectingKey {
			p.emit(event.Event{Kind: event.String, Value: ""})
		}
		p.stack = p.stack[:len(p.stack)-1]
		if top.kind == frameMapping {
			p.emit(event.Event{Kind: event.EndObject})
		} else {
			p.emit(event.Event{Kind: event.EndArray})
		}
		lastEnclosing = top.enclosingIndent
		closedAny = true
	}

	if closedAny {
		p.currentIndent = lastEnclosing
	}
	if p.currentIndent != target {
		if err := p.reportErr(pos, "indentation mismatch on close"); err != nil {
			return err
		}
		p.currentIndent = target
	}
	return nil
}
