package parser

import (
	"github.com/elioetibr/yaml-events/pkg/event"
	"github.com/elioetibr/yaml-events/pkg/token"
)

// step consumes exactly one token and applies the main dispatch table,
// possibly pushing one or more events onto the queue.
func (p *Parser) step() error {
	tok, err := p.next()
	if err != nil {
		return err
	}

	switch tok.Kind {
	case token.None, token.BetweenDocs, token.BeginDoc, token.Tag, token.Directive:
		return nil
	case token.NewLine:
		return p.handleNewLine(tok)
	case token.ValueIndicator:
		return p.handleValueIndicator(tok)
	case token.KeyIndicator:
		return p.handleKeyIndicator(tok)
	case token.Scalar:
		return p.handleScalar(tok)
	case token.SequenceIndicator:
		return p.handleSequenceIndicator(tok)
	case token.EndDoc:
		if p.opts.MergeDocuments {
			return nil
		}
		return p.handleEnd()
	case token.EOF:
		return p.handleEnd()
	default:
		return nil
	}
}

// handleNewLine reacts to a line's resulting indent: dedents close frames,
// and a sequence item line that lands back at its own enclosing indent
// without another "-" ends that sequence.
func (p *Parser) handleNewLine(tok token.Token) error {
	nt, err := p.peek()
	if err != nil {
		return err
	}
	if nt.Kind == token.NewLine || nt.Kind == token.EndDoc || nt.Kind == token.EOF {
		return nil
	}

	indent := tok.Indent
	if indent < p.currentIndent {
		if err := p.closeToIndent(indent, p.lx.Position()); err != nil {
			return err
		}
	}
	if top := p.topFrame(); top != nil && top.kind == frameSequence &&
		indent == top.enclosingIndent && nt.Kind != token.SequenceIndicator {
		p.closeSequenceFrame()
	}
	return nil
}

func (p *Parser) closeSequenceFrame() {
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.emit(event.Event{Kind: event.EndArray})
	p.currentIndent = top.enclosingIndent
}

// handleValueIndicator handles a bare ":" with no preceding scalar on this
// token: an empty key, or a value slot opening deeper than the current
// frame.
func (p *Parser) handleValueIndicator(tok token.Token) error {
	if p.expectingKey || tok.Indent > p.currentIndent {
		return p.enqueueKey(tok.Indent, "")
	}
	return nil
}

// handleKeyIndicator handles the explicit "?"-form key. When a `?` arrives
// in a value slot, the dangling value is
// completed with an empty string and the indicator is then processed as a
// normal key request, rather than discarded: this keeps the emitted stream
// well-formed without losing the key the `?` introduces. A `?` deeper than
// currentIndent first opens a new Mapping and is then processed the same way.
func (p *Parser) handleKeyIndicator(tok token.Token) error {
	if tok.Indent > p.currentIndent {
		p.pushFrame(frameMapping, tok.Indent)
		p.emit(event.Event{Kind: event.StartObject})
	}
	if p.topIsSequence() {
		return p.reportErr(p.lx.Position(), "unexpected key indicator '?' inside a sequence")
	}
	if !p.expectingKey {
		p.emit(event.Event{Kind: event.String, Value: ""})
	}

	nt, err := p.next()
	if err != nil {
		return err
	}
	if nt.Kind != token.Scalar {
		return p.reportErr(p.lx.Position(), "expected a scalar after '?' key indicator")
	}
	p.emit(event.Event{Kind: event.PropertyName, Value: nt.Value})
	return nil
}

// handleScalar handles a bare scalar token: a key if followed by ":", a
// value otherwise.
func (p *Parser) handleScalar(tok token.Token) error {
	nt, err := p.peek()
	if err != nil {
		return err
	}
	if nt.Kind == token.ValueIndicator {
		if err := p.enqueueKey(tok.Indent, tok.Value); err != nil {
			return err
		}
		_, err := p.next() // consume the value indicator
		return err
	}
	if p.expectingKey {
		if err := p.reportErr(p.lx.Position(), "expected a mapping key, synthesizing an empty one"); err != nil {
			return err
		}
		if err := p.enqueueKey(tok.Indent, ""); err != nil {
			return err
		}
	}
	p.emit(event.Event{Kind: event.String, Value: tok.Value})
	return nil
}

// handleSequenceIndicator handles a "-" item marker: continues an open
// sequence at the same indent, or opens a new one.
func (p *Parser) handleSequenceIndicator(tok token.Token) error {
	top := p.topFrame()
	switch {
	case top != nil && top.kind == frameSequence && tok.Indent == p.currentIndent:
		return nil
	case tok.Indent >= p.currentIndent:
		p.pushFrame(frameSequence, tok.Indent)
		p.emit(event.Event{Kind: event.StartArray})
		return nil
	default:
		return p.reportErr(p.lx.Position(), "unexpected sequence indicator '-'")
	}
}

// handleEnd closes everything down to the root and emits the terminal End
// event. It runs at EOF, and at an EndDoc unless opts.MergeDocuments is set
// (in which case step ignores the EndDoc and parsing continues into the next
// document).
func (p *Parser) handleEnd() error {
	if err := p.closeToIndent(-1, p.lx.Position()); err != nil {
		return err
	}
	p.emit(event.Event{Kind: event.End})
	p.ended = true
	return nil
}
