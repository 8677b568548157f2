// Package lexer implements the character-accurate YAML scanner: it
// normalizes line endings via pkg/source, tracks indentation, and emits the
// restricted token vocabulary in pkg/token.
package lexer

import (
	"github.com/elioetibr/yaml-events/pkg/errorspkg"
	"github.com/elioetibr/yaml-events/pkg/options"
	"github.com/elioetibr/yaml-events/pkg/source"
	"github.com/elioetibr/yaml-events/pkg/token"
)

type mode int

const (
	modeBetweenDocs mode = iota
	modeInDoc
)

// Lexer produces the next token on demand. It owns no lookahead beyond what
// a single Next call consumes; the parser is responsible for its own
// lookahead.
type Lexer struct {
	src      *source.Source
	reporter *errorspkg.Reporter
	opts     options.Options

	mode mode

	// keyIndent is the indent of the most recently emitted key/sequence
	// indicator; the plain-scalar reader consults it to decide where a
	// multi-line plain scalar must stop.
	keyIndent int
}

// New creates a Lexer reading from src, reporting through reporter.
func New(src *source.Source, reporter *errorspkg.Reporter, opts options.Options) *Lexer {
	return &Lexer{src: src, reporter: reporter, opts: opts, keyIndent: -1}
}

func (l *Lexer) position() errorspkg.Position {
	return errorspkg.Position{Line: l.src.Line(), Column: l.src.Column(), Offset: l.src.Offset()}
}

// Position exposes the lexer's current source position, for parser-level
// diagnostics that don't carry their own line number.
func (l *Lexer) Position() errorspkg.Position {
	return l.position()
}

func (l *Lexer) reportErr(pos errorspkg.Position, msg string) error {
	return l.reporter.Report(pos, errorspkg.ErrorTypeLexer, msg)
}

// Next returns the next token. On error it still returns a usable token
// (the lexer always makes forward progress); callers under ThrowOnError
// should treat a non-nil error as fatal regardless of the token value.
func (l *Lexer) Next() (token.Token, error) {
	for {
		c := l.src.Peek()
		col := l.src.Column()

		if c == source.EOF {
			return token.Token{Kind: token.EOF, Indent: col}, nil
		}

		if c == '\t' && col == l.src.Indent() {
			pos := l.position()
			l.src.Read()
			if err := l.reportErr(pos, "tabs cannot indent"); err != nil {
				return token.Token{}, err
			}
			continue
		}

		if c == '\n' {
			l.src.Read()
			ind, err := l.readLineIndent()
			if err != nil {
				return token.Token{}, err
			}
			return token.Token{Kind: token.NewLine, Indent: ind}, nil
		}

		if col == 0 {
			tok, matched, err := l.tryDocumentMarker()
			if err != nil {
				return token.Token{}, err
			}
			if matched {
				return tok, nil
			}
		}

		if c == '%' && l.mode == modeBetweenDocs {
			return l.scanDirective(), nil
		}

		if c == '#' {
			l.skipComment()
			continue
		}

		if l.mode == modeBetweenDocs {
			if l.opts.IgnoreTextOutsideDocumentMarkers {
				l.skipLine()
				return token.Token{Kind: token.BetweenDocs, Indent: col}, nil
			}
			l.mode = modeInDoc
		}

		switch {
		case c == '\'':
			return l.scanSingleQuoted(), nil
		case c == '"':
			return l.scanDoubleQuoted(), nil
		case c == '|':
			return l.scanBlockScalar(false), nil
		case c == '>':
			return l.scanBlockScalar(true), nil
		case c == '?':
			if _, b := l.peek2(); isIndicatorSeparator(b) {
				l.src.Read()
				if b == ' ' {
					l.skipInlineSpaces()
				}
				return token.Token{Kind: token.KeyIndicator, Indent: col}, nil
			}
		case c == ':':
			if _, b := l.peek2(); isIndicatorSeparator(b) {
				l.keyIndent = l.src.Indent()
				l.src.Read()
				if b == ' ' {
					l.skipInlineSpaces()
				}
				// SetIndent anchors a same-line nested collection (e.g. "k: - a")
				// at the content column; the token itself still reports the
				// indicator's own starting column.
				l.src.SetIndent(l.src.Column())
				return token.Token{Kind: token.ValueIndicator, Indent: col}, nil
			}
		case c == '-':
			if _, b := l.peek2(); isIndicatorSeparator(b) {
				l.keyIndent = l.src.Indent()
				l.src.Read()
				if b == ' ' {
					l.skipInlineSpaces()
				}
				// SetIndent anchors a same-line nested collection (e.g. "k: - a")
				// at the content column; the token itself still reports the
				// indicator's own starting column.
				l.src.SetIndent(l.src.Column())
				return token.Token{Kind: token.SequenceIndicator, Indent: col}, nil
			}
		case c == '!':
			return l.scanTag(), nil
		}

		return l.scanPlainScalar(), nil
	}
}

func isIndicatorSeparator(b rune) bool {
	return b == ' ' || b == '\n' || b == source.EOF
}

// peek2 returns the current rune and the one following it, without
// consuming either.
func (l *Lexer) peek2() (rune, rune) {
	a := l.src.Read()
	b := l.src.Peek()
	l.src.Unread(a)
	return a, b
}

// peekRunes looks ahead up to n runes without consuming them.
func (l *Lexer) peekRunes(n int) []rune {
	got := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		c := l.src.Peek()
		if c == source.EOF {
			break
		}
		got = append(got, c)
		l.src.Read()
	}
	for i := len(got) - 1; i >= 0; i-- {
		l.src.Unread(got[i])
	}
	return got
}

func (l *Lexer) skipInlineSpaces() {
	for l.src.Peek() == ' ' {
		l.src.Read()
	}
}

func (l *Lexer) skipComment() {
	l.src.Read() // consume '#'
	for {
		c := l.src.Peek()
		if c == '\n' || c == source.EOF {
			return
		}
		l.src.Read()
	}
}

func (l *Lexer) skipLine() {
	for {
		c := l.src.Peek()
		if c == '\n' || c == source.EOF {
			return
		}
		l.src.Read()
	}
}

// readLineIndent consumes the leading spaces of a freshly started line,
// reporting (and skipping) any indentation tab, and returns the resulting
// indent.
func (l *Lexer) readLineIndent() (int, error) {
	for {
		c := l.src.Peek()
		if c == ' ' {
			l.src.Read()
			continue
		}
		if c == '\t' && l.src.Column() == l.src.Indent() {
			pos := l.position()
			l.src.Read()
			if err := l.reportErr(pos, "tabs cannot indent"); err != nil {
				return 0, err
			}
			continue
		}
		break
	}
	return l.src.Indent(), nil
}

func (l *Lexer) scanDirective() token.Token {
	col := l.src.Column()
	l.src.Read() // consume '%'
	var sb []rune
	for {
		c := l.src.Peek()
		if c == '\n' || c == source.EOF || c == '#' {
			break
		}
		sb = append(sb, c)
		l.src.Read()
	}
	return token.Token{Kind: token.Directive, Indent: col, Value: string(sb)}
}

func (l *Lexer) scanTag() token.Token {
	col := l.src.Column()
	l.src.Read() // consume '!'
	var sb []rune
	sb = append(sb, '!')
	for {
		c := l.src.Peek()
		if c == ' ' || c == '\n' || c == source.EOF {
			break
		}
		sb = append(sb, c)
		l.src.Read()
	}
	return token.Token{Kind: token.Tag, Indent: col, Value: string(sb)}
}

// tryDocumentMarker checks for "---" / "..." at column 0 and, if found,
// consumes it and returns the resulting token. matched is false (with a
// zero Token) when the current input at column 0 is not a document marker,
// in which case normal token dispatch should proceed as usual.
func (l *Lexer) tryDocumentMarker() (token.Token, bool, error) {
	if runes := l.peekRunes(4); len(runes) >= 3 && string(runes[:3]) == "..." {
		if len(runes) == 3 || runes[3] == '\n' {
			l.consumeN(3)
			l.mode = modeBetweenDocs
			return token.Token{Kind: token.EndDoc, Indent: 0}, true, nil
		}
	}

	runes := l.peekRunes(4)
	if len(runes) >= 3 && string(runes[:3]) == "---" {
		if len(runes) == 3 || runes[3] == '\n' {
			l.consumeN(3)
			l.mode = modeInDoc
			return token.Token{Kind: token.BeginDoc, Indent: 0}, true, nil
		}
		if (runes[3] == ' ' || runes[3] == '\t') && l.opts.AcceptContentOnStartDocumentLine {
			l.consumeN(3)
			l.skipInlineSpaces()
			l.src.SetColumn(0)
			l.src.SetIndent(0)
			l.mode = modeInDoc
			return token.Token{Kind: token.BeginDoc, Indent: 0}, true, nil
		}
	}

	return token.Token{}, false, nil
}

// looksLikeDocumentMarker reports whether the input at the current (column
// 0) position is a "---" or "..." document marker, without consuming
// anything. Used by the plain-scalar scanner to stop folding a multi-line
// scalar before swallowing a following document boundary.
func (l *Lexer) looksLikeDocumentMarker() bool {
	runes := l.peekRunes(4)
	if len(runes) < 3 {
		return false
	}
	prefix := string(runes[:3])
	if prefix != "---" && prefix != "..." {
		return false
	}
	return len(runes) == 3 || runes[3] == '\n' || runes[3] == ' ' || runes[3] == '\t'
}

func (l *Lexer) consumeN(n int) {
	for i := 0; i < n; i++ {
		l.src.Read()
	}
}
