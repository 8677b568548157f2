package lexer

import (
	"strings"

	"github.com/elioetibr/yaml-events/pkg/source"
	"github.com/elioetibr/yaml-events/pkg/token"
)

// scanPlainScalar collects characters until EOF, a value indicator, a
// comment start, or a newline whose next line dedents to keyIndent or
// below.
func (l *Lexer) scanPlainScalar() token.Token {
	col := l.src.Column()
	var sb strings.Builder

	for {
		c := l.src.Peek()
		if c == source.EOF {
			break
		}
		if c == '\n' {
			consumed, breaks, nextIndent, stop := l.speculateAcrossNewlines(l.keyIndent)
			_ = nextIndent
			if !stop && l.src.Column() == 0 && l.looksLikeDocumentMarker() {
				stop = true
			}
			if stop {
				l.unreadAll(consumed)
				break
			}
			trimTrailingSpaces(&sb)
			foldBreaks(&sb, breaks)
			continue
		}
		if c == ':' {
			a, b := l.peek2()
			_ = a
			if b == ' ' || b == '\n' || b == source.EOF {
				break
			}
		}
		if c == ' ' {
			// " #" begins a comment; stop before the space.
			a, b := l.peek2()
			_ = a
			if b == '#' {
				break
			}
		}
		sb.WriteRune(c)
		l.src.Read()
	}

	value := strings.TrimRight(sb.String(), " ")
	return token.Token{Kind: token.Scalar, Indent: col, Value: value}
}

// speculateAcrossNewlines consumes one or more consecutive line breaks
// (recording every rune read, for rollback) and the indentation of the
// line that follows them, without committing to continuing the scalar. If
// the resulting indent is at or below stopIndent, the caller should roll
// the consumed runes back (stop=true) so the next token dispatch sees them
// fresh; otherwise the scalar continues and breaks reports how many
// newlines were consumed for folding.
func (l *Lexer) speculateAcrossNewlines(stopIndent int) (consumed []rune, breaks int, nextIndent int, stop bool) {
	for {
		if l.src.Peek() != '\n' {
			break
		}
		r := l.src.Read()
		consumed = append(consumed, r)
		breaks++
		for l.src.Peek() == ' ' {
			r2 := l.src.Read()
			consumed = append(consumed, r2)
		}
		if l.src.Peek() == '\n' {
			continue
		}
		break
	}
	nextIndent = l.src.Indent()
	stop = l.src.Peek() == source.EOF || nextIndent <= stopIndent
	return
}

func (l *Lexer) unreadAll(consumed []rune) {
	for i := len(consumed) - 1; i >= 0; i-- {
		l.src.Unread(consumed[i])
	}
}

func trimTrailingSpaces(sb *strings.Builder) {
	s := sb.String()
	trimmed := strings.TrimRight(s, " ")
	if len(trimmed) == len(s) {
		return
	}
	sb.Reset()
	sb.WriteString(trimmed)
}

// foldBreaks applies YAML line folding: a single break becomes a space; N
// consecutive breaks become N-1 literal newlines.
func foldBreaks(sb *strings.Builder, breaks int) {
	if breaks <= 1 {
		sb.WriteByte(' ')
		return
	}
	for i := 0; i < breaks-1; i++ {
		sb.WriteByte('\n')
	}
}

func (l *Lexer) scanSingleQuoted() token.Token {
	col := l.src.Column()
	l.src.Read() // opening '
	var sb strings.Builder

	for {
		c := l.src.Peek()
		if c == source.EOF {
			pos := l.position()
			_ = l.reportErr(pos, "unterminated single-quoted scalar")
			break
		}
		if c == '\'' {
			l.src.Read()
			if l.src.Peek() == '\'' {
				l.src.Read()
				sb.WriteByte('\'')
				continue
			}
			break
		}
		if c == '\n' {
			_, breaks, _, _ := l.speculateAcrossNewlines(-1 << 30)
			trimTrailingSpaces(&sb)
			foldBreaks(&sb, breaks)
			continue
		}
		sb.WriteRune(c)
		l.src.Read()
	}

	return token.Token{Kind: token.Scalar, Indent: col, Value: sb.String()}
}

func (l *Lexer) scanDoubleQuoted() token.Token {
	col := l.src.Column()
	l.src.Read() // opening "
	var sb strings.Builder

	for {
		c := l.src.Peek()
		if c == source.EOF {
			pos := l.position()
			_ = l.reportErr(pos, "unterminated double-quoted scalar")
			break
		}
		if c == '"' {
			l.src.Read()
			break
		}
		if c == '\\' {
			l.src.Read()
			l.scanEscape(&sb)
			continue
		}
		if c == '\n' {
			_, breaks, _, _ := l.speculateAcrossNewlines(-1 << 30)
			trimTrailingSpaces(&sb)
			foldBreaks(&sb, breaks)
			continue
		}
		sb.WriteRune(c)
		l.src.Read()
	}

	return token.Token{Kind: token.Scalar, Indent: col, Value: sb.String()}
}

// scanEscape handles the character immediately following a backslash inside
// a double-quoted scalar.
func (l *Lexer) scanEscape(sb *strings.Builder) {
	c := l.src.Peek()
	switch c {
	case 'n':
		sb.WriteByte('\n')
		l.src.Read()
	case 't':
		sb.WriteByte('\t')
		l.src.Read()
	case 'r':
		sb.WriteByte('\r')
		l.src.Read()
	case '0':
		sb.WriteByte(0)
		l.src.Read()
	case '\\':
		sb.WriteByte('\\')
		l.src.Read()
	case '"':
		sb.WriteByte('"')
		l.src.Read()
	case ' ':
		sb.WriteByte(' ')
		l.src.Read()
	case 'e':
		sb.WriteRune('\x1b')
		l.src.Read()
	case 'N':
		sb.WriteRune('')
		l.src.Read()
	case '_':
		sb.WriteRune(' ')
		l.src.Read()
	case 'L':
		sb.WriteRune(' ')
		l.src.Read()
	case 'P':
		sb.WriteRune(' ')
		l.src.Read()
	case 'x':
		l.src.Read()
		sb.WriteRune(l.readHexEscape(2))
	case 'u':
		l.src.Read()
		sb.WriteRune(l.readHexEscape(4))
	case '\n':
		// escaped literal newline: line continuation, no fold char emitted.
		l.src.Read()
		for l.src.Peek() == ' ' || l.src.Peek() == '\t' {
			l.src.Read()
		}
	case source.EOF:
		pos := l.position()
		_ = l.reportErr(pos, "unterminated escape sequence")
	default:
		pos := l.position()
		_ = l.reportErr(pos, "invalid escape sequence")
		sb.WriteRune(c)
		l.src.Read()
	}
}

func (l *Lexer) readHexEscape(digits int) rune {
	var v rune
	for i := 0; i < digits; i++ {
		c := l.src.Peek()
		d, ok := hexDigit(c)
		if !ok {
			pos := l.position()
			_ = l.reportErr(pos, "invalid hex escape")
			break
		}
		v = v*16 + rune(d)
		l.src.Read()
	}
	return v
}

func hexDigit(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
