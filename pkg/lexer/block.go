package lexer

import (
	"strings"

	"github.com/elioetibr/yaml-events/pkg/source"
	"github.com/elioetibr/yaml-events/pkg/token"
)

type chompMode int

const (
	chompClip chompMode = iota
	chompStrip
	chompKeep
)

type blockLine struct {
	content string
	indent  int
	blank   bool
}

// scanBlockScalar scans a block scalar for both literal (folded=false, "|")
// and folded (folded=true, ">") styles: an optional explicit indent digit,
// an optional chomp indicator, then a body whose base indent is either
// explicit or taken from the first non-empty line.
func (l *Lexer) scanBlockScalar(folded bool) token.Token {
	col := l.src.Column()
	l.src.Read() // consume '|' or '>'

	explicitIndent := -1
	chomp := chompClip
	for i := 0; i < 2; i++ {
		c := l.src.Peek()
		if c >= '1' && c <= '9' && explicitIndent == -1 {
			explicitIndent = int(c - '0')
			l.src.Read()
			continue
		}
		if c == '-' {
			chomp = chompStrip
			l.src.Read()
			continue
		}
		if c == '+' {
			chomp = chompKeep
			l.src.Read()
			continue
		}
		break
	}

	// Rest of the header line: only whitespace or a comment is valid.
	for {
		c := l.src.Peek()
		if c == '\n' || c == source.EOF {
			break
		}
		if c == ' ' || c == '\t' {
			l.src.Read()
			continue
		}
		if c == '#' {
			l.skipComment()
			break
		}
		pos := l.position()
		l.src.Read()
		_ = l.reportErr(pos, "unexpected character after block-scalar header")
	}
	if l.src.Peek() == '\n' {
		l.src.Read()
	}

	base := explicitIndent
	var lines []blockLine

	for {
		if l.src.Peek() == source.EOF {
			break
		}
		lineIndent := 0
		for l.src.Peek() == ' ' {
			l.src.Read()
			lineIndent++
		}
		if l.src.Peek() == '\n' {
			l.src.Read()
			lines = append(lines, blockLine{indent: lineIndent, blank: true})
			continue
		}
		if l.src.Peek() == source.EOF {
			if lineIndent > 0 {
				lines = append(lines, blockLine{indent: lineIndent, blank: true})
			}
			break
		}
		if base == -1 {
			base = lineIndent
		}
		if lineIndent < base {
			l.src.UnreadN(' ', lineIndent)
			break
		}
		extra := lineIndent - base
		var sb strings.Builder
		for k := 0; k < extra; k++ {
			sb.WriteByte(' ')
		}
		for {
			c := l.src.Peek()
			if c == '\n' || c == source.EOF {
				break
			}
			sb.WriteRune(c)
			l.src.Read()
		}
		if l.src.Peek() == '\n' {
			l.src.Read()
		}
		lines = append(lines, blockLine{content: sb.String(), indent: lineIndent, blank: false})
	}

	if base == -1 {
		base = 0
	}

	trailingBlanks := 0
	for len(lines) > 0 && lines[len(lines)-1].blank {
		trailingBlanks++
		lines = lines[:len(lines)-1]
	}

	var out strings.Builder
	for i, ln := range lines {
		if ln.blank {
			out.WriteByte('\n')
			continue
		}
		if !folded {
			out.WriteString(ln.content)
			out.WriteByte('\n')
			continue
		}
		moreIndented := ln.indent > base
		nextStartsLiteralRun := i+1 < len(lines) && !lines[i+1].blank && lines[i+1].indent > base
		isLast := i == len(lines)-1
		if moreIndented || nextStartsLiteralRun || isLast {
			out.WriteString(ln.content)
			out.WriteByte('\n')
		} else {
			out.WriteString(ln.content)
			out.WriteByte(' ')
		}
	}

	result := out.String()
	switch chomp {
	case chompStrip:
		result = strings.TrimRight(result, "\n")
	case chompKeep:
		result = strings.TrimRight(result, "\n")
		if len(lines) > 0 {
			result += "\n"
		}
		result += strings.Repeat("\n", trailingBlanks)
	default: // clip
		result = strings.TrimRight(result, "\n")
		if len(lines) > 0 {
			result += "\n"
		}
	}

	return token.Token{Kind: token.Scalar, Indent: col, Value: result}
}
