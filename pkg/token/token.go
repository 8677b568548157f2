// Package token defines the lexer's output vocabulary.
package token

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	None Kind = iota
	BetweenDocs
	NewLine
	Directive
	Scalar
	KeyIndicator
	ValueIndicator
	SequenceIndicator
	Tag
	BeginDoc
	EndDoc
	EOF
)

func (k Kind) String() string {
	names := map[Kind]string{
		None:              "NONE",
		BetweenDocs:       "BETWEEN_DOCS",
		NewLine:           "NEWLINE",
		Directive:         "DIRECTIVE",
		Scalar:            "SCALAR",
		KeyIndicator:      "KEY_INDICATOR",
		ValueIndicator:    "VALUE_INDICATOR",
		SequenceIndicator: "SEQUENCE_INDICATOR",
		Tag:               "TAG",
		BeginDoc:          "BEGIN_DOC",
		EndDoc:            "END_DOC",
		EOF:               "EOF",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// Token is a tagged lexical unit. Indent is the column at which the token
// itself starts — for KeyIndicator/ValueIndicator/SequenceIndicator, the
// column of "?"/":"/"-", not of any content that follows it on the same
// line. For NewLine, Indent is instead the indent of the line that follows
// the break. Value carries the scalar/tag/directive payload; it is empty for
// structural tokens.
type Token struct {
	Kind   Kind
	Indent int
	Value  string
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%s indent=%d value=%q}", t.Kind, t.Indent, t.Value)
}
