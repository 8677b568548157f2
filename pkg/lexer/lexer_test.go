package lexer

import (
	"testing"

	"github.com/elioetibr/yaml-events/pkg/errorspkg"
	"github.com/elioetibr/yaml-events/pkg/options"
	"github.com/elioetibr/yaml-events/pkg/source"
	"github.com/elioetibr/yaml-events/pkg/token"
)

func newTestLexer(input string, opts options.Options) (*Lexer, *errorspkg.Reporter) {
	rep := errorspkg.NewReporter(opts.ThrowOnError)
	return New(source.NewFromString(input), rep, opts), rep
}

func collect(t *testing.T, l *Lexer) []token.Token {
	t.Helper()
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected lexer error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestSimpleKeyValue(t *testing.T) {
	l, _ := newTestLexer("a: 1\n", options.Default())
	toks := collect(t, l)
	want := []token.Kind{token.Scalar, token.ValueIndicator, token.Scalar, token.NewLine, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
	if toks[0].Value != "a" || toks[2].Value != "1" {
		t.Errorf("unexpected scalar values: %q %q", toks[0].Value, toks[2].Value)
	}
}

func TestSequenceIndicator(t *testing.T) {
	l, _ := newTestLexer("- a\n- b\n", options.Default())
	toks := collect(t, l)
	if toks[0].Kind != token.SequenceIndicator || toks[1].Kind != token.Scalar || toks[1].Value != "a" {
		t.Fatalf("unexpected tokens: %v", toks)
	}
}

func TestSingleQuotedEscapedQuote(t *testing.T) {
	l, _ := newTestLexer("'it''s'\n", options.Default())
	toks := collect(t, l)
	if toks[0].Value != "it's" {
		t.Errorf("got %q, want %q", toks[0].Value, "it's")
	}
}

func TestDoubleQuotedEscapesAndFold(t *testing.T) {
	opts := options.Default()
	l, _ := newTestLexer("\"a\\tb\n  c\"\n", opts)
	toks := collect(t, l)
	if toks[0].Value != "a\tb c" {
		t.Errorf("got %q, want %q", toks[0].Value, "a\tb c")
	}
}

func TestFoldedBlockScalarStripChomp(t *testing.T) {
	input := "k: >-\n  one\n  two\n\n"
	l, _ := newTestLexer(input, options.Default())
	toks := collect(t, l)
	var scalarVals []string
	for _, tk := range toks {
		if tk.Kind == token.Scalar {
			scalarVals = append(scalarVals, tk.Value)
		}
	}
	if len(scalarVals) != 2 || scalarVals[1] != "one two" {
		t.Fatalf("got scalars %q", scalarVals)
	}
}

func TestTabIndentationReportsError(t *testing.T) {
	opts := options.Default()
	opts.ThrowOnError = false
	l, rep := newTestLexer("a:\n\tb: 1\n", opts)
	_ = collect(t, l)
	if !rep.ErrorOccurred() {
		t.Fatal("expected a tab-indentation diagnostic")
	}
	found := false
	for _, d := range rep.Errors() {
		if containsTab := d.Message; containsTab != "" {
			found = found || containsSubstr(d.Message, "tab")
		}
	}
	if !found {
		t.Errorf("expected a diagnostic mentioning 'tab', got %v", rep.Errors())
	}
}

func containsSubstr(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func TestDocumentMarkers(t *testing.T) {
	l, _ := newTestLexer("---\ncontent\n...\n", options.Default())
	toks := collect(t, l)
	want := []token.Kind{
		token.BeginDoc, token.NewLine, token.Scalar, token.NewLine,
		token.EndDoc, token.NewLine, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
	for _, tk := range toks {
		if tk.Kind == token.Scalar && tk.Value != "content" {
			t.Errorf("scalar value = %q, want %q", tk.Value, "content")
		}
	}
}
