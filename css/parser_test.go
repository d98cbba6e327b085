package css_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"cssbc/css"
)

// significant drops whitespace so tests do not depend on tokenizer spacing.
func significant(v css.Vector) []string {
	var out []string
	for _, t := range v {
		if t.Type != css.TokenWhitespace {
			out = append(out, t.String())
		}
	}
	return out
}

func TestParser_Tokenize(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))

	tests := []struct {
		in   string
		want []string
	}{
		{"10px", []string{"DIMENSION:10px"}},
		{"auto", []string{"IDENT:auto"}},
		{"50%", []string{"PERCENTAGE:50%"}},
		{"0", []string{"NUMBER:0"}},
		{"-1.5em", []string{"DIMENSION:-1.5em"}},
		{"5deg", []string{"DIMENSION:5deg"}},
		{"inherit !important", []string{"IDENT:inherit", "DELIM:!", "IDENT:important"}},
		{"/* note */ auto", []string{"IDENT:auto"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := significant(p.Tokenize([]byte(tt.in)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_TokenizeWhitespace(t *testing.T) {
	p := css.NewParser(nil)
	v := p.Tokenize([]byte(" auto "))
	if v.Len() != 3 {
		t.Fatalf("Tokenize() = %v, want 3 tokens", v)
	}
	if v[0].Type != css.TokenWhitespace || v[2].Type != css.TokenWhitespace {
		t.Errorf("whitespace not preserved: %v", v)
	}
	if !v.Peek(1).Is(css.KeywordAuto) {
		t.Errorf("keyword not resolved: %+v", v[1])
	}
}

func TestParser_ParseDeclarations(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))

	decls := p.ParseDeclarations([]byte(`margin-top: 10px; MARGIN-LEFT: auto !important; --custom: 1; left: 5deg`), "test")
	if len(decls) != 3 {
		t.Fatalf("ParseDeclarations() returned %d declarations, want 3: %+v", len(decls), decls)
	}

	want := []struct {
		property string
		tokens   []string
	}{
		{"margin-top", []string{"DIMENSION:10px"}},
		{"margin-left", []string{"IDENT:auto", "DELIM:!", "IDENT:important"}},
		{"left", []string{"DIMENSION:5deg"}},
	}
	for i, w := range want {
		if decls[i].Property != w.property {
			t.Errorf("declaration %d property = %q, want %q", i, decls[i].Property, w.property)
		}
		if diff := cmp.Diff(w.tokens, significant(decls[i].Value)); diff != "" {
			t.Errorf("declaration %d tokens mismatch (-want +got):\n%s", i, diff)
		}
	}
}
