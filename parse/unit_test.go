package parse

import (
	"errors"
	"testing"

	"cssbc/bytecode"
	"cssbc/css"
	"cssbc/stylesheet"
)

func TestUnitSpecifier(t *testing.T) {
	tests := []struct {
		name   string
		tokens css.Vector
		length bytecode.Fixed
		unit   bytecode.Unit
		pos    int
	}{
		{"px", css.Tokens(css.Dimension("12px")), bytecode.FixedFromInt(12), bytecode.UnitPX, 1},
		{"ex", css.Tokens(css.Dimension("2ex")), bytecode.FixedFromInt(2), bytecode.UnitEX, 1},
		{"cm upper", css.Tokens(css.Dimension("1.25CM")), bytecode.FixedFromFloat(1.25), bytecode.UnitCM, 1},
		{"angle is resolved", css.Tokens(css.Dimension("90deg")), bytecode.FixedFromInt(90), bytecode.UnitDEG, 1},
		{"percentage", css.Tokens(css.Percent("-10%")), bytecode.FixedFromInt(-10), bytecode.UnitPCT, 1},
		{"zero", css.Tokens(css.Number("0")), 0, bytecode.UnitEM, 1},
		{"signed zero", css.Tokens(css.Number("-0.0")), 0, bytecode.UnitEM, 1},
		{"whitespace", css.Tokens(css.Space(), css.Space(), css.Dimension("1in")), bytecode.FixedFromInt(1), bytecode.UnitIN, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLanguage(t)
			pos := 0
			length, unit, err := l.UnitSpecifier(tt.tokens, &pos, bytecode.UnitEM)
			if err != nil {
				t.Fatalf("UnitSpecifier() error = %v", err)
			}
			if length != tt.length || unit != tt.unit {
				t.Errorf("UnitSpecifier() = (%v, %v), want (%v, %v)", length, unit, tt.length, tt.unit)
			}
			if pos != tt.pos {
				t.Errorf("pos = %d, want %d", pos, tt.pos)
			}
		})
	}
}

func TestUnitSpecifier_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		tokens css.Vector
	}{
		{"empty", css.Tokens()},
		{"ident", css.Tokens(css.Ident("px"))},
		{"unknown unit", css.Tokens(css.Dimension("3vw"))},
		{"unitless", css.Tokens(css.Number("3"))},
		{"not a number", css.Tokens(css.Dimension("px"))},
		{"broken percentage", css.Tokens(css.Percent("5%%"))},
		{"whitespace only", css.Tokens(css.Space())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLanguage(t)
			pos := 0
			_, _, err := l.UnitSpecifier(tt.tokens, &pos, bytecode.UnitPX)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error = %v, want ErrInvalid", err)
			}
			if pos != 0 {
				t.Errorf("pos = %d, want 0", pos)
			}
			if l.Sheet().QuirksUsed {
				t.Error("quirks marked used on failure")
			}
		})
	}
}

func TestUnitSpecifier_Quirks(t *testing.T) {
	l := newLanguage(t, stylesheet.WithQuirks(true))

	pos := 0
	length, unit, err := l.UnitSpecifier(css.Tokens(css.Number("7")), &pos, bytecode.UnitPX)
	if err != nil {
		t.Fatalf("UnitSpecifier() error = %v", err)
	}
	if length != bytecode.FixedFromInt(7) || unit != bytecode.UnitPX {
		t.Errorf("UnitSpecifier() = (%v, %v)", length, unit)
	}
	if !l.Sheet().QuirksUsed {
		t.Error("QuirksUsed not set")
	}

	l = newLanguage(t, stylesheet.WithQuirks(true))
	pos = 0
	if _, _, err := l.UnitSpecifier(css.Tokens(css.Number("0")), &pos, bytecode.UnitPX); err != nil {
		t.Fatalf("UnitSpecifier(0) error = %v", err)
	}
	if l.Sheet().QuirksUsed {
		t.Error("QuirksUsed set for zero")
	}
}
