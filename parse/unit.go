package parse

import (
	"fmt"

	"go.uber.org/zap"

	"cssbc/bytecode"
	"cssbc/css"
)

// UnitSpecifier parses a number with optional unit suffix:
//
//	DIMENSION | PERCENTAGE | NUMBER
//
// Unitless numbers take defaultUnit and must be zero unless stylesheet allows
// quirks. The cursor is not moved on failure.
func (l *Language) UnitSpecifier(v css.Vector, pos *int, defaultUnit bytecode.Unit) (bytecode.Fixed, bytecode.Unit, error) {
	orig := *pos

	css.ConsumeWhitespace(v, pos)

	token := v.Iterate(pos)
	if token == nil || (token.Type != css.TokenDimension &&
		token.Type != css.TokenNumber &&
		token.Type != css.TokenPercentage) {
		*pos = orig
		return 0, 0, fmt.Errorf("expected length or percentage, got %s: %w", describe(token), ErrInvalid)
	}

	num, consumed := bytecode.ParseFixed(token.Lower)
	if consumed == 0 {
		*pos = orig
		return 0, 0, fmt.Errorf("malformed number %q: %w", token.Data, ErrInvalid)
	}

	var unit bytecode.Unit
	switch token.Type {
	case css.TokenDimension:
		u, ok := bytecode.UnitByName(token.Lower[consumed:])
		if !ok {
			*pos = orig
			return 0, 0, fmt.Errorf("unknown unit in %q: %w", token.Data, ErrInvalid)
		}
		unit = u

	case css.TokenNumber:
		if consumed != len(token.Lower) {
			*pos = orig
			return 0, 0, fmt.Errorf("malformed number %q: %w", token.Data, ErrInvalid)
		}
		if num != 0 {
			if !l.sheet.QuirksAllowed {
				*pos = orig
				return 0, 0, fmt.Errorf("unitless length %q: %w", token.Data, ErrInvalid)
			}
			l.log.Debug("Accepted unitless length in quirks mode", zap.String("value", token.Data))
			l.sheet.QuirksUsed = true
		}
		unit = defaultUnit

	case css.TokenPercentage:
		if token.Lower[consumed:] != "%" {
			*pos = orig
			return 0, 0, fmt.Errorf("malformed percentage %q: %w", token.Data, ErrInvalid)
		}
		unit = bytecode.UnitPCT
	}

	return num, unit, nil
}

func describe(t *css.Token) string {
	if t == nil {
		return "end of input"
	}
	return t.String()
}
