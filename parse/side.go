package parse

import (
	"fmt"

	"go.uber.org/zap"

	"cssbc/bytecode"
	"cssbc/css"
	"cssbc/stylesheet"
)

// Box sides accept lengths and percentages only.
const sideRejectedUnits = bytecode.UnitAngle | bytecode.UnitTime | bytecode.UnitFreq

// parseSide compiles a box side property (margin-*, top, right, bottom, left):
//
//	length | percentage | IDENT(auto, inherit)
//
// On success *pos points past the value. On failure *pos is unchanged and no
// style is allocated.
func (l *Language) parseSide(v css.Vector, pos *int, op bytecode.Opcode) (*stylesheet.Style, error) {
	orig := *pos

	var (
		flags  bytecode.Flag
		value  uint16
		length bytecode.Fixed
		unit   bytecode.Unit
	)

	token := v.Peek(*pos)
	if token == nil {
		return nil, fmt.Errorf("missing value: %w", ErrInvalid)
	}

	switch {
	case token.Is(css.KeywordInherit):
		v.Iterate(pos)
		flags = bytecode.FlagInherit
	case token.Is(css.KeywordAuto):
		v.Iterate(pos)
		value = bytecode.ValueAuto
	default:
		var err error
		if length, unit, err = l.UnitSpecifier(v, pos, bytecode.UnitPX); err != nil {
			*pos = orig
			return nil, err
		}
		if unit.Is(sideRejectedUnits) {
			*pos = orig
			l.log.Debug("Rejected unit", zap.Uint16("opcode", uint16(op)), zap.Stringer("unit", unit))
			return nil, fmt.Errorf("unit %s not allowed: %w", unit, ErrInvalid)
		}
		value = bytecode.ValueSet
	}

	opv := bytecode.BuildOPV(op, flags, value)

	required := bytecode.OPVSize
	operand := flags&bytecode.FlagInherit == 0 && value == bytecode.ValueSet
	if operand {
		required += bytecode.FixedSize + bytecode.UnitSize
	}

	style, err := l.sheet.StyleCreate(required)
	if err != nil {
		*pos = orig
		return nil, err
	}

	code := style.Bytecode
	bytecode.Order.PutUint32(code, uint32(opv))
	if operand {
		bytecode.Order.PutUint32(code[bytecode.OPVSize:], uint32(length))
		bytecode.Order.PutUint32(code[bytecode.OPVSize+bytecode.FixedSize:], uint32(unit))
	}
	return style, nil
}

// ParseMarginTop compiles value of margin-top property. On success *pos is advanced past
// the value, on invalid input or allocation failure it is left unchanged.
func (l *Language) ParseMarginTop(v css.Vector, pos *int) (*stylesheet.Style, error) {
	return l.parseSide(v, pos, bytecode.OpMarginTop)
}

// ParseMarginRight compiles value of margin-right property, see ParseMarginTop.
func (l *Language) ParseMarginRight(v css.Vector, pos *int) (*stylesheet.Style, error) {
	return l.parseSide(v, pos, bytecode.OpMarginRight)
}

// ParseMarginBottom compiles value of margin-bottom property, see ParseMarginTop.
func (l *Language) ParseMarginBottom(v css.Vector, pos *int) (*stylesheet.Style, error) {
	return l.parseSide(v, pos, bytecode.OpMarginBottom)
}

// ParseMarginLeft compiles value of margin-left property, see ParseMarginTop.
func (l *Language) ParseMarginLeft(v css.Vector, pos *int) (*stylesheet.Style, error) {
	return l.parseSide(v, pos, bytecode.OpMarginLeft)
}

// ParseTop compiles value of top property, see ParseMarginTop.
func (l *Language) ParseTop(v css.Vector, pos *int) (*stylesheet.Style, error) {
	return l.parseSide(v, pos, bytecode.OpTop)
}

// ParseRight compiles value of right property, see ParseMarginTop.
func (l *Language) ParseRight(v css.Vector, pos *int) (*stylesheet.Style, error) {
	return l.parseSide(v, pos, bytecode.OpRight)
}

// ParseBottom compiles value of bottom property, see ParseMarginTop.
func (l *Language) ParseBottom(v css.Vector, pos *int) (*stylesheet.Style, error) {
	return l.parseSide(v, pos, bytecode.OpBottom)
}

// ParseLeft compiles value of left property, see ParseMarginTop.
func (l *Language) ParseLeft(v css.Vector, pos *int) (*stylesheet.Style, error) {
	return l.parseSide(v, pos, bytecode.OpLeft)
}
