package bytecode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTruncated     = errors.New("truncated bytecode")
	ErrUnknownOpcode = errors.New("unknown opcode")
)

// Instruction is a decoded property instruction.
type Instruction struct {
	OPV        OPV
	HasOperand bool
	Length     Fixed
	Unit       Unit
}

// Size returns encoded size of the instruction in bytes.
func (in Instruction) Size() int {
	if in.HasOperand {
		return OPVSize + FixedSize + UnitSize
	}
	return OPVSize
}

// AppendTo encodes instruction and appends it to b.
func (in Instruction) AppendTo(b []byte) []byte {
	b = Order.AppendUint32(b, uint32(in.OPV))
	if in.HasOperand {
		b = Order.AppendUint32(b, uint32(in.Length))
		b = Order.AppendUint32(b, uint32(in.Unit))
	}
	return b
}

func (in Instruction) String() string {
	var sb strings.Builder
	name := fmt.Sprintf("op(0x%03x)", uint16(in.OPV.Opcode()))
	if p := PropertyByOpcode(in.OPV.Opcode()); p != nil {
		name = p.Name
	}
	sb.WriteString(name)
	sb.WriteString(": ")
	switch {
	case in.OPV.IsInherit():
		sb.WriteString("inherit")
	case in.HasOperand:
		sb.WriteString(in.Length.String())
		sb.WriteString(in.Unit.String())
	case in.OPV.Value() == ValueAuto:
		sb.WriteString("auto")
	default:
		fmt.Fprintf(&sb, "value(0x%04x)", in.OPV.Value())
	}
	if in.OPV.IsImportant() {
		sb.WriteString(" !important")
	}
	return sb.String()
}

// Decode reads a single instruction from the start of b and returns it with
// the number of bytes consumed.
func Decode(b []byte) (Instruction, int, error) {
	if len(b) < OPVSize {
		return Instruction{}, 0, fmt.Errorf("need %d bytes for OPV, have %d: %w", OPVSize, len(b), ErrTruncated)
	}
	opv := OPV(Order.Uint32(b))
	size, ok := InstructionSize(opv)
	if !ok {
		return Instruction{}, 0, fmt.Errorf("opcode 0x%03x: %w", uint16(opv.Opcode()), ErrUnknownOpcode)
	}
	if len(b) < size {
		return Instruction{}, 0, fmt.Errorf("opcode 0x%03x needs %d bytes, have %d: %w", uint16(opv.Opcode()), size, len(b), ErrTruncated)
	}

	in := Instruction{OPV: opv}
	if size > OPVSize {
		in.HasOperand = true
		in.Length = Fixed(int32(Order.Uint32(b[OPVSize:])))
		in.Unit = Unit(Order.Uint32(b[OPVSize+FixedSize:]))
	}
	return in, size, nil
}

// Disassemble decodes all instructions in b.
func Disassemble(b []byte) ([]Instruction, error) {
	var out []Instruction
	for offset := 0; offset < len(b); {
		in, n, err := Decode(b[offset:])
		if err != nil {
			return out, fmt.Errorf("at offset %d: %w", offset, err)
		}
		out = append(out, in)
		offset += n
	}
	return out, nil
}
