package bytecode

import "encoding/binary"

// Opcode identifies a property. Only the low 10 bits are stored.
type Opcode uint16

// Flag is a bitmask of instruction flags. Only the low 8 bits are stored.
type Flag uint8

const (
	FlagImportant Flag = 1 << 0
	FlagInherit   Flag = 1 << 1
)

// OPV is the packed header word of every instruction.
type OPV uint32

const (
	opcodeMask = 0x3ff
	flagsShift = 10
	flagsMask  = 0xff
	valueShift = 18
	valueMask  = 0x3fff
)

// Sizes of instruction words on the wire.
const (
	OPVSize   = 4
	FixedSize = 4
	UnitSize  = 4
)

// Order is the byte order of all instruction words.
var Order = binary.LittleEndian

// BuildOPV packs opcode, flags and value into a single word. This is the only
// place where the layout is known for encoding.
func BuildOPV(op Opcode, flags Flag, value uint16) OPV {
	return OPV(uint32(op)&opcodeMask | uint32(flags)<<flagsShift | (uint32(value)&valueMask)<<valueShift)
}

func (o OPV) Opcode() Opcode {
	return Opcode(uint32(o) & opcodeMask)
}

func (o OPV) Flags() Flag {
	return Flag((uint32(o) >> flagsShift) & flagsMask)
}

func (o OPV) Value() uint16 {
	return uint16(uint32(o) >> valueShift)
}

func (o OPV) IsInherit() bool {
	return o.Flags()&FlagInherit != 0
}

func (o OPV) IsImportant() bool {
	return o.Flags()&FlagImportant != 0
}

// WithFlags returns the same word with additional flags set.
func (o OPV) WithFlags(flags Flag) OPV {
	return BuildOPV(o.Opcode(), o.Flags()|flags, o.Value())
}
