// Package bytecode defines the compiled form of style properties.
//
// Every property compiles to one instruction:
//
//	OPV(4) | [LENGTH(4) | UNIT(4)]
//
// All words are little endian. OPV packs three fields:
//
//	bits  0-9   property opcode
//	bits 10-17  flags (FlagImportant, FlagInherit)
//	bits 18-31  property specific value
//
// Operand words are present only when the property value requires them, for
// box sides this is an explicitly set length which is not inherited. The
// layout is consumed verbatim by the cascade and must not change.
package bytecode
