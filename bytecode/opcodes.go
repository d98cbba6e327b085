package bytecode

// Property opcodes, numbered after the CSS 2.1 alphabetical property index.
const (
	OpBottom       Opcode = 0x014
	OpLeft         Opcode = 0x02a
	OpMarginTop    Opcode = 0x030
	OpMarginRight  Opcode = 0x031
	OpMarginBottom Opcode = 0x032
	OpMarginLeft   Opcode = 0x033
	OpRight        Opcode = 0x04c
	OpTop          Opcode = 0x058
)

// Values of side properties (margins and box offsets). Inherited words carry 0.
const (
	ValueAuto uint16 = 0x0000
	ValueSet  uint16 = 0x0080
)

// Shape describes how many operand bytes follow an OPV.
type Shape func(OPV) int

// SideShape is the operand layout of margin and box offset properties:
// LENGTH and UNIT follow when the value is set explicitly.
func SideShape(opv OPV) int {
	if !opv.IsInherit() && opv.Value() == ValueSet {
		return FixedSize + UnitSize
	}
	return 0
}

// Property is the static description of a compiled property.
type Property struct {
	Name   string
	Opcode Opcode
	Shape  Shape
}

// Properties lists every property the compiler emits, in opcode order.
var Properties = []Property{
	{"bottom", OpBottom, SideShape},
	{"left", OpLeft, SideShape},
	{"margin-top", OpMarginTop, SideShape},
	{"margin-right", OpMarginRight, SideShape},
	{"margin-bottom", OpMarginBottom, SideShape},
	{"margin-left", OpMarginLeft, SideShape},
	{"right", OpRight, SideShape},
	{"top", OpTop, SideShape},
}

var propertiesByOpcode = func() map[Opcode]*Property {
	m := make(map[Opcode]*Property, len(Properties))
	for i := range Properties {
		m[Properties[i].Opcode] = &Properties[i]
	}
	return m
}()

// PropertyByOpcode returns property description or nil for unknown opcodes.
func PropertyByOpcode(op Opcode) *Property {
	return propertiesByOpcode[op]
}

// InstructionSize returns full byte size of the instruction headed by opv.
func InstructionSize(opv OPV) (int, bool) {
	p := PropertyByOpcode(opv.Opcode())
	if p == nil {
		return 0, false
	}
	return OPVSize + p.Shape(opv), true
}
