package bytecode

import (
	"fmt"
	"strings"
)

// Unit identifies the unit of a length operand. High bits carry the unit
// category, low byte the unit within category. Lengths have no category bit.
type Unit uint32

const (
	UnitPX Unit = 0
	UnitEX Unit = 1
	UnitEM Unit = 2
	UnitIN Unit = 3
	UnitCM Unit = 4
	UnitMM Unit = 5
	UnitPT Unit = 6
	UnitPC Unit = 7

	UnitPCT Unit = 1 << 8

	UnitAngle Unit = 1 << 9
	UnitDEG   Unit = UnitAngle + 0
	UnitGRAD  Unit = UnitAngle + 1
	UnitRAD   Unit = UnitAngle + 2

	UnitTime Unit = 1 << 10
	UnitMS   Unit = UnitTime + 0
	UnitS    Unit = UnitTime + 1

	UnitFreq Unit = 1 << 11
	UnitHZ   Unit = UnitFreq + 0
	UnitKHZ  Unit = UnitFreq + 1
)

const categoryMask = UnitPCT | UnitAngle | UnitTime | UnitFreq

// Category returns category bits of the unit, zero for lengths.
func (u Unit) Category() Unit {
	return u & categoryMask
}

// Is reports whether unit belongs to any of the categories in mask.
func (u Unit) Is(mask Unit) bool {
	return u&mask != 0
}

var unitNames = map[Unit]string{
	UnitPX: "px", UnitEX: "ex", UnitEM: "em", UnitIN: "in",
	UnitCM: "cm", UnitMM: "mm", UnitPT: "pt", UnitPC: "pc",
	UnitPCT: "%",
	UnitDEG: "deg", UnitGRAD: "grad", UnitRAD: "rad",
	UnitMS: "ms", UnitS: "s",
	UnitHZ: "hz", UnitKHZ: "khz",
}

var unitsByName = func() map[string]Unit {
	m := make(map[string]Unit, len(unitNames))
	for u, n := range unitNames {
		m[n] = u
	}
	return m
}()

func (u Unit) String() string {
	if n, ok := unitNames[u]; ok {
		return n
	}
	return fmt.Sprintf("unit(0x%x)", uint32(u))
}

// UnitByName resolves unit suffix, case insensitive. Percent is not a
// suffix and is not recognized here.
func UnitByName(name string) (Unit, bool) {
	name = strings.ToLower(name)
	if name == "%" {
		return 0, false
	}
	u, ok := unitsByName[name]
	return u, ok
}
