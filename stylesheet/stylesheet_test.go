package stylesheet

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"cssbc/bytecode"
)

func TestBudget_Allocate(t *testing.T) {
	b := NewBudget(16)

	buf, err := b.Allocate(12)
	if err != nil {
		t.Fatalf("Allocate(12) error = %v", err)
	}
	if len(buf) != 12 {
		t.Errorf("Allocate(12) len = %d", len(buf))
	}

	if _, err := b.Allocate(8); !errors.Is(err, ErrNoMem) {
		t.Errorf("Allocate(8) over budget error = %v, want ErrNoMem", err)
	}
	if b.Used() != 12 {
		t.Errorf("Used() = %d, want 12 (failed allocation must not count)", b.Used())
	}

	if _, err := b.Allocate(4); err != nil {
		t.Errorf("Allocate(4) error = %v", err)
	}
	if _, err := b.Allocate(0); !errors.Is(err, ErrBadParameter) {
		t.Errorf("Allocate(0) error = %v, want ErrBadParameter", err)
	}
}

func TestBudget_Unlimited(t *testing.T) {
	b := NewBudget(0)
	for range 100 {
		if _, err := b.Allocate(1024); err != nil {
			t.Fatalf("Allocate() error = %v", err)
		}
	}
}

func TestStylesheet_StyleCreate(t *testing.T) {
	sheet := New(WithLogger(zaptest.NewLogger(t)))

	st, err := sheet.StyleCreate(4)
	if err != nil {
		t.Fatalf("StyleCreate(4) error = %v", err)
	}
	if len(st.Bytecode) != 4 {
		t.Errorf("bytecode len = %d, want 4", len(st.Bytecode))
	}

	if _, err := sheet.StyleCreate(-1); !errors.Is(err, ErrBadParameter) {
		t.Errorf("StyleCreate(-1) error = %v, want ErrBadParameter", err)
	}
}

func TestStylesheet_StyleCreateFailure(t *testing.T) {
	fail := AllocatorFunc(func(int) ([]byte, error) { return nil, ErrNoMem })
	sheet := New(WithAllocator(fail))

	st, err := sheet.StyleCreate(12)
	if !errors.Is(err, ErrNoMem) {
		t.Errorf("StyleCreate() error = %v, want ErrNoMem", err)
	}
	if st != nil {
		t.Error("StyleCreate() returned style together with error")
	}
}

func TestStylesheet_StyleCreateForeignFailure(t *testing.T) {
	arenaExhausted := errors.New("arena exhausted")
	sheet := New(WithAllocator(AllocatorFunc(func(int) ([]byte, error) { return nil, arenaExhausted })))

	_, err := sheet.StyleCreate(4)
	if !errors.Is(err, ErrNoMem) {
		t.Errorf("StyleCreate() error = %v, want ErrNoMem", err)
	}
	if !errors.Is(err, arenaExhausted) {
		t.Errorf("StyleCreate() error = %v, original failure lost", err)
	}
}

func TestStylesheet_ShortAllocation(t *testing.T) {
	short := AllocatorFunc(func(size int) ([]byte, error) { return make([]byte, size-1), nil })
	sheet := New(WithAllocator(short))

	if _, err := sheet.StyleCreate(4); !errors.Is(err, ErrNoMem) {
		t.Errorf("StyleCreate() error = %v, want ErrNoMem", err)
	}
}

func TestStylesheet_AppendAndBytecode(t *testing.T) {
	sheet := New()
	a := &Style{Bytecode: bytecode.Instruction{OPV: bytecode.BuildOPV(bytecode.OpMarginTop, 0, bytecode.ValueAuto)}.AppendTo(nil)}
	b := &Style{Bytecode: bytecode.Instruction{
		OPV:        bytecode.BuildOPV(bytecode.OpMarginLeft, 0, bytecode.ValueSet),
		HasOperand: true,
		Length:     bytecode.FixedFromInt(2),
		Unit:       bytecode.UnitEM,
	}.AppendTo(nil)}

	sheet.Append(a)
	sheet.Append(b)

	if sheet.Size() != 16 {
		t.Errorf("Size() = %d, want 16", sheet.Size())
	}
	if len(sheet.Styles()) != 2 {
		t.Fatalf("Styles() len = %d, want 2", len(sheet.Styles()))
	}
	ins, err := bytecode.Disassemble(sheet.Bytecode())
	if err != nil {
		t.Fatalf("Disassemble() error = %v", err)
	}
	if len(ins) != 2 || ins[1].Unit != bytecode.UnitEM {
		t.Errorf("unexpected instructions: %v", ins)
	}
}

func TestStyle_MakeImportant(t *testing.T) {
	set := bytecode.Instruction{
		OPV:        bytecode.BuildOPV(bytecode.OpMarginBottom, 0, bytecode.ValueSet),
		HasOperand: true,
		Length:     bytecode.FixedFromInt(-3),
		Unit:       bytecode.UnitPT,
	}
	st := &Style{Bytecode: set.AppendTo(nil)}

	if err := st.MakeImportant(); err != nil {
		t.Fatalf("MakeImportant() error = %v", err)
	}

	in, _, err := bytecode.Decode(st.Bytecode)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !in.OPV.IsImportant() {
		t.Error("important flag not set")
	}
	if in.OPV.Value() != bytecode.ValueSet || in.Length != set.Length || in.Unit != set.Unit {
		t.Errorf("MakeImportant() changed operands: %+v", in)
	}
}

func TestStyle_MakeImportantCorrupt(t *testing.T) {
	st := &Style{Bytecode: []byte{0xff, 0x03, 0x00, 0x00}}
	if err := st.MakeImportant(); !errors.Is(err, bytecode.ErrUnknownOpcode) {
		t.Errorf("MakeImportant() error = %v, want ErrUnknownOpcode", err)
	}
}
