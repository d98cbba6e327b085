// Package stylesheet owns compiled property bytecode.
package stylesheet

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"cssbc/bytecode"
)

// Style holds bytecode of a single compiled property.
type Style struct {
	Bytecode []byte
}

// MakeImportant sets important flag on every instruction in the style.
func (s *Style) MakeImportant() error {
	for offset := 0; offset < len(s.Bytecode); {
		in, n, err := bytecode.Decode(s.Bytecode[offset:])
		if err != nil {
			return fmt.Errorf("unable to mark style important at offset %d: %w", offset, err)
		}
		bytecode.Order.PutUint32(s.Bytecode[offset:], uint32(in.OPV.WithFlags(bytecode.FlagImportant)))
		offset += n
	}
	return nil
}

// Stylesheet is the allocation owner for compiled styles.
// NOTE: not safe for concurrent use, a parse session owns its stylesheet.
type Stylesheet struct {
	// QuirksAllowed permits non-standard input (unitless lengths).
	QuirksAllowed bool
	// QuirksUsed is set when a quirk was actually needed to accept input.
	QuirksUsed bool

	alloc  Allocator
	styles []*Style
	size   int
	log    *zap.Logger
}

type Option func(*Stylesheet)

func WithAllocator(a Allocator) Option {
	return func(s *Stylesheet) {
		s.alloc = a
	}
}

func WithQuirks(allowed bool) Option {
	return func(s *Stylesheet) {
		s.QuirksAllowed = allowed
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Stylesheet) {
		s.log = log
	}
}

// New creates empty stylesheet. Without explicit allocator styles are
// allocated without limit.
func New(opts ...Option) *Stylesheet {
	s := &Stylesheet{}
	for _, opt := range opts {
		opt(s)
	}
	if s.alloc == nil {
		s.alloc = NewBudget(0)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.log = s.log.Named("stylesheet")
	return s
}

// StyleCreate allocates a style with bytecode buffer of exactly size bytes.
func (s *Stylesheet) StyleCreate(size int) (*Style, error) {
	if size <= 0 {
		return nil, fmt.Errorf("style of %d bytes: %w", size, ErrBadParameter)
	}
	buf, err := s.alloc.Allocate(size)
	if err != nil {
		s.log.Debug("Style allocation failed", zap.Int("size", size), zap.Error(err))
		if !errors.Is(err, ErrNoMem) {
			// any allocator failure means no memory for the caller
			err = fmt.Errorf("style of %d bytes: %w: %w", size, ErrNoMem, err)
		}
		return nil, err
	}
	if len(buf) != size {
		return nil, fmt.Errorf("allocator returned %d bytes instead of %d: %w", len(buf), size, ErrNoMem)
	}
	return &Style{Bytecode: buf}, nil
}

// Append adds compiled style to the stylesheet.
func (s *Stylesheet) Append(style *Style) {
	s.styles = append(s.styles, style)
	s.size += len(style.Bytecode)
}

// Styles returns compiled styles in order they were appended.
func (s *Stylesheet) Styles() []*Style {
	return s.styles
}

// Size returns total bytecode size of appended styles.
func (s *Stylesheet) Size() int {
	return s.size
}

// Bytecode returns concatenated bytecode of all appended styles.
func (s *Stylesheet) Bytecode() []byte {
	out := make([]byte, 0, s.size)
	for _, st := range s.styles {
		out = append(out, st.Bytecode...)
	}
	return out
}
