package stylesheet

import (
	"errors"
	"fmt"
)

var (
	ErrNoMem        = errors.New("out of memory")
	ErrBadParameter = errors.New("bad parameter")
)

// Allocator hands out exactly sized bytecode buffers. Ownership of a returned
// buffer passes to the caller.
type Allocator interface {
	Allocate(size int) ([]byte, error)
}

// Budget is an allocator limiting total number of bytes handed out. Zero limit
// means no limit. NOTE: not safe for concurrent use.
type Budget struct {
	limit int
	used  int
}

// NewBudget creates allocator with requested byte limit.
func NewBudget(limit int) *Budget {
	return &Budget{limit: limit}
}

func (b *Budget) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("allocation of %d bytes: %w", size, ErrBadParameter)
	}
	if b.limit > 0 && b.used+size > b.limit {
		return nil, fmt.Errorf("allocation of %d bytes exceeds budget (%d of %d used): %w", size, b.used, b.limit, ErrNoMem)
	}
	b.used += size
	return make([]byte, size), nil
}

// Used returns number of bytes allocated so far.
func (b *Budget) Used() int {
	return b.used
}

// AllocatorFunc adapts a function to Allocator.
type AllocatorFunc func(size int) ([]byte, error)

func (f AllocatorFunc) Allocate(size int) ([]byte, error) {
	return f(size)
}
