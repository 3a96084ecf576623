// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/pbnjay/memory"
)

// totalMemory is swapped in tests.
var totalMemory = memory.TotalMemory

// newStore allocates the backing buffer of a rows×cols owner.
//
// Steps:
//  1. Reject negative extents (ErrBadShape).
//  2. Reject element counts or byte sizes that overflow int (ErrTooLarge).
//  3. When the memory check is on, reject buffers larger than the host's
//     physical memory (ErrTooLarge with a humanised size).
//
// Complexity: O(rows*cols) for zeroing the buffer.
func newStore[T any](rows, cols int, o Options) (*store[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}
	n := rows * cols
	if cols != 0 && n/cols != rows {
		return nil, fmt.Errorf("%dx%d elements: %w", rows, cols, ErrTooLarge)
	}
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size != 0 && uint64(n) > math.MaxInt/size {
		return nil, fmt.Errorf("%dx%d elements: %w", rows, cols, ErrTooLarge)
	}
	if o.memoryCheck {
		need := uint64(n) * size
		if have := totalMemory(); have != 0 && need > have {
			return nil, fmt.Errorf("%s requested, %s physical: %w",
				humanize.IBytes(need), humanize.IBytes(have), ErrTooLarge)
		}
	}

	return &store[T]{
		data:  make([]T, n),
		table: newBorrowTable(o.logger),
	}, nil
}

// store is the shared backing of one owner and all views carved from it.
type store[T any] struct {
	data  []T
	table *borrowTable
}

// The methods below route borrow bookkeeping through the store so that zero
// handles (nil store) report ErrNilMatrix instead of dereferencing nil.

func (s *store[T]) access(id borrowID, area region) error {
	if s == nil {
		return ErrNilMatrix
	}

	return s.table.access(id, area)
}

func (s *store[T]) acquire(parent borrowID, area region) (borrowID, error) {
	if s == nil {
		return 0, ErrNilMatrix
	}

	return s.table.acquire(parent, area)
}

func (s *store[T]) acquireAll(parent borrowID, areas []region) ([]borrowID, error) {
	if s == nil {
		return nil, ErrNilMatrix
	}

	return s.table.acquireAll(parent, areas)
}

func (s *store[T]) release(id borrowID) error {
	if s == nil {
		return ErrNilMatrix
	}

	return s.table.release(id)
}

func (s *store[T]) alive(id borrowID) bool {
	return s != nil && s.table.alive(id)
}
