//go:build aliascheck

package ecsbench

import (
	"fmt"
	"sync/atomic"
)

// Update resolves s and applies f to the point in place, asserting that no
// other writer holds the slot for the duration of f.
func (a *PointArena) Update(s Slot, f func(*Point)) {
	if !atomic.CompareAndSwapInt32(&a.writers[s], 0, 1) {
		panic(fmt.Errorf("%w: slot %d", ErrInvariant, s))
	}
	defer atomic.StoreInt32(&a.writers[s], 0)

	f(&a.points[s])
}
