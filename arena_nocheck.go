//go:build !aliascheck

package ecsbench

// Update resolves s and applies f to the point in place. Safe only while at
// most one pass writes a given slot at a time; that guarantee comes from
// whoever schedules the passes, not from the arena.
func (a *PointArena) Update(s Slot, f func(*Point)) {
	f(&a.points[s])
}
