package ecsbench

// Slot is a stable index into a PointArena. Referrers that share a point
// hold the same slot value.
type Slot int32

// PointArena owns every shared point in one contiguous slice. It replaces
// shared pointers mutated without synchronization: the points live in one
// place, referrers only carry indices, and the single writer rule is an
// external scheduling guarantee. Build with -tags aliascheck to assert that
// rule at runtime instead of trusting it.
type PointArena struct {
	points  []Point
	writers []int32 // per-slot writer flags, only touched by the aliascheck build
}

func NewPointArena(capacity int) *PointArena {
	return &PointArena{
		points:  make([]Point, 0, capacity),
		writers: make([]int32, 0, capacity),
	}
}

// Alloc appends a new point and returns its slot.
func (a *PointArena) Alloc(x, y uint32) Slot {
	a.points = append(a.points, Point{x, y})
	a.writers = append(a.writers, 0)
	return Slot(len(a.points) - 1)
}

// Get returns a copy of the point at s, for inspection outside a pass.
func (a *PointArena) Get(s Slot) Point {
	return a.points[s]
}

func (a *PointArena) Len() int {
	return len(a.points)
}
