package ecsbench

import (
	"fmt"
	"sync"

	"github.com/unitoftime/ecs"
)

// Referrer components. Each kind holds a fixed-length ordered list of
// handles, and a pass resolves and mutates every handle of every referrer
// exactly once. The referrers themselves always live in the world, so every
// access scenario pays the same referrer traversal and differs only in how
// a handle reaches its point.

// PointRefs reaches its points through the world: every handle is an entity
// id whose Point component gets read, incremented, and written back. All
// handles of one referrer alias the same target entity.
type PointRefs struct {
	Targets []ecs.Id
}

// PointOwners holds exclusively owned points. Note the shape difference:
// every handle is an independent point, not an alias of one shared target,
// so one pass applies len(Points) separate increments per referrer where
// the other scenarios apply them all to a single point.
type PointOwners struct {
	Points []*Point
}

// PointLocks shares one mutex guarded point across all handles.
type PointLocks struct {
	Points []*LockedPoint
}

// PointSlots shares one arena slot across all handles.
type PointSlots struct {
	Slots []Slot
}

// LockedPoint is a point behind a mutex. Mutation only happens inside
// WithLock, so the lock is released on every exit path.
type LockedPoint struct {
	mu sync.Mutex
	pt Point
}

func NewLockedPoint(x, y uint32) *LockedPoint {
	return &LockedPoint{pt: Point{x, y}}
}

func (lp *LockedPoint) WithLock(f func(*Point)) {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	f(&lp.pt)
}

// Get returns a copy of the point, for inspection outside a pass.
func (lp *LockedPoint) Get() Point {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return lp.pt
}

// BuildRegistryAccess spawns one target entity per referrer, initialized to
// Point{i, i}, and a referrer entity whose handles all alias that target.
// The pass resolves each handle through the world; a missing target is a
// fixture bug and panics with ErrNotFound.
func BuildRegistryAccess(world *ecs.World, entities, pointsPerRef int) Scenario {
	for i := 0; i < entities; i++ {
		target := world.NewId()
		ecs.Write(world, target, ecs.C(Point{uint32(i), uint32(i)}))

		refs := PointRefs{Targets: make([]ecs.Id, 0, pointsPerRef)}
		for j := 0; j < pointsPerRef; j++ {
			refs.Targets = append(refs.Targets, target)
		}
		ecs.Write(world, world.NewId(), ecs.C(refs))
	}

	return Scenario{"registry-access", func() {
		ecs.Map(world, func(id ecs.Id, refs *PointRefs) {
			for _, target := range refs.Targets {
				pt, ok := ecs.Read[Point](world, target)
				if !ok {
					panic(fmt.Errorf("%w: entity %d", ErrNotFound, target))
				}
				pt.X++
				pt.Y++
				ecs.Write(world, target, ecs.C(pt))
			}
		})
	}}
}

// BuildOwnedAccess spawns referrers that each own pointsPerRef independent
// points, all initialized to Point{i, i}. Resolution is a plain dereference
// with no failure mode.
func BuildOwnedAccess(world *ecs.World, entities, pointsPerRef int) Scenario {
	for i := 0; i < entities; i++ {
		owners := PointOwners{Points: make([]*Point, 0, pointsPerRef)}
		for j := 0; j < pointsPerRef; j++ {
			owners.Points = append(owners.Points, &Point{uint32(i), uint32(i)})
		}
		ecs.Write(world, world.NewId(), ecs.C(owners))
	}

	return Scenario{"owned-access", func() {
		ecs.Map(world, func(id ecs.Id, owners *PointOwners) {
			for _, pt := range owners.Points {
				pt.X++
				pt.Y++
			}
		})
	}}
}

// BuildLockedAccess spawns referrers whose handles all share one mutex
// guarded point initialized to Point{i, i}. The lock never contends under a
// sequential harness but resolution still pays for acquiring it.
func BuildLockedAccess(world *ecs.World, entities, pointsPerRef int) Scenario {
	for i := 0; i < entities; i++ {
		shared := NewLockedPoint(uint32(i), uint32(i))

		locks := PointLocks{Points: make([]*LockedPoint, 0, pointsPerRef)}
		for j := 0; j < pointsPerRef; j++ {
			locks.Points = append(locks.Points, shared)
		}
		ecs.Write(world, world.NewId(), ecs.C(locks))
	}

	return Scenario{"locked-access", func() {
		ecs.Map(world, func(id ecs.Id, locks *PointLocks) {
			for _, lp := range locks.Points {
				lp.WithLock(func(pt *Point) {
					pt.X++
					pt.Y++
				})
			}
		})
	}}
}

// BuildArenaAccess allocates one arena point per referrer, initialized to
// Point{i, i}, and spawns referrers whose handles all carry that point's
// slot. Resolution indexes the arena directly, with no lock.
func BuildArenaAccess(world *ecs.World, arena *PointArena, entities, pointsPerRef int) Scenario {
	for i := 0; i < entities; i++ {
		slot := arena.Alloc(uint32(i), uint32(i))

		slots := PointSlots{Slots: make([]Slot, 0, pointsPerRef)}
		for j := 0; j < pointsPerRef; j++ {
			slots.Slots = append(slots.Slots, slot)
		}
		ecs.Write(world, world.NewId(), ecs.C(slots))
	}

	return Scenario{"arena-access", func() {
		ecs.Map(world, func(id ecs.Id, slots *PointSlots) {
			for _, slot := range slots.Slots {
				arena.Update(slot, func(pt *Point) {
					pt.X++
					pt.Y++
				})
			}
		})
	}}
}
