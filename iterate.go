package ecsbench

import (
	"github.com/unitoftime/ecs"
)

// Iteration scenarios traverse one large homogeneous collection instead of
// resolving per-referrer handles. Element i starts at Point{i, i} and every
// pass increments every element exactly once.

// BuildRegistryIter spawns count entities with a Point component and
// iterates them through the world.
func BuildRegistryIter(world *ecs.World, count int) Scenario {
	for i := 0; i < count; i++ {
		ecs.Write(world, world.NewId(), ecs.C(Point{uint32(i), uint32(i)}))
	}

	return Scenario{"registry-iter", func() {
		ecs.Map(world, func(id ecs.Id, pt *Point) {
			pt.X++
			pt.Y++
		})
	}}
}

// BuildSliceIter stores the points contiguously and walks them by index.
// The returned slice is the live dataset, handed back for inspection.
func BuildSliceIter(count int) (Scenario, []Point) {
	points := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		points = append(points, Point{uint32(i), uint32(i)})
	}

	return Scenario{"slice-iter", func() {
		for i := range points {
			points[i].X++
			points[i].Y++
		}
	}}, points
}

// BuildPtrIter stores one separately allocated point per element and walks
// the pointers, so every visit pays one dereference.
func BuildPtrIter(count int) (Scenario, []*Point) {
	points := make([]*Point, 0, count)
	for i := 0; i < count; i++ {
		points = append(points, &Point{uint32(i), uint32(i)})
	}

	return Scenario{"ptr-iter", func() {
		for _, pt := range points {
			pt.X++
			pt.Y++
		}
	}}, points
}
