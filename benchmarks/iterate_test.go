package benchmarks

import (
	"testing"

	"github.com/unitoftime/ecs"

	"github.com/unitoftime/ecsbench"
)

// BenchmarkRegistryIter walks every Point component through the world.
func BenchmarkRegistryIter(b *testing.B) {
	world := ecs.NewWorld()
	scenario := ecsbench.BuildRegistryIter(world, ecsbench.DefaultIterPoints)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scenario.Pass()
	}
}

// BenchmarkSliceIter walks a contiguous slice by index.
func BenchmarkSliceIter(b *testing.B) {
	scenario, _ := ecsbench.BuildSliceIter(ecsbench.DefaultIterPoints)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scenario.Pass()
	}
}

// BenchmarkPtrIter walks one pointer per element.
func BenchmarkPtrIter(b *testing.B) {
	scenario, _ := ecsbench.BuildPtrIter(ecsbench.DefaultIterPoints)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scenario.Pass()
	}
}
