// Package ecsbench measures the cost of mutably reaching small records
// through different ownership strategies: entity ids resolved through the
// ecs world, exclusively owned pointers, mutex guarded shared pointers, and
// slots into a centrally owned arena. A second scenario family compares
// iterating all records through the world against flat storage.
package ecsbench

// Default workload sizes. The access scenarios build Entities referrers with
// PointsPerRef handles each; the iteration scenarios build IterPoints records.
const (
	DefaultEntities     = 1000
	DefaultPointsPerRef = 10
	DefaultIterPoints   = 100000
)

// Point is the payload every scenario mutates. Resolving a handle
// increments both fields by exactly 1, so a point shared by several handles
// gains one increment per handle each pass.
type Point struct {
	X uint32
	Y uint32
}
