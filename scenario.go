package ecsbench

import (
	"time"

	"github.com/unitoftime/ecs"
)

// Scenario is one built dataset plus the pass that mutates it. Builders pay
// the construction cost up front; Pass only does the measured work. State
// accumulates across passes, counters are never reset.
type Scenario struct {
	Name string
	pass func()
}

// Pass runs one full traversal, resolving and mutating every handle of
// every referrer exactly once.
func (s Scenario) Pass() {
	s.pass()
}

// System wraps the pass so it can be appended to an ecs.Scheduler and driven
// on the fixed timestep loop, the same way game systems are.
func (s Scenario) System() ecs.System {
	return ecs.System{Name: s.Name, Func: func(dt time.Duration) {
		s.pass()
	}}
}
