// internal/rta/simulator.go

package rta

import (
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Schedule is the outcome of one cell-by-cell RM simulation.
type Schedule struct {
	Horizon   int        // number of simulated cells
	Occupancy [][]bool   // [task index][cell], true when the task held the cell
	Order     []TaskID   // busy cells in chronological order
	Events    []SimEvent // trace of releases, dispatches and completions
}

// taskState tracks one task across the simulation.
type taskState struct {
	executed  int // cells completed in the current instance
	nextStart int // next release cell
}

// Schedule simulates preemptive rate-monotonic dispatch cell by cell
// over one hyperperiod (or Config.Horizon when set) and memoizes the
// result. The pending set is a red-black tree keyed by priority index,
// so Left() is always the next task to run. A release while the
// previous instance is still pending resets that instance's progress.
func (s *System) Schedule() (*Schedule, error) {
	s.schedOnce.Do(func() {
		s.sched, s.schedErr = s.simulate()
	})
	return s.sched, s.schedErr
}

func (s *System) simulate() (*Schedule, error) {
	horizon := s.cfg.Horizon
	if horizon == 0 {
		h, err := s.Hyperperiod()
		if err != nil {
			return nil, err
		}
		horizon = int(math.Round(h))
	}

	n := len(s.tasks)
	states := make([]taskState, n)
	demand := make([]int, n) // integral execution demand per instance
	for i, t := range s.tasks {
		demand[i] = int(math.Round(t.Execution))
		if s.cfg.ReleaseOffset == ReleaseAtPeriod {
			states[i].nextStart = int(math.Round(t.Period))
		}
	}

	sch := &Schedule{
		Horizon:   horizon,
		Occupancy: make([][]bool, n),
	}
	for i := range sch.Occupancy {
		sch.Occupancy[i] = make([]bool, horizon)
	}

	pending := redblacktree.NewWithIntComparator()

	for cell := 0; cell < horizon; cell++ {
		// release pass, in priority order
		for i, t := range s.tasks {
			if t.Period == 0 || demand[i] == 0 {
				continue
			}
			if cell == states[i].nextStart {
				states[i].nextStart += int(math.Round(t.Period))
				states[i].executed = 0
				pending.Put(i, t.ID)
				sch.Events = append(sch.Events, SimEvent{Cell: cell, Kind: EventRelease, Task: t.ID})
			}
		}

		node := pending.Left()
		if node == nil {
			sch.Events = append(sch.Events, SimEvent{Cell: cell, Kind: EventIdle})
			continue
		}
		i := node.Key.(int)
		id := s.tasks[i].ID

		sch.Occupancy[i][cell] = true
		sch.Order = append(sch.Order, id)
		sch.Events = append(sch.Events, SimEvent{Cell: cell, Kind: EventDispatch, Task: id})

		states[i].executed++
		if states[i].executed >= demand[i] {
			pending.Remove(i)
			sch.Events = append(sch.Events, SimEvent{Cell: cell, Kind: EventComplete, Task: id})
		}
	}

	return sch, nil
}
