package rta

import "math"

// TaskID identifies a task in the system. It doubles as the RM priority
// index: IDs are assigned 1..n in input order, and a lower ID means a
// higher priority.
type TaskID int

// Task is the timing record of one periodic task. Tasks are plain
// values: once built by NewTask they are never mutated.
type Task struct {
	ID          TaskID
	Execution   float64 // worst-case execution time C
	Period      float64 // release interval T; 0 means the task never runs
	Deadline    float64 // relative deadline D, informational
	Utilization float64 // C/T, or 0 when T == 0
}

// NewTask builds a task with every timing field rounded to the given
// decimal precision. Utilization is derived from the rounded C and T.
func NewTask(id TaskID, c, t, d float64, precision int) Task {
	c = roundTo(c, precision)
	t = roundTo(t, precision)
	var u float64
	if t > 0 {
		u = roundTo(c/t, precision)
	}
	return Task{
		ID:          id,
		Execution:   c,
		Period:      t,
		Deadline:    roundTo(d, precision),
		Utilization: u,
	}
}

func roundTo(x float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(x*scale) / scale
}

const quotientEps = 1e-9

// ceilClose is Ceil with a guard for quotients that land a hair above
// an integer after float division.
func ceilClose(x float64) float64 { return math.Ceil(x - quotientEps) }

// floorClose mirrors ceilClose for the floor proportion mode.
func floorClose(x float64) float64 { return math.Floor(x + quotientEps) }
