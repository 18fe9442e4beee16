package rta_test

import (
	"bytes"
	"strings"
	"testing"

	"rmsched/internal/rta"
)

func TestScheduleSmallSystemExactLayout(t *testing.T) {
	sys := mustSystem(t, "(2,4,4),(1,8,8)")
	sch, err := sys.Schedule()
	if err != nil {
		t.Fatal(err)
	}
	if sch.Horizon != 8 {
		t.Fatalf("expected horizon 8, got %d", sch.Horizon)
	}

	// task 1 runs cells 0,1 and 4,5; task 2 gets cell 2; 3,6,7 idle
	wantT1 := []bool{true, true, false, false, true, true, false, false}
	wantT2 := []bool{false, false, true, false, false, false, false, false}
	for c := 0; c < 8; c++ {
		if sch.Occupancy[0][c] != wantT1[c] {
			t.Errorf("task 1 cell %d: expected %v, got %v", c, wantT1[c], sch.Occupancy[0][c])
		}
		if sch.Occupancy[1][c] != wantT2[c] {
			t.Errorf("task 2 cell %d: expected %v, got %v", c, wantT2[c], sch.Occupancy[1][c])
		}
	}

	wantOrder := []rta.TaskID{1, 1, 2, 1, 1}
	if len(sch.Order) != len(wantOrder) {
		t.Fatalf("expected %d busy cells, got %d", len(wantOrder), len(sch.Order))
	}
	for i, id := range wantOrder {
		if sch.Order[i] != id {
			t.Errorf("order[%d]: expected task %d, got %d", i, id, sch.Order[i])
		}
	}
}

func TestHigherPriorityPreemptsWithinCell(t *testing.T) {
	// At cell 0 both are pending; the lower index must win every time
	// its instance is incomplete.
	sys := mustSystem(t, "(3,6,6),(2,6,6)")
	sch, err := sys.Schedule()
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []rta.TaskID{1, 1, 1, 2, 2}
	for i, id := range wantOrder {
		if sch.Order[i] != id {
			t.Errorf("order[%d]: expected task %d, got %d", i, id, sch.Order[i])
		}
	}
}

// Over one hyperperiod each task must hold exactly C * (H/T) cells.
func TestOccupancyTotalsOverHyperperiod(t *testing.T) {
	sys := mustSystem(t, "(1,5,5),(1,7,7),(1,12,12),(1,14,14),(2,25,25)")
	sch, err := sys.Schedule()
	if err != nil {
		t.Fatal(err)
	}
	if sch.Horizon != 2100 {
		t.Fatalf("expected horizon 2100, got %d", sch.Horizon)
	}

	for i, task := range sys.Tasks() {
		var held int
		for _, busy := range sch.Occupancy[i] {
			if busy {
				held++
			}
		}
		want := int(task.Execution) * sch.Horizon / int(task.Period)
		if held != want {
			t.Errorf("task %d: expected %d occupied cells, got %d", task.ID, want, held)
		}
	}
}

func TestReleaseAtPeriodConvention(t *testing.T) {
	cfg := rta.Load("")
	cfg.ReleaseOffset = rta.ReleaseAtPeriod
	sys, err := rta.NewSystem("(2,4,4),(1,8,8)", cfg)
	if err != nil {
		t.Fatal(err)
	}
	sch, err := sys.Schedule()
	if err != nil {
		t.Fatal(err)
	}

	// nothing is released before t = T: cells 0..3 idle, task 1 runs 4,5
	for c := 0; c < 4; c++ {
		if sch.Occupancy[0][c] || sch.Occupancy[1][c] {
			t.Errorf("cell %d: expected idle before the first release", c)
		}
	}
	if !sch.Occupancy[0][4] || !sch.Occupancy[0][5] {
		t.Error("expected task 1 to hold cells 4 and 5")
	}
}

func TestHorizonOverride(t *testing.T) {
	cfg := rta.Load("")
	cfg.Horizon = 5
	sys, err := rta.NewSystem("(1,5,5),(1,7,7)", cfg)
	if err != nil {
		t.Fatal(err)
	}
	sch, err := sys.Schedule()
	if err != nil {
		t.Fatal(err)
	}
	if sch.Horizon != 5 {
		t.Errorf("expected horizon 5, got %d", sch.Horizon)
	}
	if len(sch.Occupancy[0]) != 5 {
		t.Errorf("expected 5 cells per task, got %d", len(sch.Occupancy[0]))
	}
}

func TestScheduleIsMemoized(t *testing.T) {
	sys := mustSystem(t, "(1,5,5),(1,7,7)")
	first, err := sys.Schedule()
	if err != nil {
		t.Fatal(err)
	}
	second, err := sys.Schedule()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected the same memoized schedule on repeat access")
	}
}

func TestScheduleTraceCSV(t *testing.T) {
	sys := mustSystem(t, "(2,4,4),(1,8,8)")
	sch, err := sys.Schedule()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := sch.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "cell,event,task_id" {
		t.Errorf("expected CSV header, got %q", lines[0])
	}
	if len(lines) != len(sch.Events)+1 {
		t.Errorf("expected %d rows, got %d", len(sch.Events)+1, len(lines))
	}
	if lines[1] != "0,Release,1" {
		t.Errorf("expected first row \"0,Release,1\", got %q", lines[1])
	}
}
