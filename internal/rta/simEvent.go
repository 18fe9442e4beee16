// internal/rta/simEvent.go

package rta

import (
	"encoding/csv"
	"io"
	"strconv"
)

// EventKind classifies one entry of a simulation trace.
type EventKind int

const (
	EventRelease EventKind = iota
	EventDispatch
	EventComplete
	EventIdle
)

func (k EventKind) String() string {
	switch k {
	case EventRelease:
		return "Release"
	case EventDispatch:
		return "Dispatch"
	case EventComplete:
		return "Complete"
	case EventIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// SimEvent records one simulator action at a discrete time cell.
type SimEvent struct {
	Cell int
	Kind EventKind
	Task TaskID // zero for Idle
}

// WriteCSV dumps the schedule trace as header + one row per event.
func (sch *Schedule) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"cell", "event", "task_id"}); err != nil {
		return err
	}
	for _, ev := range sch.Events {
		rec := []string{
			strconv.Itoa(ev.Cell),
			ev.Kind.String(),
			strconv.Itoa(int(ev.Task)),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
