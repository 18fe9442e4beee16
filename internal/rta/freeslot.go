package rta

import "fmt"

// FirstFreeSlot returns the earliest time unit past every task's
// completion that carries no pending demand. Unlike the response-time
// recurrence, every task contributes interference here, regardless of
// priority. The iteration is capped at SlotMaxIter; hitting the cap,
// or depending on a response time that never converged, yields
// ErrNoConvergence.
func (s *System) FirstFreeSlot() (float64, error) {
	s.slotOnce.Do(func() {
		if len(s.tasks) == 0 {
			s.slotErr = ErrEmptySystem
			return
		}

		seed := 0.0
		for _, r := range s.ResponseTimes() {
			if r == NotSchedulable {
				s.slotErr = fmt.Errorf("first free slot: %w", ErrNoConvergence)
				return
			}
			if r > seed {
				seed = r
			}
		}

		m := 1 + seed
		for iter := 0; iter < s.cfg.SlotMaxIter; iter++ {
			next := 1.0
			for _, t := range s.tasks {
				if t.Period == 0 {
					continue
				}
				next += ceilClose(m/t.Period) * t.Execution
			}
			if next == m {
				s.slot = m
				return
			}
			m = next
		}
		s.slotErr = fmt.Errorf("first free slot: %w", ErrNoConvergence)
	})
	return s.slot, s.slotErr
}
