package rta

// ResponseTimes returns each task's worst-case response time, index
// aligned with Tasks(). An entry is NotSchedulable (-1) when the
// recurrence fails to reach a fixed point within MaxIter iterations;
// the remaining entries are still computed.
func (s *System) ResponseTimes() []float64 {
	s.respOnce.Do(func() {
		s.resp = make([]float64, len(s.tasks))
		prev := 0.0
		for i, task := range s.tasks {
			seed := task.Execution
			if s.cfg.Seed == SeedChained && i > 0 {
				seed = prev + task.Execution
			}
			r := s.responseTime(i, seed)
			s.resp[i] = r
			if r != NotSchedulable {
				prev = r
			}
		}
	})
	out := make([]float64, len(s.resp))
	copy(out, s.resp)
	return out
}

// responseTime iterates t <- C_i + sum_{j<i} ceil(t/T_j)*C_j until the
// interference stops growing. The recurrence is monotonically
// non-decreasing, so hitting the cap means the demand never settles.
func (s *System) responseTime(i int, seed float64) float64 {
	t := seed
	for iter := 0; iter < s.cfg.MaxIter; iter++ {
		next := s.tasks[i].Execution
		for j := 0; j < i; j++ {
			hp := s.tasks[j]
			if hp.Period == 0 {
				continue
			}
			next += ceilClose(t/hp.Period) * hp.Execution
		}
		if next == t {
			return t
		}
		t = next
	}
	return NotSchedulable
}

// SchedulableByResponseTime runs the exact test the utilization bounds
// approximate: every response time converged and stays within the
// task's deadline (its period when no deadline was given).
func (s *System) SchedulableByResponseTime() bool {
	resp := s.ResponseTimes()
	for i, r := range resp {
		if r == NotSchedulable {
			return false
		}
		d := s.tasks[i].Deadline
		if d == 0 {
			d = s.tasks[i].Period
		}
		if r > d {
			return false
		}
	}
	return true
}
