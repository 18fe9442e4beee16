package rta

import "math"

// Slack returns, per task, the spare capacity before its deadline that
// could be handed to lower-priority or aperiodic work, index aligned
// with Tasks(). Candidate instants are the next expirations of every
// task at or above the current priority inside the window
// [R_i - C_i, T_i]; at each instant the proportional demand of those
// tasks (ceiling mode by default, floor when configured) plus the
// blocking term F is charged against the period. The task's slack is
// the minimum over the candidates, never negative. A task whose
// response time hit the sentinel gets slack 0: nothing is provably
// spare for it.
func (s *System) Slack() []float64 {
	s.slackOnce.Do(func() {
		s.slack = make([]float64, len(s.tasks))
		resp := s.ResponseTimes()
		for i := range s.tasks {
			if resp[i] == NotSchedulable {
				continue
			}
			s.slack[i] = s.taskSlack(i, resp[i])
		}
	})
	out := make([]float64, len(s.slack))
	copy(out, s.slack)
	return out
}

func (s *System) taskSlack(i int, resp float64) float64 {
	task := s.tasks[i]
	lower := resp - task.Execution
	upper := task.Period
	if upper < lower {
		return 0
	}

	prop := ceilClose
	if s.cfg.SlackMode == SlackFloor {
		prop = floorClose
	}

	best := math.MaxFloat64
	for _, m := range s.slackExpirations(i, lower, upper) {
		demand := 0.0
		for j := 0; j <= i; j++ {
			t := s.tasks[j]
			if t.Period == 0 {
				continue
			}
			demand += prop(m/t.Period) * t.Execution
		}
		if sl := task.Period - demand - s.cfg.Blocking; sl < best {
			best = sl
		}
	}
	if best == math.MaxFloat64 || best < 0 {
		return 0
	}
	return roundTo(best, s.cfg.Precision)
}

// nextExpiration returns the smallest multiple of period at or above
// the reference instant.
func nextExpiration(reference, period float64) float64 {
	return ceilClose(reference/period) * period
}

// slackExpirations collects the candidate instants for task i: each
// higher-or-equal priority task's next expiration inside [lower,
// upper], plus the window's upper bound itself.
func (s *System) slackExpirations(i int, lower, upper float64) []float64 {
	var out []float64
	seen := make(map[float64]bool)
	add := func(m float64) {
		if m < lower || m > upper || seen[m] {
			return
		}
		seen[m] = true
		out = append(out, m)
	}

	for j := 0; j <= i; j++ {
		if s.tasks[j].Period == 0 {
			continue
		}
		add(nextExpiration(lower, s.tasks[j].Period))
	}
	add(upper)
	return out
}
