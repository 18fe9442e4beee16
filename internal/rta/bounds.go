package rta

import "math"

// TotalUtilization returns the summed C/T over all tasks, rounded to
// the configured precision. Zero for an empty system.
func (s *System) TotalUtilization() float64 {
	s.utilOnce.Do(func() {
		var sum float64
		for _, t := range s.tasks {
			sum += t.Utilization
		}
		s.util = roundTo(sum, s.cfg.Precision)
	})
	return s.util
}

// Hyperperiod returns the least common multiple of all task periods,
// the interval after which the whole schedule repeats. Zero-period
// tasks do not constrain the cycle; ErrEmptySystem for n = 0.
func (s *System) Hyperperiod() (float64, error) {
	s.hyperOnce.Do(func() {
		if len(s.tasks) == 0 {
			s.hyperErr = ErrEmptySystem
			return
		}
		// LCM over precision-scaled integers so fractional periods work:
		// lcm(k*a, k*b) = k*lcm(a, b).
		scale := math.Pow(10, float64(s.cfg.Precision))
		acc := int64(0)
		for _, t := range s.tasks {
			p := int64(math.Round(t.Period * scale))
			if p == 0 {
				continue
			}
			if acc == 0 {
				acc = p
				continue
			}
			acc = lcm(acc, p)
		}
		s.hyper = float64(acc) / scale
	})
	return s.hyper, s.hyperErr
}

// LiuBound returns the Liu & Layland utilization bound n(2^(1/n) - 1).
// ErrEmptySystem for n = 0.
func (s *System) LiuBound() (float64, error) {
	s.liuOnce.Do(func() {
		n := len(s.tasks)
		if n == 0 {
			s.liuErr = ErrEmptySystem
			return
		}
		s.liu = float64(n) * (math.Pow(2, 1/float64(n)) - 1)
	})
	return s.liu, s.liuErr
}

// SchedulableByLiu reports whether total utilization stays within the
// Liu bound. Sufficient only: a false result proves nothing.
func (s *System) SchedulableByLiu() (bool, error) {
	bound, err := s.LiuBound()
	if err != nil {
		return false, err
	}
	return s.TotalUtilization() <= bound, nil
}

// BiniBound returns the hyperbolic product over all tasks of (u_i + 1),
// rounded to two decimals. ErrEmptySystem for n = 0.
func (s *System) BiniBound() (float64, error) {
	s.biniOnce.Do(func() {
		if len(s.tasks) == 0 {
			s.biniErr = ErrEmptySystem
			return
		}
		prod := 1.0
		for _, t := range s.tasks {
			prod *= t.Utilization + 1
		}
		s.bini = roundTo(prod, 2)
	})
	return s.bini, s.biniErr
}

// SchedulableByBini reports the hyperbolic test: product(u_i + 1) <= 2.
// Also sufficient only, but tighter than Liu for non-identical periods.
func (s *System) SchedulableByBini() (bool, error) {
	bound, err := s.BiniBound()
	if err != nil {
		return false, err
	}
	return bound <= 2, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 { return a / gcd(a, b) * b }
