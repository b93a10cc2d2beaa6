package tween

import "slices"

// Scheduler steps a set of intervals once per host frame and drops them
// when they finish. Intervals added from inside a callback start on the
// next Update; cancelled ones stop immediately.
//
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	active    []*Interval
	pending   []*Interval
	cancelled map[*Interval]struct{}
	updating  bool
}

// NewScheduler returns a scheduler running the given intervals.
func NewScheduler(intervals ...*Interval) *Scheduler {
	s := &Scheduler{cancelled: make(map[*Interval]struct{})}
	for _, iv := range intervals {
		s.Add(iv)
	}
	return s
}

// Add schedules iv. Nil intervals and intervals already scheduled are
// ignored, so an interval is stepped at most once per Update. An interval
// cancelled during the current Update may be added again.
func (s *Scheduler) Add(iv *Interval) {
	if iv == nil || slices.Contains(s.pending, iv) {
		return
	}
	if slices.Contains(s.active, iv) {
		if _, gone := s.cancelled[iv]; !gone {
			return
		}
	}
	if s.updating {
		s.pending = append(s.pending, iv)
		return
	}
	s.active = append(s.active, iv)
}

// Update steps every running interval by dt seconds, then removes those
// that finished or were cancelled.
func (s *Scheduler) Update(dt float64) {
	s.updating = true
	for _, iv := range s.active {
		if _, gone := s.cancelled[iv]; gone {
			continue
		}
		iv.Step(dt)
	}
	s.updating = false

	kept := s.active[:0]
	for _, iv := range s.active {
		if _, gone := s.cancelled[iv]; gone || iv.Done() {
			continue
		}
		kept = append(kept, iv)
	}
	clear(s.active[len(kept):])
	s.active = append(kept, s.pending...)

	clear(s.pending)
	s.pending = s.pending[:0]
	clear(s.cancelled)
}

// Cancel removes iv without firing it again. It reports whether iv was
// scheduled.
func (s *Scheduler) Cancel(iv *Interval) bool {
	if i := slices.Index(s.pending, iv); i >= 0 {
		s.pending = slices.Delete(s.pending, i, i+1)
		return true
	}
	if !slices.Contains(s.active, iv) {
		return false
	}
	if s.updating {
		if _, gone := s.cancelled[iv]; gone {
			return false
		}
		s.cancelled[iv] = struct{}{}
		return true
	}
	s.active = slices.DeleteFunc(s.active, func(other *Interval) bool { return other == iv })
	return true
}

// Clear cancels every scheduled interval.
func (s *Scheduler) Clear() {
	clear(s.pending)
	s.pending = s.pending[:0]
	if s.updating {
		for _, iv := range s.active {
			s.cancelled[iv] = struct{}{}
		}
		return
	}
	clear(s.active)
	s.active = s.active[:0]
}

// Len returns the number of intervals that the next Update will step,
// including ones that have finished but not yet been removed.
func (s *Scheduler) Len() int {
	n := len(s.pending)
	for _, iv := range s.active {
		if _, gone := s.cancelled[iv]; !gone {
			n++
		}
	}
	return n
}
