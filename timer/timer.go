package timer

import boos "github.com/ericyao2013/boos-core.rev2"

// Timer is an acquired hardware timer.
//
// A nil or released Timer is not constructed: reads return zero, Number
// returns -1 and writes are ignored.
type Timer struct {
	ctrl   *Controller
	chip   Chip
	number int
}

var _ boos.Timer = &Timer{}

// IsConstructed reports whether t owns a hardware timer.
func (t *Timer) IsConstructed() bool {
	return t != nil && t.chip != nil
}

// Count returns the counter register.
func (t *Timer) Count() int64 {
	if !t.IsConstructed() {
		return 0
	}
	return int64(t.chip.Count())
}

// Period returns the period register in ticks.
func (t *Timer) Period() int64 {
	if !t.IsConstructed() {
		return 0
	}
	return int64(t.chip.Period())
}

// SetCount sets the counter register. Negative counts are ignored.
func (t *Timer) SetCount(count int64) {
	if !t.IsConstructed() || count < 0 {
		return
	}
	t.chip.SetCount(uint64(count))
}

// SetPeriod sets the period in microseconds. A non-positive period or one
// beyond the chip's range selects the maximum period.
func (t *Timer) SetPeriod(us int64) {
	if !t.IsConstructed() {
		return
	}

	maxPeriod := t.chip.MaxPeriod()
	if us <= 0 {
		t.chip.SetPeriod(maxPeriod)
		return
	}

	freq := t.chip.Frequency()
	sec, frac := uint64(us)/1e6, uint64(us)%1e6
	if freq > 0 && sec > maxPeriod/freq {
		t.chip.SetPeriod(maxPeriod)
		return
	}

	ticks := sec*freq + frac*freq/1e6
	t.chip.SetPeriod(min(max(ticks, 1), maxPeriod))
}

func (t *Timer) Start() {
	if t.IsConstructed() {
		t.chip.Start()
	}
}

func (t *Timer) Stop() {
	if t.IsConstructed() {
		t.chip.Stop()
	}
}

// Number returns the timer number, or -1 if t is not constructed.
func (t *Timer) Number() int {
	if !t.IsConstructed() {
		return -1
	}
	return t.number
}

// Release stops the timer and returns it to its controller.
func (t *Timer) Release() {
	if !t.IsConstructed() {
		return
	}

	t.chip.Stop()
	t.chip.SetCount(0)
	t.ctrl.release(t.number)

	t.chip = nil
	t.ctrl = nil
	t.number = -1
}
