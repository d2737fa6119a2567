package timer

import (
	"math"
	"sync"
	"time"
)

// Chip is the register-level interface of one hardware timer.
type Chip interface {
	// Count returns the counter register.
	Count() uint64
	SetCount(count uint64)
	// Period returns the period register in ticks. The counter wraps to zero
	// when it reaches the period.
	Period() uint64
	SetPeriod(ticks uint64)
	// MaxPeriod returns the largest period the chip supports.
	MaxPeriod() uint64
	// Frequency returns the number of ticks per second.
	Frequency() uint64
	Start()
	Stop()
	Running() bool
}

// SoftChip is a 32-bit timer counting on a software clock.
type SoftChip struct {
	mu        sync.Mutex
	now       func() time.Time
	startedAt time.Time
	frequency uint64
	count     uint64
	period    uint64
	running   bool
}

var _ Chip = &SoftChip{}

// NewSoftChip creates a stopped chip counting at frequency ticks per second.
// A nil now uses time.Now.
func NewSoftChip(frequency uint64, now func() time.Time) *SoftChip {
	if now == nil {
		now = time.Now
	}

	c := &SoftChip{
		now:       now,
		frequency: max(frequency, 1),
	}
	c.period = c.MaxPeriod()

	return c
}

func (c *SoftChip) Count() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.countLocked()
}

func (c *SoftChip) SetCount(count uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.count = count % c.period
	if c.running {
		c.startedAt = c.now()
	}
}

func (c *SoftChip) Period() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.period
}

func (c *SoftChip) SetPeriod(ticks uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := c.countLocked()

	if ticks == 0 || ticks > c.MaxPeriod() {
		ticks = c.MaxPeriod()
	}
	c.period = ticks
	c.count = count % ticks

	if c.running {
		c.startedAt = c.now()
	}
}

func (*SoftChip) MaxPeriod() uint64 {
	return math.MaxUint32
}

func (c *SoftChip) Frequency() uint64 {
	return c.frequency
}

func (c *SoftChip) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		c.startedAt = c.now()
		c.running = true
	}
}

func (c *SoftChip) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		c.count = c.countLocked()
		c.running = false
	}
}

func (c *SoftChip) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}

// Preconditions: c.mu must be locked.
func (c *SoftChip) countLocked() uint64 {
	count := c.count
	if c.running {
		count += ticks(c.now().Sub(c.startedAt), c.frequency)
	}
	return count % c.period
}

// ticks converts an elapsed duration to timer ticks.
func ticks(d time.Duration, frequency uint64) uint64 {
	if d <= 0 {
		return 0
	}
	sec := uint64(d / time.Second)
	frac := uint64(d % time.Second)
	return sec*frequency + frac*frequency/uint64(time.Second)
}
