/*
Package timer implements the hardware timer resource of the kernel.

A Controller owns a bank of chips. Timers are acquired from it by number and
returned with Release.
*/
package timer

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"

	"github.com/puzpuzpuz/xsync/v2"
	"github.com/sirupsen/logrus"
)

// Controller is a bank of hardware timers.
// It is safe for concurrent use; a single Timer is not.
type Controller struct {
	chips []Chip
	busy  *xsync.MapOf[int, struct{}]
	log   logrus.FieldLogger
}

// NewController creates a controller over chips. Timer numbers are chip indices.
func NewController(chips []Chip, opts ...Option) (*Controller, error) {
	if len(chips) == 0 {
		return nil, ErrNoChips
	}

	for i, c := range chips {
		if c == nil {
			return nil, fmt.Errorf("chip %d is nil: %w", i, ErrNoChips)
		}
	}

	o := newDefaultControllerOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &Controller{
		chips: chips,
		busy:  xsync.NewTypedMapOf[int, struct{}](hashNumber),
		log:   o.logger,
	}, nil
}

// NewSoftController creates a controller over n software chips counting at
// frequency ticks per second.
func NewSoftController(n int, frequency uint64, opts ...Option) (*Controller, error) {
	o := newDefaultControllerOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	chips := make([]Chip, 0, max(n, 0))
	for range n {
		chips = append(chips, NewSoftChip(frequency, o.now))
	}

	return NewController(chips, opts...)
}

// Len returns the number of timers.
func (c *Controller) Len() int {
	return len(c.chips)
}

// Busy returns the number of acquired timers.
func (c *Controller) Busy() int {
	return c.busy.Size()
}

// Acquire acquires the timer with the given number.
func (c *Controller) Acquire(number int) (*Timer, error) {
	if number < 0 || number >= len(c.chips) {
		return nil, fmt.Errorf("acquire %d of %d: %w", number, len(c.chips), ErrInvalidNumber)
	}

	if _, loaded := c.busy.LoadOrStore(number, struct{}{}); loaded {
		return nil, fmt.Errorf("acquire %d: %w", number, ErrBusy)
	}

	c.log.WithField("number", number).Debug("timer: acquired")

	return &Timer{
		ctrl:   c,
		chip:   c.chips[number],
		number: number,
	}, nil
}

// AcquireFree acquires the first free timer.
func (c *Controller) AcquireFree() (*Timer, error) {
	for number := range c.chips {
		if t, err := c.Acquire(number); err == nil {
			return t, nil
		}
	}
	return nil, ErrNoFreeTimer
}

func (c *Controller) release(number int) {
	if _, ok := c.busy.LoadAndDelete(number); !ok {
		c.log.WithField("number", number).Warn("timer: release of a free timer")
		return
	}
	c.log.WithField("number", number).Debug("timer: released")
}

func hashNumber(seed maphash.Seed, number int) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(number))
	_, _ = h.Write(buf[:])

	return h.Sum64()
}
