package deque

import (
	"context"
	"log/slog"

	"github.com/lucasgdosr/centerdeque/internal/log"
)

// DefaultCapacity is the number of slots New allocates.
const DefaultCapacity = 15

// Growth multiplies the capacity by growthNum/growthDen, i.e. 2.5.
const (
	growthNum = 5
	growthDen = 2
)

// GrowthEvent describes one reallocation of a Deque's buffer.
type GrowthEvent struct {
	OldCap int // capacity before growing
	NewCap int // capacity after growing
	Len    int // number of elements moved
	Front  int // slot the first element landed in
}

// GrowthObserver is notified after a Deque grows its buffer.
type GrowthObserver interface {
	OnGrow(ev GrowthEvent)
}

// GrowthObserverFunc adapts a function to GrowthObserver.
type GrowthObserverFunc func(ev GrowthEvent)

// OnGrow calls f(ev).
func (f GrowthObserverFunc) OnGrow(ev GrowthEvent) { f(ev) }

// grownCapacity returns the capacity that replaces oldCap when n elements
// must be re-centered. Both ends keep at least one free slot.
func grownCapacity(oldCap, n uint) uint {
	newCap := oldCap * growthNum / growthDen
	if newCap < n+2 {
		newCap = n + 2
	}
	return newCap
}

// centerOffset is the first slot of n elements centered in newCap slots.
func centerOffset(newCap, n uint) uint {
	return (newCap - n) / 2
}

// grow reallocates the buffer and centers the occupied range in it.
// It must only run when one end has no free slot.
func (d *Deque[T]) grow() {
	if debugInvariants && d.front != 0 && d.back != d.cap() {
		panic("deque: grow called with free slots at both ends")
	}

	oldCap := d.cap()
	n := d.len()
	newCap := grownCapacity(oldCap, n)
	offset := centerOffset(newCap, n)

	buf := make([]T, newCap)
	copy(buf[offset:], d.buf[d.front:d.back])

	d.buf = buf
	d.front = offset
	d.back = offset + n

	ev := GrowthEvent{
		OldCap: int(oldCap),
		NewCap: int(newCap),
		Len:    int(n),
		Front:  int(offset),
	}
	d.logGrowth(ev)
	if d.observer != nil {
		d.observer.OnGrow(ev)
	}
}

func (d *Deque[T]) logGrowth(ev GrowthEvent) {
	if d.logger == nil || !d.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	d.logger.LogAttrs(context.Background(), slog.LevelDebug, "deque grown",
		slog.Any("elem_type", log.TypeOf[T]()),
		slog.Int("old_cap", ev.OldCap),
		slog.Int("new_cap", ev.NewCap),
		slog.Int("len", ev.Len),
		slog.Int("front", ev.Front),
	)
}
