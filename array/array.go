// Package array implements a generic dynamic array: a contiguous buffer of
// slots that doubles when full and shrinks by one slot on every removal.
//
// Slots [0, Len()) hold appended elements, slots [Len(), Cap()) are empty.
// An empty slot is distinct from a slot holding the zero value of T.
//
// Array is not safe for concurrent use.
package array

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/edu-luc-cs-leo/comp-271-su-2025-week-05-jknott1/utils"
)

const (
	DefaultCapacity    = 4
	MinCapacity        = 1
	GrowthFactor       = 2
	NotFound           = -1
	DefaultEmptyMarker = "null"
)

type (
	slot[T any] struct {
		value    T
		occupied bool
	}

	Array[T any] struct {
		buf       []slot[T]
		occupancy int
		eq        Equality[T]
		cfg       config
	}
)

// New creates an array of comparable elements matched by value.
// A capacity below MinCapacity is replaced by DefaultCapacity.
func New[T comparable](capacity int, options ...Option) *Array[T] {
	return NewFunc[T](capacity, Equal[T], options...)
}

// NewDefault is New(DefaultCapacity).
func NewDefault[T comparable](options ...Option) *Array[T] {
	return New[T](DefaultCapacity, options...)
}

// NewFunc creates an array whose lookups use eq to match elements.
func NewFunc[T any](capacity int, eq Equality[T], options ...Option) *Array[T] {
	cfg := config{emptyMarker: DefaultEmptyMarker}
	for _, o := range options {
		o(&cfg)
	}

	if capacity < MinCapacity {
		capacity = DefaultCapacity
	}

	return &Array[T]{
		buf: make([]slot[T], capacity),
		eq:  eq,
		cfg: cfg,
	}
}

// Len returns the number of occupied slots.
func (a *Array[T]) Len() int {
	return a.occupancy
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return len(a.buf)
}

// Append writes v into the first empty slot, doubling the buffer first
// when every slot is occupied.
func (a *Array[T]) Append(v T) error {
	if a.occupancy == len(a.buf) {
		if err := a.grow(); err != nil {
			return err
		}
	}

	a.buf[a.occupancy] = slot[T]{value: v, occupied: true}
	a.occupancy++
	return nil
}

func (a *Array[T]) grow() error {
	newCap, ok := utils.CheckedMul(len(a.buf), GrowthFactor)
	if !ok {
		return errors.Wrapf(ErrAllocationFailure, "capacity %d overflows when doubled", len(a.buf))
	}
	if a.cfg.maxCapacity > 0 && newCap > a.cfg.maxCapacity {
		return errors.Wrapf(ErrAllocationFailure, "capacity %d exceeds limit %d", newCap, a.cfg.maxCapacity)
	}

	buf, err := allocate[T](newCap)
	if err != nil {
		return errors.Wrapf(err, "grow from %d to %d", len(a.buf), newCap)
	}

	copy(buf, a.buf)
	a.buf = buf
	return nil
}

// At returns the element at index i, or false if slot i is not occupied.
func (a *Array[T]) At(i int) (T, bool) {
	if i < 0 || i >= a.occupancy {
		return utils.GetZero[T](), false
	}
	return a.buf[i].value, true
}

// IndexOf returns the index of the first slot matching v or NotFound.
// Every allocated slot is scanned; empty slots never match.
func (a *Array[T]) IndexOf(v T) int {
	return slices.IndexFunc(a.buf, func(s slot[T]) bool {
		return s.occupied && a.eq(s.value, v)
	})
}

func (a *Array[T]) Contains(v T) bool {
	return a.IndexOf(v) != NotFound
}

// CountOf returns how many slots match v.
func (a *Array[T]) CountOf(v T) int {
	var count int
	for _, s := range a.buf {
		if s.occupied && a.eq(s.value, v) {
			count++
		}
	}
	return count
}

// RemoveAt removes the element at index i, shifting the rest left and
// shrinking the buffer by one slot (never below MinCapacity).
// An index outside [0, Len()) leaves the array untouched and returns false.
func (a *Array[T]) RemoveAt(i int) (T, bool) {
	if i < 0 || i >= a.occupancy {
		return utils.GetZero[T](), false
	}

	newCap := len(a.buf) - 1
	if newCap < MinCapacity {
		newCap = MinCapacity
	}

	buf, err := allocate[T](newCap)
	if err != nil {
		return utils.GetZero[T](), false
	}

	removed := a.buf[i].value
	copy(buf, a.buf[:i])
	copy(buf[i:], a.buf[i+1:])
	a.buf = buf
	a.occupancy--

	return removed, true
}

// Remove removes the first element matching v.
func (a *Array[T]) Remove(v T) (T, bool) {
	return a.RemoveAt(a.IndexOf(v))
}

// String renders every allocated slot, quoted and comma separated,
// with empty slots shown as the empty marker: ["a", "b", "null"].
func (a *Array[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, s := range a.buf {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(`"`)
		if s.occupied {
			b.WriteString(fmt.Sprint(s.value))
		} else {
			b.WriteString(a.cfg.emptyMarker)
		}
		b.WriteString(`"`)
	}
	b.WriteString("]")
	return b.String()
}

func allocate[T any](n int) (buf []slot[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrAllocationFailure, "allocate %d slots: %v", n, r)
		}
	}()

	return make([]slot[T], n), nil
}
