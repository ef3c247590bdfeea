package schash

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// DefaultSize is the bucket count used by New.
const DefaultSize = 101

// ErrInvalidSize is returned when a table is requested with a size hint below 1.
var ErrInvalidSize = errors.New("invalid table size")

// Hasher is the contract for table elements. Elements that are Equal must
// return the same Hash.
type Hasher[T any] interface {
	Hash() int
	Equal(other T) bool
}

// Option configures a Table.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger makes the table log growth events at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Table is a separate-chaining hash table of distinct elements
type Table[T Hasher[T]] struct {
	buckets [][]T
	size    int
	grows   int
	logger  *slog.Logger
}

// New creates a table with DefaultSize buckets
func New[T Hasher[T]](opts ...Option) *Table[T] {
	t, _ := NewWithSize[T](DefaultSize, opts...)
	return t
}

// NewWithSize creates a table whose bucket count is the smallest prime not
// below size.
func NewWithSize[T Hasher[T]](size int, opts ...Option) (*Table[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Table[T]{
		buckets: make([][]T, nextPrime(size)),
		logger:  o.logger,
	}, nil
}

// Insert adds x unless an equal element is already present. The table grows
// once the element count exceeds the bucket count.
func (t *Table[T]) Insert(x T) {
	if t.Contains(x) {
		return
	}

	idx := t.index(x)
	t.buckets[idx] = append(t.buckets[idx], x)
	t.size++

	if t.size > len(t.buckets) {
		t.rehash()
	}
}

// Remove deletes the first element equal to x. Removing an absent element is a no-op.
func (t *Table[T]) Remove(x T) {
	idx := t.index(x)
	chain := t.buckets[idx]

	for i := range chain {
		if x.Equal(chain[i]) {
			t.buckets[idx] = slices.Delete(chain, i, i+1)
			t.size--
			return
		}
	}
}

// Contains reports whether an element equal to x is stored.
func (t *Table[T]) Contains(x T) bool {
	for _, e := range t.buckets[t.index(x)] {
		if x.Equal(e) {
			return true
		}
	}
	return false
}

// MakeEmpty removes every element. The bucket count is kept.
func (t *Table[T]) MakeEmpty() {
	for i := range t.buckets {
		clear(t.buckets[i])
		t.buckets[i] = t.buckets[i][:0]
	}
	t.size = 0
}

// Len returns the number of stored elements.
func (t *Table[T]) Len() int {
	return t.size
}

// Buckets returns the current bucket count.
func (t *Table[T]) Buckets() int {
	return len(t.buckets)
}

// Grows returns how many times the table has rehashed into a larger bucket array.
func (t *Table[T]) Grows() int {
	return t.grows
}

// LoadFactor returns elements per bucket.
func (t *Table[T]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// All yields every element in bucket order, then chain order.
// The table must not be modified during iteration.
func (t *Table[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, chain := range t.buckets {
			for _, e := range chain {
				if !yield(e) {
					return
				}
			}
		}
	}
}

func (t *Table[T]) rehash() {
	old := t.buckets
	oldCount := len(old)

	t.buckets = make([][]T, nextPrime(2*oldCount+1))
	t.size = 0
	t.grows++

	for _, chain := range old {
		for _, e := range chain {
			t.Insert(e)
		}
	}

	if t.logger != nil {
		t.logger.Debug("Hash table grew",
			"old_buckets", oldCount,
			"new_buckets", len(t.buckets),
			"size", t.size)
	}
}

// index maps x to a bucket, folding negative remainders into range.
func (t *Table[T]) index(x T) int {
	return normalize(x.Hash(), len(t.buckets))
}

func normalize(h, n int) int {
	h %= n
	if h < 0 {
		h += n
	}
	return h
}
