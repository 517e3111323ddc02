package types

import (
	"iter"
	"math/bits"
	"strings"
)

// flagMask keeps the four cardinal bits.
const flagMask = 0b1111

// Directions is a set of cardinal directions packed into the low four bits of
// a byte. The zero value is the empty set.
type Directions struct {
	flags uint8
}

// Of returns the set containing only d.
func Of(d Direction) Directions {
	return Directions{flags: uint8(d) & flagMask}
}

// FromFlags builds a set from a raw flag value. Bits above the low four are
// dropped.
func FromFlags(raw uint8) Directions {
	return Directions{flags: raw & flagMask}
}

// Contains reports whether d is in the set.
func (s Directions) Contains(d Direction) bool {
	return s.flags&uint8(d) != 0
}

// ContainsAll reports whether every direction of o is also in s.
// An empty o is always contained.
func (s Directions) ContainsAll(o Directions) bool {
	return s.flags&o.flags == o.flags
}

// ContainsAny reports whether s and o share at least one direction.
func (s Directions) ContainsAny(o Directions) bool {
	return s.flags&o.flags != 0
}

// Empty reports whether the set has no directions.
func (s Directions) Empty() bool {
	return s.flags == 0
}

// Flags returns the raw 4-bit pattern, in [0, 15].
func (s Directions) Flags() uint8 {
	return s.flags
}

// Len returns the number of directions in the set.
func (s Directions) Len() int {
	return bits.OnesCount8(s.flags)
}

// With returns s plus d. s is left untouched.
func (s Directions) With(d Direction) Directions {
	return s.Union(Of(d))
}

// Union returns the directions present in s or o.
func (s Directions) Union(o Directions) Directions {
	return Directions{flags: s.flags | o.flags}
}

// Add puts d into s and returns s for chaining.
func (s *Directions) Add(d Direction) *Directions {
	s.flags |= uint8(d) & flagMask
	return s
}

// Merge puts every direction of o into s and returns s for chaining.
func (s *Directions) Merge(o Directions) *Directions {
	s.flags |= o.flags
	return s
}

// All yields the members of s in Cardinals order.
func (s Directions) All() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for _, d := range Cardinals {
			if s.Contains(d) && !yield(d) {
				return
			}
		}
	}
}

func (s Directions) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for d := range s.All() {
		if b.Len() > 1 {
			b.WriteByte('|')
		}
		b.WriteString(d.String())
	}
	b.WriteByte('}')
	return b.String()
}
