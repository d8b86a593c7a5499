package dynstate

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Flags tracks which states of a Set are present, mirroring the generated
// CBDynamicFlags bitset. Bit positions are the one-based state values; bit
// zero stays clear.
type Flags struct {
	set  *Set
	bits *bitset.BitSet
}

// NewFlags returns an empty flag set for set, Count() bits wide.
func NewFlags(set *Set) *Flags {
	return &Flags{set: set, bits: bitset.New(uint(set.Count()))}
}

// Set marks a state value. Values outside [1, Len()] are ignored.
func (f *Flags) Set(value int) {
	if value < 1 || value > f.set.Len() {
		return
	}
	f.bits.Set(uint(value))
}

// Clear unmarks a state value.
func (f *Flags) Clear(value int) {
	if value < 1 || value > f.set.Len() {
		return
	}
	f.bits.Clear(uint(value))
}

// Test reports whether a state value is marked.
func (f *Flags) Test(value int) bool {
	if value < 1 || value > f.set.Len() {
		return false
	}
	return f.bits.Test(uint(value))
}

// Any reports whether any state is marked.
func (f *Flags) Any() bool {
	return f.bits.Any()
}

// String renders the flags with the original enumerant names.
func (f *Flags) String() string {
	return FormatFlags(f, nil)
}

// FormatFlags renders the marked states in ascending value order, pipe
// separated, each through stringer. An empty set renders the out-of-range
// marker instead, the same fallback the generated DynamicStatesToString
// carries.
func FormatFlags(f *Flags, stringer func(string) string) string {
	var b strings.Builder
	for value := 1; value < f.set.Count(); value++ {
		if !f.Test(value) {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("|")
		}
		b.WriteString(f.set.DisplayName(value, stringer))
	}
	if b.Len() == 0 {
		return f.set.DisplayName(f.set.Count(), stringer)
	}
	return b.String()
}
