// Package dynstate models the compact dynamic state enum derived from the
// VkDynamicState registry group: states are retained in declaration order,
// numbered from 1, and addressed through a fixed-width flag set.
package dynstate

// GroupName is the registry enum group the collector consumes.
const GroupName = "VkDynamicState"

// Local names are derived positionally: the first len(vkPrefix) characters
// of the original name are replaced by cbPrefix, whatever they are.
const (
	vkPrefix = "VK_DYNAMIC_"
	cbPrefix = "CB_DYNAMIC_"
)

// Sentinel names used by the generated code.
const (
	// CountName is the closing enumerant, one past the last state.
	CountName = "CB_DYNAMIC_STATE_STATUS_NUM"
	// InvalidName is the original-side marker for values that map to no
	// state.
	InvalidName = "VK_DYNAMIC_STATE_MAX_ENUM"
)

// State is one retained dynamic state: the original registry enumerant, the
// derived local name, and its one-based value in the generated enum.
type State struct {
	Original string
	Local    string
	Value    int
}

// Set is an ordered collection of dynamic states, numbered 1..Len() in
// registry encounter order.
type Set struct {
	states     []State
	byOriginal map[string]int
}

// Len returns the number of retained states.
func (s *Set) Len() int { return len(s.states) }

// Count returns the value of the closing CB_DYNAMIC_STATE_STATUS_NUM
// enumerant, one past the last state. It is also the bit width of Flags.
func (s *Set) Count() int { return len(s.states) + 1 }

// States returns the states in declaration order.
func (s *Set) States() []State { return s.states }

// LocalValue maps an original enumerant name to its generated value.
// Unknown names map to Count(), the out-of-range marker.
func (s *Set) LocalValue(original string) int {
	if i, ok := s.byOriginal[original]; ok {
		return s.states[i].Value
	}
	return s.Count()
}

// OriginalName maps a generated value back to the original enumerant name.
// Out-of-range values map to InvalidName.
func (s *Set) OriginalName(value int) string {
	if value < 1 || value > len(s.states) {
		return InvalidName
	}
	return s.states[value-1].Original
}

// LocalName maps a generated value to its CB_DYNAMIC_* name. Out-of-range
// values map to CountName.
func (s *Set) LocalName(value int) string {
	if value < 1 || value > len(s.states) {
		return CountName
	}
	return s.states[value-1].Local
}

// DisplayName renders the state for value through stringer, which stands in
// for string_VkDynamicState. A nil stringer returns the original name
// unchanged. Out-of-range values render InvalidName.
func (s *Set) DisplayName(value int, stringer func(string) string) string {
	name := s.OriginalName(value)
	if stringer != nil {
		return stringer(name)
	}
	return name
}

// deriveLocal rewrites an original enumerant name to its local form. The
// rewrite is positional, not a prefix match.
func deriveLocal(original string) string {
	n := len(vkPrefix)
	if len(original) < n {
		n = len(original)
	}
	return cbPrefix + original[n:]
}
