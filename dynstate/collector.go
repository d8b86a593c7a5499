package dynstate

// Collector accumulates VkDynamicState enumerants in the order the registry
// declares them. Alias enumerants are dropped so each state is numbered
// once.
type Collector struct {
	names []string
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add records one enumerant. Aliases are dropped.
func (c *Collector) Add(name string, isAlias bool) {
	if isAlias {
		return
	}
	c.names = append(c.names, name)
}

// Finalize numbers the collected states from 1 and returns the set.
func (c *Collector) Finalize() *Set {
	set := &Set{
		states:     make([]State, len(c.names)),
		byOriginal: make(map[string]int, len(c.names)),
	}
	for i, name := range c.names {
		set.states[i] = State{
			Original: name,
			Local:    deriveLocal(name),
			Value:    i + 1,
		}
		set.byOriginal[name] = i
	}
	return set
}
