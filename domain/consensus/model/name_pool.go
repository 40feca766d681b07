package model

// NamePool is the set of names claimed by transactions accepted so far
// into the block in progress. It remembers the order in which names
// were claimed.
type NamePool struct {
	names []string
	index map[string]struct{}
}

// NewNamePool returns an empty NamePool
func NewNamePool() *NamePool {
	return &NamePool{
		names: nil,
		index: make(map[string]struct{}),
	}
}

// Contains returns whether name was claimed in the block in progress
func (np *NamePool) Contains(name string) bool {
	_, ok := np.index[name]
	return ok
}

// Add inserts name into the pool. It returns false if name was
// already in the pool.
func (np *NamePool) Add(name string) bool {
	if np.Contains(name) {
		return false
	}
	np.names = append(np.names, name)
	np.index[name] = struct{}{}
	return true
}

// Names returns the pooled names in the order they were claimed
func (np *NamePool) Names() []string {
	names := make([]string, len(np.names))
	copy(names, np.names)
	return names
}

// Len returns the number of pooled names
func (np *NamePool) Len() int {
	return len(np.names)
}
