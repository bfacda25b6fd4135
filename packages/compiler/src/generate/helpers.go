package generate

// HelperSet is an insertion-ordered set of runtime capability names
type HelperSet struct {
	names []string
	seen  map[string]struct{}
}

// NewHelperSet creates an empty HelperSet
func NewHelperSet() *HelperSet {
	return &HelperSet{seen: make(map[string]struct{})}
}

// Add registers name; adding it again keeps its first position
func (s *HelperSet) Add(name string) {
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
}

// Has reports whether name was added
func (s *HelperSet) Has(name string) bool {
	_, ok := s.seen[name]
	return ok
}

// Len returns the number of distinct names
func (s *HelperSet) Len() int {
	return len(s.names)
}

// Names returns the names in first-use order
func (s *HelperSet) Names() []string {
	return append([]string{}, s.names...)
}
