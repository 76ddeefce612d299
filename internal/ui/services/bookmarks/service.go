package bookmarks

// Service tracks which keyword terms are bookmarked. It is owned by the UI
// update loop and mutated only there, so it carries no locking.
type Service struct {
	state *State
}

// NewService creates an empty bookmark set
func NewService() *Service {
	return &Service{
		state: &State{Terms: make(map[string]bool)},
	}
}

// Toggle flips membership for a term and returns the new membership.
// Toggling twice always returns the set to its prior state.
func (s *Service) Toggle(term string) bool {
	if s.state.Terms[term] {
		delete(s.state.Terms, term)
		return false
	}
	s.state.Terms[term] = true
	return true
}

// Contains reports whether a term is bookmarked
func (s *Service) Contains(term string) bool {
	return s.state.Terms[term]
}

// Count returns the number of bookmarked terms
func (s *Service) Count() int {
	return len(s.state.Terms)
}

// Terms returns the bookmarked terms in no particular order
func (s *Service) Terms() []string {
	terms := make([]string, 0, len(s.state.Terms))
	for term := range s.state.Terms {
		terms = append(terms, term)
	}
	return terms
}
