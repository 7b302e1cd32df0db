package move

import (
	"github.com/samber/lo"

	"github.com/blunderdome/chesskit/square"
)

// Set indexes moves by destination square, mirroring how a client
// highlights the squares a selected piece can reach. At most one move
// is kept per destination; a promoting entry stands in for all four
// promotion choices.
type Set[T any] struct {
	destinations square.Mask
	moves        map[square.Square]T
}

// Insert adds a move at the given destination, replacing any previous
// entry there.
func (s *Set[T]) Insert(dest square.Square, mv T) {
	if s.moves == nil {
		s.moves = make(map[square.Square]T)
	}
	s.destinations = s.destinations.With(dest)
	s.moves[dest] = mv
}

// Destinations returns the mask of reachable destination squares.
func (s *Set[T]) Destinations() square.Mask {
	return s.destinations
}

// Contains reports whether some move reaches dest.
func (s *Set[T]) Contains(dest square.Square) bool {
	return s.destinations.Has(dest)
}

// Get returns the move reaching dest, if any.
func (s *Set[T]) Get(dest square.Square) (T, bool) {
	mv, ok := s.moves[dest]
	return mv, ok
}

// Len returns the number of destinations.
func (s *Set[T]) Len() int {
	return s.destinations.Count()
}

// Values lists the moves in destination board order.
func (s *Set[T]) Values() []T {
	return lo.Map(s.destinations.Squares(), func(dest square.Square, _ int) T {
		return s.moves[dest]
	})
}

// Merge folds the other set into this one. Entries in other win on
// destination collisions.
func (s *Set[T]) Merge(other *Set[T]) {
	for dest, mv := range other.moves {
		s.Insert(dest, mv)
	}
}
