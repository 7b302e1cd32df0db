package movegen

// Perft counts the leaf nodes of the legal move tree to the given
// depth. It exists to validate the generator against published counts.
func Perft(s *MoveState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := s.AllLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, lm := range moves {
		nodes += Perft(s.Child(lm), depth-1)
	}
	return nodes
}
