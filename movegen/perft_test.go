package movegen

import (
	"testing"

	"github.com/matryer/is"
)

func TestPerftStandard(t *testing.T) {
	is := is.New(t)
	s := NewStandardState()
	is.Equal(Perft(s, 0), uint64(1))
	is.Equal(Perft(s, 1), uint64(20))
	is.Equal(Perft(s, 2), uint64(400))
	is.Equal(Perft(s, 3), uint64(8902))
}

func TestPerftChess960(t *testing.T) {
	is := is.New(t)
	s := state960(t, 0, nil)
	is.Equal(Perft(s, 1), uint64(20))
	is.Equal(Perft(s, 2), uint64(400))
}
