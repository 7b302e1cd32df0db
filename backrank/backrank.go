// Package backrank derives the starting piece arrangement of the back
// rank. Arrangements are numbered 0 through 959 using the standard
// Chess960 enumeration, in which number 518 is the classic chess
// start.
package backrank

import (
	"errors"
	"fmt"

	"lukechampine.com/frand"

	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/square"
)

// ErrOutOfRange is returned for arrangement numbers outside 0..959.
var ErrOutOfRange = errors.New("back rank id out of range")

// Count is the number of distinct legal back ranks.
const Count = 960

// StandardId numbers the classic RNBQKBNR arrangement.
const StandardId = 518

// BackRank is a starting arrangement of the eight back-rank pieces,
// indexed by file.
type BackRank [8]material.Piece

// knightPairs enumerates the ten placements of two knights on five
// remaining free files, in Chess960 order.
var knightPairs = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// table holds all 960 arrangements, derived once at init.
var table [Count]BackRank

func init() {
	for id := range table {
		table[id] = derive(id)
	}
}

// New returns arrangement number id.
func New(id uint16) (BackRank, error) {
	if id >= Count {
		return BackRank{}, fmt.Errorf("%w: %d", ErrOutOfRange, id)
	}
	return table[id], nil
}

func derive(id int) BackRank {
	var br BackRank
	occupied := [8]bool{}
	place := func(file int, p material.Piece) {
		br[file] = p
		occupied[file] = true
	}
	// nth free file, counting from file a
	free := func(n int) int {
		for f := 0; f < 8; f++ {
			if occupied[f] {
				continue
			}
			if n == 0 {
				return f
			}
			n--
		}
		panic("no free file")
	}

	n := id
	place(2*(n%4)+1, material.Bishop)
	n /= 4
	place(2*(n%4), material.Bishop)
	n /= 4
	place(free(n%6), material.Queen)
	n /= 6
	pair := knightPairs[n]
	// place the higher index first so the lower one still counts the
	// same free files
	place(free(pair[1]), material.Knight)
	place(free(pair[0]), material.Knight)
	place(free(0), material.Rook)
	place(free(0), material.King)
	place(free(0), material.Rook)
	return br
}

// Standard returns the classic chess arrangement.
func Standard() BackRank {
	br, err := New(StandardId)
	if err != nil {
		panic(err)
	}
	return br
}

// Shuffled draws a uniformly random arrangement.
func Shuffled() BackRank {
	br, err := New(uint16(frand.Intn(Count)))
	if err != nil {
		panic(err)
	}
	return br
}

// At returns the piece starting on the given file.
func (br BackRank) At(f square.File) material.Piece {
	return br[f]
}

// KingFile returns the file the king starts on.
func (br BackRank) KingFile() square.File {
	for f := square.FileA; f <= square.FileH; f++ {
		if br[f] == material.King {
			return f
		}
	}
	panic("back rank without king")
}

// RookFiles returns the starting files of the queenside and kingside
// rooks, in that order.
func (br BackRank) RookFiles() (queenside, kingside square.File) {
	found := false
	for f := square.FileA; f <= square.FileH; f++ {
		if br[f] != material.Rook {
			continue
		}
		if !found {
			queenside = f
			found = true
		} else {
			kingside = f
		}
	}
	return queenside, kingside
}

// Validate checks the structural rules: one king between two rooks,
// two bishops on opposite square colors, two knights, one queen.
func (br BackRank) Validate() error {
	var counts [6]int
	for _, p := range br {
		counts[p]++
	}
	if counts[material.King] != 1 || counts[material.Rook] != 2 ||
		counts[material.Bishop] != 2 || counts[material.Knight] != 2 ||
		counts[material.Queen] != 1 || counts[material.Pawn] != 0 {
		return fmt.Errorf("bad piece multiset in back rank %v", br)
	}
	kf := br.KingFile()
	qr, kr := br.RookFiles()
	if !(qr < kf && kf < kr) {
		return fmt.Errorf("king on %v not between rooks %v and %v", kf, qr, kr)
	}
	parity := -1
	for f := square.FileA; f <= square.FileH; f++ {
		if br[f] != material.Bishop {
			continue
		}
		if parity == -1 {
			parity = int(f) % 2
		} else if int(f)%2 == parity {
			return fmt.Errorf("bishops on same square color in back rank %v", br)
		}
	}
	return nil
}

// String renders the arrangement as eight uppercase letters, file a
// first, e.g. "RNBQKBNR".
func (br BackRank) String() string {
	var out [8]byte
	for f, p := range br {
		out[f] = p.Letter(material.White)
	}
	return string(out[:])
}
