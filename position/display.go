package position

import (
	"fmt"
	"strings"

	"github.com/blunderdome/chesskit/square"
)

// String renders the board as text, rank 8 first, uppercase for white.
func (p Position) String() string {
	var b strings.Builder
	for r := square.Rank8; ; r-- {
		fmt.Fprintf(&b, "%v  ", r)
		for f := square.FileA; f <= square.FileH; f++ {
			m := p.At(square.New(f, r))
			if m.IsEmpty() {
				b.WriteByte('.')
			} else {
				b.WriteByte(m.Piece().Letter(m.Color()))
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
		if r == square.Rank1 {
			break
		}
	}
	b.WriteString("   a b c d e f g h\n")
	fmt.Fprintf(&b, "%v to move (move %d)", p.Turn(), p.MoveNumber())
	if target, ok := p.EnPassant(); ok {
		fmt.Fprintf(&b, ", en passant %v", target)
	}
	return b.String()
}
