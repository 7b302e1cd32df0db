package position

import (
	"encoding/binary"

	"github.com/cespare/xxhash"

	"github.com/blunderdome/chesskit/material"
)

// Key hashes the repetition-relevant state: piece masks, side to move,
// castling rights and the en-passant target. The clocks are excluded,
// so two positions that differ only in move counts compare equal for
// threefold-repetition purposes.
func (p Position) Key() uint64 {
	var buf [67]byte
	binary.BigEndian.PutUint64(buf[0:], uint64(p.masks.colors.Get(material.White)))
	binary.BigEndian.PutUint64(buf[8:], uint64(p.masks.colors.Get(material.Black)))
	for i, kind := range p.masks.kinds {
		binary.BigEndian.PutUint64(buf[16+8*i:], uint64(kind))
	}
	buf[64] = byte(p.Turn())
	var flags byte
	for _, c := range []material.Color{material.White, material.Black} {
		rights := p.castling.Get(c)
		flags <<= 2
		if rights.short {
			flags |= 1
		}
		if rights.long {
			flags |= 2
		}
	}
	buf[65] = flags
	buf[66] = byte(p.enPassant)
	return xxhash.Sum64(buf[:])
}
