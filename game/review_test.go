package game

import (
	"testing"

	"github.com/matryer/is"
)

func TestReviewNavigation(t *testing.T) {
	is := is.New(t)
	b := NewEngineBoard(NewGameID())
	play(t, b, "f2f3", "e7e5", "g2g4", "d8h4")
	h := b.History()

	r := NewReview(h)
	is.True(r.AtEnd())
	is.Equal(r.Ply(), 4)
	is.Equal(r.Position().Key(), h.Latest().Key())

	is.True(r.Back())
	is.Equal(r.Ply(), 3)
	is.True(!r.AtEnd())

	r.Start()
	is.Equal(r.Ply(), 0)
	is.True(!r.Back())
	is.Equal(r.Position().Key(), h.Initial().Key())

	for i := 1; i <= 4; i++ {
		is.True(r.Forward())
		is.Equal(r.Ply(), i)
	}
	is.True(r.AtEnd())
	is.True(!r.Forward())

	is.NoErr(r.JumpTo(2))
	is.Equal(r.Ply(), 2)
	is.Equal(r.Position().Key(), h.At(2).Key())
	is.True(r.JumpTo(5) != nil)
	is.True(r.JumpTo(-1) != nil)

	r.End()
	is.True(r.AtEnd())
}

func TestReviewTracksLiveEnd(t *testing.T) {
	is := is.New(t)
	b := NewEngineBoard(NewGameID())
	r := NewReview(b.History())
	is.Equal(r.Ply(), 0)
	play(t, b, "e2e4", "e7e5")
	is.True(r.AtEnd())
	is.Equal(r.Ply(), 2)
	is.Equal(r.Position().Key(), b.Position().Key())
}
