package clicker

import (
	"math/rand"
	"time"
)

var testNow = time.Unix(1700000000, 0).UTC()

// alwaysSource drives every random roll to its lowest value, so any
// probability above zero hits. neverSource yields 0.5, above every drop
// chance in the content tables.
type alwaysSource struct{}

func (alwaysSource) Int63() int64 { return 0 }
func (alwaysSource) Seed(int64)   {}

type neverSource struct{}

func (neverSource) Int63() int64 { return 1 << 62 }
func (neverSource) Seed(int64)   {}

func alwaysRand() *rand.Rand { return rand.New(alwaysSource{}) }
func neverRand() *rand.Rand  { return rand.New(neverSource{}) }

func stateWith(points float64) GameState {
	s := NewGameState(testNow)
	rs := s.Resources[ResourcePoints]
	rs.Amount = points
	s.Resources[ResourcePoints] = rs
	return s
}
