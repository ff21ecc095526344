package layout

import (
	"math/rand"

	"github.com/san-kum/filmdash/internal/catalog"
)

// Token identifies one animation run.
type Token uint64

// Animator drives a Layout one frame at a time. Each Start hands out a new
// token and discards the previous arena; Frame only advances the layout
// when called with the current token.
type Animator struct {
	params Params
	rng    *rand.Rand
	token  Token
	active bool
	hitCap bool
	layout *Layout
}

func NewAnimator(p Params, rng *rand.Rand) *Animator {
	return &Animator{params: p, rng: rng}
}

// Start builds a fresh layout for films and returns its token.
func (a *Animator) Start(films []catalog.Film, bounds Bounds) Token {
	a.token++
	a.layout = New(films, bounds, a.params, a.rng)
	a.active = !a.layout.Settled()
	a.hitCap = false
	return a.token
}

// Frame advances the layout by one step if token is current. It returns
// true when the caller should schedule another frame.
func (a *Animator) Frame(token Token) bool {
	if !a.active || token != a.token || a.layout == nil {
		return false
	}
	if a.layout.Iterations() >= a.params.MaxIterations {
		a.active = false
		a.hitCap = true
		return false
	}
	more := a.layout.Step()
	if !more {
		a.active = false
	}
	return more
}

// Cancel invalidates the current token and drops the arena.
func (a *Animator) Cancel() {
	a.token++
	a.active = false
	a.layout = nil
}

// Layout is the current arena, or nil after Cancel.
func (a *Animator) Layout() *Layout { return a.layout }
func (a *Animator) Params() Params  { return a.params }

func (a *Animator) Token() Token  { return a.token }
func (a *Animator) Running() bool { return a.active }

// HitCap reports whether the last run stopped at the iteration cap.
func (a *Animator) HitCap() bool { return a.hitCap }
