// Package layout computes the bubble view: one circle per film, sized on a
// logarithmic box office scale, seeded along a release-year axis, and then
// relaxed by pairwise repulsion until it stops moving.
//
// A [Layout] owns its bubbles. Nothing outside the package holds pointers
// into the arena, and a re-render builds a new Layout instead of patching the
// old one.
//
// Two drivers advance a layout:
//
//   - [Layout.Run] loops synchronously under a context and an iteration cap.
//   - [Animator] advances one step per display frame. Every run gets a token;
//     frames carrying a stale token are dropped, which is how a new render or
//     a view switch cancels an in-flight simulation.
//
// # Example
//
//	l := layout.New(films, layout.Bounds{Width: 1200, Height: 600}, layout.DefaultParams(), rng)
//	res, err := l.Run(ctx, 0)
//
// Layout and Animator are not safe for concurrent use.
package layout
