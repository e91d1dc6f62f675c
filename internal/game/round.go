package game

import (
	"math/rand"

	"github.com/vovakirdan/huematch/internal/core"
)

// Round is one question: a target color and the options shown for it.
type Round struct {
	Target  core.Color
	Options []core.Color
}

// NewRound draws a target and n-1 independent decoys, then shuffles them.
// Decoys are not checked against the target or each other, so a round may
// show the same color twice.
func NewRound(rng *rand.Rand, n int) Round {
	if n < 1 {
		n = 1
	}
	target := core.RandomColor(rng)
	options := make([]core.Color, 0, n)
	options = append(options, target)
	for len(options) < n {
		options = append(options, core.RandomColor(rng))
	}
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return Round{Target: target, Options: options}
}

// Matches reports whether picking c answers the round correctly.
func (r Round) Matches(c core.Color) bool {
	return c == r.Target
}

// TargetIndex returns the first slot holding the target, or -1.
func (r Round) TargetIndex() int {
	for i, c := range r.Options {
		if c == r.Target {
			return i
		}
	}
	return -1
}

// HasDuplicates reports whether two slots show the same color.
func (r Round) HasDuplicates() bool {
	seen := make(map[core.Color]struct{}, len(r.Options))
	for _, c := range r.Options {
		if _, ok := seen[c]; ok {
			return true
		}
		seen[c] = struct{}{}
	}
	return false
}

// Clone returns a copy that does not share the options slice.
func (r Round) Clone() Round {
	out := Round{Target: r.Target}
	if r.Options != nil {
		out.Options = append([]core.Color(nil), r.Options...)
	}
	return out
}
