package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/huematch/internal/core"
)

func TestNewRoundContainsTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		r := NewRound(rng, 3)
		require.Len(t, r.Options, 3)
		require.Contains(t, r.Options, r.Target)
		require.True(t, r.Matches(r.Options[r.TargetIndex()]))
	}
}

func TestNewRoundShufflesTargetPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	positions := make(map[int]int)
	for i := 0; i < 300; i++ {
		positions[NewRound(rng, 3).TargetIndex()]++
	}
	// Every slot should hold the target at least sometimes
	for slot := 0; slot < 3; slot++ {
		assert.Greater(t, positions[slot], 0, "slot %d never held the target", slot)
	}
}

func TestNewRoundOptionCount(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	tests := []struct {
		n    int
		want int
	}{
		{n: 1, want: 1},
		{n: 3, want: 3},
		{n: 9, want: 9},
		{n: 0, want: 1},
	}
	for _, tc := range tests {
		r := NewRound(rng, tc.n)
		assert.Len(t, r.Options, tc.want, "NewRound(%d)", tc.n)
	}
}

func TestRoundDuplicates(t *testing.T) {
	red := core.RGB(255, 0, 0)
	blue := core.RGB(0, 0, 255)

	unique := Round{Target: red, Options: []core.Color{blue, red, core.RGB(0, 255, 0)}}
	assert.False(t, unique.HasDuplicates())

	// A decoy equal to the target is kept as drawn; either slot counts as correct
	dup := Round{Target: red, Options: []core.Color{red, blue, red}}
	assert.True(t, dup.HasDuplicates())
	assert.Equal(t, 0, dup.TargetIndex())
	assert.True(t, dup.Matches(dup.Options[2]))
	assert.False(t, dup.Matches(blue))
}

func TestRoundClone(t *testing.T) {
	r := Round{Target: core.RGB(1, 2, 3), Options: []core.Color{core.RGB(1, 2, 3)}}
	c := r.Clone()
	c.Options[0] = core.RGB(9, 9, 9)
	assert.Equal(t, core.RGB(1, 2, 3), r.Options[0])

	assert.Equal(t, -1, Round{}.TargetIndex())
}
