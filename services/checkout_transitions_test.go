package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StateUninitialized, StateReady, true},
		{StateReady, StatePresenting, true},
		{StatePresenting, StateSucceeded, true},
		{StatePresenting, StateFailed, true},
		{StateFailed, StateReady, true},

		{StateUninitialized, StatePresenting, false},
		{StateReady, StateSucceeded, false},
		{StateSucceeded, StateReady, false},
		{StateSucceeded, StateFailed, false},
		{StateFailed, StatePresenting, false},
		{"bogus", StateReady, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StateSucceeded))
	assert.False(t, IsTerminal(StateFailed))
	assert.False(t, IsTerminal(StateReady))
}

func TestSelectionsKeyCanonicalizes(t *testing.T) {
	assert.Equal(t, "", selectionsKey(nil))
	assert.Equal(t, "3", selectionsKey([]uint{3}))
	assert.Equal(t, "1,2,7", selectionsKey([]uint{7, 1, 2}))
	assert.Equal(t, selectionsKey([]uint{2, 1}), selectionsKey([]uint{1, 2}))
}
