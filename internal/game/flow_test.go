package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowStateMatchesExactly(t *testing.T) {
	st := compute(PhasePlayCard)
	assert.True(t, st.Matches(PhasePlayCard, StepCompute, BlockNone))

	// Any component mismatch fails the gate.
	assert.False(t, st.Matches(PhasePlayCard, StepCompute, BlockAwaitUserInput))
	assert.False(t, st.Matches(PhasePlayCard, StepAnimate, BlockNone))
	assert.False(t, st.Matches(PhaseTrickFinished, StepCompute, BlockNone))
}

func TestFlowStateTerminal(t *testing.T) {
	assert.False(t, compute(PhaseIntro).Terminal())
	assert.False(t, animating(PhaseDeal).Terminal())
	assert.True(t, compute(PhaseGameOver).Terminal())
	assert.True(t, FlowState{Phase: PhaseError, Block: BlockError}.Terminal())
	assert.True(t, FlowState{Phase: PhaseDeal, Block: BlockCancelled}.Terminal())
}

func TestFlowStateString(t *testing.T) {
	assert.Equal(t, "play-card/compute/none", compute(PhasePlayCard).String())
	assert.Equal(t, "deal/animate/animating", animating(PhaseDeal).String())
}

func TestAnimatingPhases(t *testing.T) {
	assert.True(t, animates(PhaseDeal))
	assert.True(t, animates(PhasePlayCard))
	assert.True(t, animates(PhaseTrickFinished))

	// Pure bookkeeping phases hop straight to the next compute gate.
	assert.False(t, animates(PhaseBidRoundOne))
	assert.False(t, animates(PhaseDealerDiscard))
	assert.False(t, animates(PhasePassDeal))
	assert.False(t, animates(PhaseGameOver))
}
