package game

// FlowPhase is one stage of the game flow. Phases execute strictly in this
// order per hand, looping from HandFinished back to Deal until the score
// threshold is reached. Error and Wait are sentinels outside the loop.
type FlowPhase int

const (
	PhaseIntro FlowPhase = iota
	PhaseDealForDealer // deal face up until a Jack picks the first dealer
	PhaseShuffle
	PhaseDeal
	PhaseBidRoundOne
	PhaseOrderTrump // flip card accepted; dealer picks it up
	PhaseDealerDiscard
	PhaseBidRoundTwo
	PhasePassDeal // all passed; deal moves left
	PhasePlayCard
	PhaseTrickFinished
	PhaseHandFinished
	PhaseGameOver
	PhaseError
	PhaseWait
)

func (p FlowPhase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseDealForDealer:
		return "deal-for-dealer"
	case PhaseShuffle:
		return "shuffle"
	case PhaseDeal:
		return "deal"
	case PhaseBidRoundOne:
		return "bid-round-1"
	case PhaseOrderTrump:
		return "order-trump"
	case PhaseDealerDiscard:
		return "dealer-discard"
	case PhaseBidRoundTwo:
		return "bid-round-2"
	case PhasePassDeal:
		return "pass-deal"
	case PhasePlayCard:
		return "play-card"
	case PhaseTrickFinished:
		return "trick-finished"
	case PhaseHandFinished:
		return "hand-finished"
	case PhaseGameOver:
		return "game-over"
	case PhaseError:
		return "error"
	default:
		return "wait"
	}
}

// SubStep splits each flow phase into its compute step and its
// "presentation layer is animating" step.
type SubStep int

const (
	StepCompute SubStep = iota
	StepAnimate
)

func (s SubStep) String() string {
	if s == StepAnimate {
		return "animate"
	}
	return "compute"
}

// BlockReason is why the state machine is currently not advancing.
type BlockReason int

const (
	BlockNone BlockReason = iota
	BlockGeneral
	BlockAnimating
	BlockAwaitUserInput      // human card selection
	BlockAwaitAIInput        // pacing point before an automated move
	BlockAwaitPromptResponse // human bid or discard prompt
	BlockError
	BlockCancelled
)

func (b BlockReason) String() string {
	switch b {
	case BlockNone:
		return "none"
	case BlockGeneral:
		return "general"
	case BlockAnimating:
		return "animating"
	case BlockAwaitUserInput:
		return "await-user-input"
	case BlockAwaitAIInput:
		return "await-ai-input"
	case BlockAwaitPromptResponse:
		return "await-prompt-response"
	case BlockError:
		return "error"
	default:
		return "cancelled"
	}
}

// FlowState is the composite execution gate. A phase's logic runs only
// when the current state exactly matches the phase's expected gate;
// any other entry is a silent no-op, which makes re-entry under reactive
// recomputation harmless.
type FlowState struct {
	Phase FlowPhase
	Step  SubStep
	Block BlockReason
}

// Matches reports whether the state equals the expected gate exactly.
func (s FlowState) Matches(phase FlowPhase, step SubStep, block BlockReason) bool {
	return s == FlowState{Phase: phase, Step: step, Block: block}
}

// Terminal reports whether no further phase logic can run without an
// explicit reset.
func (s FlowState) Terminal() bool {
	return s.Phase == PhaseGameOver || s.Phase == PhaseError || s.Block == BlockCancelled
}

func (s FlowState) String() string {
	return s.Phase.String() + "/" + s.Step.String() + "/" + s.Block.String()
}

// compute returns the entry gate for a phase.
func compute(p FlowPhase) FlowState {
	return FlowState{Phase: p, Step: StepCompute, Block: BlockNone}
}

// animating returns the presentation sub-step of a phase.
func animating(p FlowPhase) FlowState {
	return FlowState{Phase: p, Step: StepAnimate, Block: BlockAnimating}
}

// animates reports whether a phase hands control to the presentation layer
// after its compute step.
func animates(p FlowPhase) bool {
	switch p {
	case PhaseIntro, PhaseDealForDealer, PhaseShuffle, PhaseDeal,
		PhaseOrderTrump, PhasePlayCard, PhaseTrickFinished, PhaseHandFinished:
		return true
	default:
		return false
	}
}
