package dkg

import "github.com/kobigurk/aggregatable-dkg/curve"

// State is a participant's local lifecycle view.
type State int

const (
	StateInitial State = iota
	StateDealer
	StateDealerShared
	StateVerified
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateDealer:
		return "dealer"
	case StateDealerShared:
		return "dealer_shared"
	case StateVerified:
		return "verified"
	default:
		return "unknown"
	}
}

// Participant is a roster entry: a stable id (also the FFT evaluation-domain
// index), the participant's signature public key, and this process's local
// view of its lifecycle state.
type Participant struct {
	ID           int
	PublicKeySig *curve.G2
	State        State
}

func (p *Participant) Clone() *Participant {
	c := *p
	return &c
}
