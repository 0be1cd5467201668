package dkg

import "github.com/kobigurk/aggregatable-dkg/curve"

// Dealer is a node's private dealing state: its participant-signature
// secret, the running sum of decrypted seats from accepted transcripts, and
// its own roster entry.
type Dealer struct {
	PrivateKeySig     *curve.Scalar
	AccumulatedSecret *curve.G2
	Participant       *Participant
}

func NewDealer(privateKeySig *curve.Scalar, participant *Participant) *Dealer {
	return &Dealer{
		PrivateKeySig:     privateKeySig,
		AccumulatedSecret: curve.NewG2(),
		Participant:       participant,
	}
}
