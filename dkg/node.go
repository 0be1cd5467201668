package dkg

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/kobigurk/aggregatable-dkg/curve"
	"github.com/kobigurk/aggregatable-dkg/sign/scheme"
)

// Node is the dealing/participating role: it wraps an Aggregator (so a node
// both deals its own share and verifies/aggregates everyone else's) and
// holds this participant's dealer state.
type Node[SPOKSig, SSIGSig any] struct {
	Aggregator *Aggregator[SPOKSig, SSIGSig]
	Dealer     *Dealer
}

func NewNode[SPOKSig, SSIGSig any](aggregator *Aggregator[SPOKSig, SSIGSig], dealer *Dealer) *Node[SPOKSig, SSIGSig] {
	return &Node[SPOKSig, SSIGSig]{Aggregator: aggregator, Dealer: dealer}
}

// Share deals this node's contribution: sample the degree-t polynomial, FFT-evaluate it over the
// roster-sized domain, commit and encrypt every participant's evaluation,
// and sign the constant-term commitment under both the PoK and participant
// signature schemes.
func (n *Node[SPOKSig, SSIGSig]) Share(rng scheme.Reader) (*DKGShare[SPOKSig, SSIGSig], error) {
	config := n.Aggregator.Config
	participants := n.Aggregator.Participants

	secrets, pvssShare, err := NewPVSSShare(rng, config, participants, n.Dealer.Participant.ID)
	if err != nil {
		return nil, err
	}

	ci := curve.NewG1().ScalarMul(secrets.F0, config.SRS.GG1)
	message := messageFromCI(ci)

	pokSK, _, err := n.Aggregator.SchemePoK.FromSecret(secrets.F0)
	if err != nil {
		return nil, err
	}
	ciPoK, err := n.Aggregator.SchemePoK.Sign(rng, pokSK, message)
	if err != nil {
		return nil, err
	}

	sigSK, _, err := n.Aggregator.SchemeSig.FromSecret(n.Dealer.PrivateKeySig)
	if err != nil {
		return nil, err
	}
	signatureOnCI, err := n.Aggregator.SchemeSig.Sign(rng, sigSK, message)
	if err != nil {
		return nil, err
	}

	n.Dealer.Participant.State = StateDealerShared
	log.Debug("share dealt", "participant_id", n.Dealer.Participant.ID, "degree", config.Degree, "num_participants", len(participants))

	return &DKGShare[SPOKSig, SSIGSig]{
		ParticipantID: n.Dealer.Participant.ID,
		CI:            ci,
		PVSSShare:     pvssShare,
		CIPoK:         ciPoK,
		SignatureOnCI: signatureOnCI,
	}, nil
}

// ReceiveShareAndDecrypt attempts to verify and fold share into the
// aggregator; on success it decrypts this node's seat and marks the sender
// Verified. Verification failures are swallowed rather than surfaced:
// callers detect rejection only by observing that AccumulatedSecret and
// participant state are unchanged.
func (n *Node[SPOKSig, SSIGSig]) ReceiveShareAndDecrypt(rng scheme.Reader, share *DKGShare[SPOKSig, SSIGSig]) error {
	if err := n.Aggregator.ReceiveShare(rng, share); err != nil {
		log.Debug("share silently dropped", "participant_id", share.ParticipantID, "err", err)
		return nil
	}
	myID := n.Dealer.Participant.ID
	invSK := curve.NewScalar().Inverse(n.Dealer.PrivateKeySig)
	contribution := curve.NewG2().ScalarMul(invSK, share.PVSSShare.YI[myID])
	n.Dealer.AccumulatedSecret = curve.NewG2().Add(n.Dealer.AccumulatedSecret, contribution)
	if participant, ok := n.Aggregator.Participants[share.ParticipantID]; ok {
		participant.State = StateVerified
	}
	log.Debug("share decrypted", "my_id", myID, "dealer_id", share.ParticipantID)
	return nil
}

// ReceiveTranscriptAndDecrypt is the bulk counterpart: it does NOT swallow
// errors, and on success marks every contributor Verified.
func (n *Node[SPOKSig, SSIGSig]) ReceiveTranscriptAndDecrypt(rng scheme.Reader, transcript *Transcript[SPOKSig, SSIGSig]) error {
	if err := n.Aggregator.ReceiveTranscript(rng, transcript); err != nil {
		log.Warn("transcript decrypt aborted", "my_id", n.Dealer.Participant.ID, "err", err)
		return err
	}
	myID := n.Dealer.Participant.ID
	invSK := curve.NewScalar().Inverse(n.Dealer.PrivateKeySig)
	contribution := curve.NewG2().ScalarMul(invSK, transcript.PVSSShare.YI[myID])
	n.Dealer.AccumulatedSecret = curve.NewG2().Add(n.Dealer.AccumulatedSecret, contribution)
	for _, id := range transcript.OrderedIDs() {
		if participant, ok := n.Aggregator.Participants[id]; ok {
			participant.State = StateVerified
		}
	}
	log.Debug("transcript decrypted", "my_id", myID, "num_contributions", len(transcript.Contributions))
	return nil
}
