package dkg

import (
	"sort"

	"github.com/kobigurk/aggregatable-dkg/curve"
)

// messageFromCI is the canonical message every PoK and participant
// signature over c_i signs: its canonical compressed affine encoding.
func messageFromCI(ci *curve.G1) []byte {
	return ci.Bytes()
}

// DKGShare is the wire message one dealer sends: its commitment c_i, the
// PVSS share built around it, a proof of knowledge of c_i's discrete log,
// and this participant's signature over the same commitment. SPOKSig and
// SSIGSig are the PoK and participant-signature schemes' signature types
// respectively; the DKG is written once and instantiated at either BLS or
// Schnorr for each role independently.
type DKGShare[SPOKSig, SSIGSig any] struct {
	ParticipantID int
	CI            *curve.G1
	PVSSShare     *PVSSShare
	CIPoK         SPOKSig
	SignatureOnCI SSIGSig
}

// TranscriptParticipant is one roster entry's accepted contribution as
// folded into a transcript, carrying a weight that counts validated
// duplicate submissions of the same c_i.
type TranscriptParticipant[SPOKSig, SSIGSig any] struct {
	CI            *curve.G1
	Weight        uint64
	CIPoK         SPOKSig
	SignatureOnCI SSIGSig
}

// Transcript is the aggregator's running view: per-participant weighted
// contributions plus the pointwise-summed PVSS share they produced
// together.
type Transcript[SPOKSig, SSIGSig any] struct {
	Degree          int
	NumParticipants int
	Contributions   map[int]*TranscriptParticipant[SPOKSig, SSIGSig]
	PVSSShare       *PVSSShare
}

func EmptyTranscript[SPOKSig, SSIGSig any](degree, numParticipants int) *Transcript[SPOKSig, SSIGSig] {
	return &Transcript[SPOKSig, SSIGSig]{
		Degree:          degree,
		NumParticipants: numParticipants,
		Contributions:   map[int]*TranscriptParticipant[SPOKSig, SSIGSig]{},
		PVSSShare:       EmptyPVSSShare(degree, numParticipants),
	}
}

// OrderedIDs returns the transcript's contributing participant ids in
// ascending order: contributions are semantically a map but every
// iteration, including wire encoding, MUST walk them in this order.
func (t *Transcript[SPOKSig, SSIGSig]) OrderedIDs() []int {
	ids := make([]int, 0, len(t.Contributions))
	for id := range t.Contributions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Aggregate combines t and other into a fresh transcript: contributions
// present in both must agree on c_i (else ErrTranscriptDifferentCommitments)
// and have their weights summed; contributions present in only one pass
// through unchanged; the PVSS shares are summed pointwise.
func (t *Transcript[SPOKSig, SSIGSig]) Aggregate(other *Transcript[SPOKSig, SSIGSig]) (*Transcript[SPOKSig, SSIGSig], error) {
	if t.Degree != other.Degree || t.NumParticipants != other.NumParticipants {
		return nil, newTranscriptDifferentConfig(t.Degree, other.Degree, t.NumParticipants, other.NumParticipants)
	}
	contributions := make(map[int]*TranscriptParticipant[SPOKSig, SSIGSig], len(t.Contributions)+len(other.Contributions))
	for i := 0; i < t.NumParticipants; i++ {
		a, aok := t.Contributions[i]
		b, bok := other.Contributions[i]
		switch {
		case aok && bok:
			if !a.CI.Equal(b.CI) {
				return nil, ErrTranscriptCommitmentMismatch
			}
			contributions[i] = &TranscriptParticipant[SPOKSig, SSIGSig]{
				CI:            a.CI,
				Weight:        a.Weight + b.Weight,
				CIPoK:         a.CIPoK,
				SignatureOnCI: a.SignatureOnCI,
			}
		case aok:
			contributions[i] = a
		case bok:
			contributions[i] = b
		}
	}
	return &Transcript[SPOKSig, SSIGSig]{
		Degree:          t.Degree,
		NumParticipants: t.NumParticipants,
		Contributions:   contributions,
		PVSSShare:       t.PVSSShare.Aggregate(other.PVSSShare),
	}, nil
}
