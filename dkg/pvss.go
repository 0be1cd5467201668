package dkg

import (
	"github.com/kobigurk/aggregatable-dkg/curve"
	"github.com/kobigurk/aggregatable-dkg/sign/scheme"
)

// PVSSShare is one dealer's publicly verifiable contribution: f_i commits
// the polynomial's non-constant coefficients in G1 (length t, the constant
// term is carried separately as DKGShare.CI), u_i_2 commits the constant
// term under the independent generator u1 for the same-ratio check, a_i
// commits every participant's evaluation in G1, and y_i is that same
// evaluation encrypted under each participant's signature public key.
type PVSSShare struct {
	FI  []*curve.G1 // length t
	UI2 *curve.G2
	AI  []*curve.G1 // length n
	YI  []*curve.G2 // length n
}

// EmptyPVSSShare returns the group identity in every slot, the zero value
// Aggregate folds non-identity contributions into.
func EmptyPVSSShare(degree, numParticipants int) *PVSSShare {
	fi := make([]*curve.G1, degree)
	for i := range fi {
		fi[i] = curve.NewG1()
	}
	ai := make([]*curve.G1, numParticipants)
	yi := make([]*curve.G2, numParticipants)
	for i := range ai {
		ai[i] = curve.NewG1()
		yi[i] = curve.NewG2()
	}
	return &PVSSShare{FI: fi, UI2: curve.NewG2(), AI: ai, YI: yi}
}

// Aggregate returns the pointwise group sum of s and other. Both must have
// matching lengths (same degree and participant count); the caller
// (Transcript.Aggregate) is responsible for checking that beforehand.
func (s *PVSSShare) Aggregate(other *PVSSShare) *PVSSShare {
	fi := make([]*curve.G1, len(s.FI))
	for i := range fi {
		fi[i] = curve.NewG1().Add(s.FI[i], other.FI[i])
	}
	ai := make([]*curve.G1, len(s.AI))
	for i := range ai {
		ai[i] = curve.NewG1().Add(s.AI[i], other.AI[i])
	}
	yi := make([]*curve.G2, len(s.YI))
	for i := range yi {
		yi[i] = curve.NewG2().Add(s.YI[i], other.YI[i])
	}
	return &PVSSShare{
		FI:  fi,
		UI2: curve.NewG2().Add(s.UI2, other.UI2),
		AI:  ai,
		YI:  yi,
	}
}

// ShareSecrets are the dealer-only values a PVSS share is built from: they
// never leave the dealer and are discarded once Node.Share returns.
type ShareSecrets struct {
	F0       *curve.Scalar
	MySecret *curve.G2
}

// NewPVSSShare samples the dealer's degree-t polynomial, evaluates it over
// the roster-sized radix-2 domain and builds the public share: committed
// coefficients, the u1 commitment to the constant term, committed
// evaluations, and per-participant encrypted evaluations. The returned
// secrets carry the constant term f_0 (still needed to sign the commitment)
// and the dealer's own seat h*y_eval[dealerID].
func NewPVSSShare(
	rng scheme.Reader,
	config *Config,
	participants map[int]*Participant,
	dealerID int,
) (*ShareSecrets, *PVSSShare, error) {
	degree := config.Degree
	numParticipants := len(participants)

	domain, err := curve.NewDomain(numParticipants)
	if err != nil {
		return nil, nil, ErrBadEvaluationDomain
	}

	f := make([]*curve.Scalar, degree+1)
	for i := range f {
		s, err := curve.RandomScalar(rng)
		if err != nil {
			return nil, nil, newIOError(err)
		}
		f[i] = s
	}

	// Domain.FFT copies its input before transforming, so f itself is never
	// mutated and f[1..] stays usable as the committed coefficients below.
	padded := make([]*curve.Scalar, numParticipants)
	for i := range padded {
		if i < len(f) {
			padded[i] = f[i]
		} else {
			padded[i] = curve.NewScalar()
		}
	}
	yEval := domain.FFT(padded)

	fiPub := make([]*curve.G1, degree)
	for i := 0; i < degree; i++ {
		fiPub[i] = curve.NewG1().ScalarMul(f[i+1], config.SRS.GG1)
	}
	ui2 := curve.NewG2().ScalarMul(f[0], config.U1)

	ai := make([]*curve.G1, numParticipants)
	yi := make([]*curve.G2, numParticipants)
	for j := 0; j < numParticipants; j++ {
		ai[j] = curve.NewG1().ScalarMul(yEval[j], config.SRS.GG1)
		participant, ok := participants[j]
		if !ok {
			return nil, nil, newInvalidParticipantID(j)
		}
		yi[j] = curve.NewG2().ScalarMul(yEval[j], participant.PublicKeySig)
	}

	secrets := &ShareSecrets{
		F0:       f[0],
		MySecret: curve.NewG2().ScalarMul(yEval[dealerID], config.SRS.HG2),
	}
	share := &PVSSShare{FI: fiPub, UI2: ui2, AI: ai, YI: yi}
	return secrets, share, nil
}
