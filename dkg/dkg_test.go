package dkg_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kobigurk/aggregatable-dkg/curve"
	"github.com/kobigurk/aggregatable-dkg/dkg"
	"github.com/kobigurk/aggregatable-dkg/sign/bls"
	"github.com/kobigurk/aggregatable-dkg/sign/schnorr"
)

// roster builds n participants under the BLS participant-signature scheme,
// a shared Config of the given degree, and an Aggregator+Node per
// participant, all sharing the same roster and config.
func roster(t *testing.T, n, degree int) (*dkg.Config, []*dkg.Node[*curve.G2, *curve.G1]) {
	t.Helper()
	srs, err := dkg.SetupSRS(rand.Reader)
	require.NoError(t, err)
	u1, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	config := &dkg.Config{SRS: srs, U1: curve.NewG2().ScalarMul(u1, curve.G2Base()), Degree: degree}

	sigScheme := bls.NewSchemeG1Sig(config.SRS.HG2)
	pokScheme := bls.NewSchemeG2Sig(config.SRS.GG1)

	participants := make(map[int]*dkg.Participant, n)
	secrets := make([]*curve.Scalar, n)
	for i := 0; i < n; i++ {
		sk, pk, err := sigScheme.GenerateKeypair(rand.Reader)
		require.NoError(t, err)
		secrets[i] = sk
		participants[i] = &dkg.Participant{ID: i, PublicKeySig: pk, State: dkg.StateDealer}
	}

	nodes := make([]*dkg.Node[*curve.G2, *curve.G1], n)
	for i := 0; i < n; i++ {
		aggregator := dkg.NewAggregator[*curve.G2, *curve.G1](config, pokScheme, sigScheme, participants)
		nodes[i] = dkg.NewNode(aggregator, dkg.NewDealer(secrets[i], participants[i]))
	}
	return config, nodes
}

func TestSingleNodeHappyPath(t *testing.T) {
	_, nodes := roster(t, 1, 0)
	node := nodes[0]

	share, err := node.Share(rand.Reader)
	require.NoError(t, err)
	require.Equal(t, dkg.StateDealerShared, node.Dealer.Participant.State)

	require.NoError(t, node.Aggregator.ReceiveShare(rand.Reader, share))
	require.Len(t, node.Aggregator.Transcript.Contributions, 1)
	require.EqualValues(t, 1, node.Aggregator.Transcript.Contributions[0].Weight)

	require.NoError(t, node.ReceiveTranscriptAndDecrypt(rand.Reader, node.Aggregator.Transcript))
	require.Equal(t, dkg.StateVerified, node.Aggregator.Participants[0].State)
	require.False(t, node.Dealer.AccumulatedSecret.IsIdentity())
}

func TestFourNodeHappyPathBLS(t *testing.T) {
	_, nodes := roster(t, 4, 2)

	shares := make([]*dkg.DKGShare[*curve.G2, *curve.G1], len(nodes))
	for i, node := range nodes {
		share, err := node.Share(rand.Reader)
		require.NoError(t, err)
		shares[i] = share
	}

	for _, node := range nodes {
		for _, share := range shares {
			require.NoError(t, node.Aggregator.ReceiveShare(rand.Reader, share))
		}
	}

	for i := 1; i < len(nodes); i++ {
		require.Equal(t, nodes[0].Aggregator.Transcript.OrderedIDs(), nodes[i].Aggregator.Transcript.OrderedIDs())
		for _, id := range nodes[0].Aggregator.Transcript.OrderedIDs() {
			a := nodes[0].Aggregator.Transcript.Contributions[id]
			b := nodes[i].Aggregator.Transcript.Contributions[id]
			require.True(t, a.CI.Equal(b.CI))
			require.Equal(t, a.Weight, b.Weight)
		}
	}

	for _, node := range nodes {
		require.NoError(t, node.ReceiveTranscriptAndDecrypt(rand.Reader, node.Aggregator.Transcript))
	}
	for i := 1; i < len(nodes); i++ {
		require.True(t, nodes[0].Dealer.AccumulatedSecret.Equal(nodes[i].Dealer.AccumulatedSecret))
	}
}

func TestDuplicateWeightAccounting(t *testing.T) {
	_, nodes := roster(t, 4, 2)
	aggregatorNode := nodes[0]

	shares := make([]*dkg.DKGShare[*curve.G2, *curve.G1], len(nodes))
	for i, node := range nodes {
		share, err := node.Share(rand.Reader)
		require.NoError(t, err)
		shares[i] = share
	}

	// Node 0's share submitted twice.
	require.NoError(t, aggregatorNode.Aggregator.ReceiveShare(rand.Reader, shares[0]))
	require.NoError(t, aggregatorNode.Aggregator.ReceiveShare(rand.Reader, shares[0]))

	// Node 1's c_i is replaced with a uniformly random G1 point.
	tampered := *shares[1]
	randomScalar, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	tampered.CI = curve.NewG1().ScalarMul(randomScalar, curve.G1Base())
	require.Error(t, aggregatorNode.Aggregator.ReceiveShare(rand.Reader, &tampered))

	require.NoError(t, aggregatorNode.Aggregator.ReceiveShare(rand.Reader, shares[2]))
	require.NoError(t, aggregatorNode.Aggregator.ReceiveShare(rand.Reader, shares[3]))

	transcript := aggregatorNode.Aggregator.Transcript
	require.EqualValues(t, 2, transcript.Contributions[0].Weight)
	require.Nil(t, transcript.Contributions[1])
	require.EqualValues(t, 1, transcript.Contributions[2].Weight)
	require.EqualValues(t, 1, transcript.Contributions[3].Weight)
}

func TestShareVerifyRejectsTamperedSignature(t *testing.T) {
	_, nodes := roster(t, 4, 2)
	share, err := nodes[0].Share(rand.Reader)
	require.NoError(t, err)

	tampered := *share
	tampered.SignatureOnCI = curve.NewG1().Add(share.SignatureOnCI, curve.G1Base())
	require.Error(t, nodes[1].Aggregator.ShareVerify(rand.Reader, &tampered))
}

func TestShareVerifyRejectsTamperedEncryptedEvaluation(t *testing.T) {
	_, nodes := roster(t, 4, 2)
	share, err := nodes[0].Share(rand.Reader)
	require.NoError(t, err)

	tampered := *share
	yi := make([]*curve.G2, len(share.PVSSShare.YI))
	copy(yi, share.PVSSShare.YI)
	yi[3] = curve.NewG2().Add(yi[3], curve.G2Base())
	tampered.PVSSShare = &dkg.PVSSShare{
		FI:  share.PVSSShare.FI,
		UI2: share.PVSSShare.UI2,
		AI:  share.PVSSShare.AI,
		YI:  yi,
	}
	require.Error(t, nodes[1].Aggregator.ShareVerify(rand.Reader, &tampered))
}

func TestShareVerifyRejectsUnknownParticipant(t *testing.T) {
	_, nodes := roster(t, 4, 2)
	share, err := nodes[0].Share(rand.Reader)
	require.NoError(t, err)
	share.ParticipantID = 99
	require.Error(t, nodes[1].Aggregator.ShareVerify(rand.Reader, share))
}

func TestDegreeZeroConstantPolynomial(t *testing.T) {
	_, nodes := roster(t, 4, 0)
	share, err := nodes[0].Share(rand.Reader)
	require.NoError(t, err)
	require.Empty(t, share.PVSSShare.FI)
	require.NoError(t, nodes[1].Aggregator.ShareVerify(rand.Reader, share))
}

func TestNonPowerOfTwoParticipantsRejected(t *testing.T) {
	_, nodes := roster(t, 3, 1)
	_, err := nodes[0].Share(rand.Reader)
	require.ErrorIs(t, err, dkg.ErrBadEvaluationDomain)
}

func TestReceiveShareAndDecryptSilentlyDropsBadShare(t *testing.T) {
	_, nodes := roster(t, 4, 2)
	node := nodes[1]

	share, err := nodes[0].Share(rand.Reader)
	require.NoError(t, err)
	tampered := *share
	tampered.SignatureOnCI = curve.NewG1().Add(share.SignatureOnCI, curve.G1Base())

	secretBefore := node.Dealer.AccumulatedSecret.Clone()
	stateBefore := node.Aggregator.Participants[0].State

	err = node.ReceiveShareAndDecrypt(rand.Reader, &tampered)
	require.NoError(t, err, "ReceiveShareAndDecrypt swallows verification failures by design")
	require.True(t, node.Dealer.AccumulatedSecret.Equal(secretBefore))
	require.Equal(t, stateBefore, node.Aggregator.Participants[0].State)
}

// rosterSchnorr is roster's counterpart with Schnorr in both the PoK and
// participant-signature roles.
func rosterSchnorr(t *testing.T, n, degree int) []*dkg.Node[*schnorr.Signature[*curve.G1], *schnorr.Signature[*curve.G2]] {
	t.Helper()
	srs, err := dkg.SetupSRS(rand.Reader)
	require.NoError(t, err)
	u1, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	config := &dkg.Config{SRS: srs, U1: curve.NewG2().ScalarMul(u1, curve.G2Base()), Degree: degree}

	sigScheme := schnorr.NewScheme[*curve.G2](config.SRS.HG2, curve.NewG2)
	pokScheme := schnorr.NewScheme[*curve.G1](config.SRS.GG1, curve.NewG1)

	participants := make(map[int]*dkg.Participant, n)
	secrets := make([]*curve.Scalar, n)
	for i := 0; i < n; i++ {
		sk, pk, err := sigScheme.GenerateKeypair(rand.Reader)
		require.NoError(t, err)
		secrets[i] = sk
		participants[i] = &dkg.Participant{ID: i, PublicKeySig: pk, State: dkg.StateDealer}
	}

	nodes := make([]*dkg.Node[*schnorr.Signature[*curve.G1], *schnorr.Signature[*curve.G2]], n)
	for i := 0; i < n; i++ {
		aggregator := dkg.NewAggregator[*schnorr.Signature[*curve.G1], *schnorr.Signature[*curve.G2]](
			config, pokScheme, sigScheme, participants,
		)
		nodes[i] = dkg.NewNode(aggregator, dkg.NewDealer(secrets[i], participants[i]))
	}
	return nodes
}

func TestFourNodeHappyPathSchnorr(t *testing.T) {
	nodes := rosterSchnorr(t, 4, 2)

	shares := make([]*dkg.DKGShare[*schnorr.Signature[*curve.G1], *schnorr.Signature[*curve.G2]], len(nodes))
	for i, node := range nodes {
		share, err := node.Share(rand.Reader)
		require.NoError(t, err)
		shares[i] = share
	}

	for _, node := range nodes {
		for _, share := range shares {
			require.NoError(t, node.Aggregator.ReceiveShare(rand.Reader, share))
		}
	}

	for _, node := range nodes {
		require.NoError(t, node.ReceiveTranscriptAndDecrypt(rand.Reader, node.Aggregator.Transcript))
	}
	for i := 1; i < len(nodes); i++ {
		require.True(t, nodes[0].Dealer.AccumulatedSecret.Equal(nodes[i].Dealer.AccumulatedSecret))
	}
}

func TestNewPVSSShareSecretsMatchDecryptedSeat(t *testing.T) {
	_, nodes := roster(t, 4, 2)
	node := nodes[2]
	myID := node.Dealer.Participant.ID

	secrets, share, err := dkg.NewPVSSShare(rand.Reader, node.Aggregator.Config, node.Aggregator.Participants, myID)
	require.NoError(t, err)
	require.Len(t, share.FI, 2)
	require.Len(t, share.AI, 4)
	require.Len(t, share.YI, 4)

	// The dealer's own seat decrypts back to h*y_eval[myID].
	invSK := curve.NewScalar().Inverse(node.Dealer.PrivateKeySig)
	decrypted := curve.NewG2().ScalarMul(invSK, share.YI[myID])
	require.True(t, decrypted.Equal(secrets.MySecret))

	// The constant term binds c_i and u_i_2 at the same ratio.
	ci := curve.NewG1().ScalarMul(secrets.F0, node.Aggregator.Config.SRS.GG1)
	require.NoError(t, node.Aggregator.PVSSShareVerify(rand.Reader, ci, share))
}

func TestTranscriptAggregateCommutative(t *testing.T) {
	_, nodes := roster(t, 2, 0)
	s0, err := nodes[0].Share(rand.Reader)
	require.NoError(t, err)
	s1, err := nodes[1].Share(rand.Reader)
	require.NoError(t, err)

	require.NoError(t, nodes[0].Aggregator.ReceiveShare(rand.Reader, s0))
	require.NoError(t, nodes[0].Aggregator.ReceiveShare(rand.Reader, s1))

	require.NoError(t, nodes[1].Aggregator.ReceiveShare(rand.Reader, s1))
	require.NoError(t, nodes[1].Aggregator.ReceiveShare(rand.Reader, s0))

	require.Equal(t, nodes[0].Aggregator.Transcript.OrderedIDs(), nodes[1].Aggregator.Transcript.OrderedIDs())
	for _, id := range nodes[0].Aggregator.Transcript.OrderedIDs() {
		a := nodes[0].Aggregator.Transcript.Contributions[id]
		b := nodes[1].Aggregator.Transcript.Contributions[id]
		require.True(t, a.CI.Equal(b.CI))
		require.Equal(t, a.Weight, b.Weight)
	}
}

func TestTranscriptAggregateAssociative(t *testing.T) {
	_, nodes := roster(t, 4, 1)

	transcripts := make([]*dkg.Transcript[*curve.G2, *curve.G1], 3)
	for i := 0; i < 3; i++ {
		share, err := nodes[i].Share(rand.Reader)
		require.NoError(t, err)
		require.NoError(t, nodes[i].Aggregator.ReceiveShare(rand.Reader, share))
		transcripts[i] = nodes[i].Aggregator.Transcript
	}

	ab, err := transcripts[0].Aggregate(transcripts[1])
	require.NoError(t, err)
	left, err := ab.Aggregate(transcripts[2])
	require.NoError(t, err)

	bc, err := transcripts[1].Aggregate(transcripts[2])
	require.NoError(t, err)
	right, err := transcripts[0].Aggregate(bc)
	require.NoError(t, err)

	require.Equal(t, left.OrderedIDs(), right.OrderedIDs())
	for _, id := range left.OrderedIDs() {
		require.True(t, left.Contributions[id].CI.Equal(right.Contributions[id].CI))
		require.Equal(t, left.Contributions[id].Weight, right.Contributions[id].Weight)
	}
	require.True(t, left.PVSSShare.UI2.Equal(right.PVSSShare.UI2))
	for i := range left.PVSSShare.AI {
		require.True(t, left.PVSSShare.AI[i].Equal(right.PVSSShare.AI[i]))
		require.True(t, left.PVSSShare.YI[i].Equal(right.PVSSShare.YI[i]))
	}
	for i := range left.PVSSShare.FI {
		require.True(t, left.PVSSShare.FI[i].Equal(right.PVSSShare.FI[i]))
	}
}

func TestTranscriptDifferentConfigRejected(t *testing.T) {
	a := dkg.EmptyTranscript[*curve.G2, *curve.G1](2, 4)
	b := dkg.EmptyTranscript[*curve.G2, *curve.G1](3, 4)
	_, err := a.Aggregate(b)
	require.Error(t, err)
}
