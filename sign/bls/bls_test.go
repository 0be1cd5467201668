package bls

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kobigurk/aggregatable-dkg/curve"
)

func TestSchemeG1SigVerify(t *testing.T) {
	scheme := NewSchemeG1Sig(curve.G2Base())
	sk, pk, err := scheme.GenerateKeypair(rand.Reader)
	require.NoError(t, err)

	msg := []byte("hello bls g1")
	sig, err := scheme.Sign(rand.Reader, sk, msg)
	require.NoError(t, err)
	require.NoError(t, scheme.Verify(pk, msg, sig))
}

func TestSchemeG1SigRejectsWrongMessage(t *testing.T) {
	scheme := NewSchemeG1Sig(curve.G2Base())
	sk, pk, err := scheme.GenerateKeypair(rand.Reader)
	require.NoError(t, err)

	sig, err := scheme.Sign(rand.Reader, sk, []byte("message a"))
	require.NoError(t, err)
	require.Error(t, scheme.Verify(pk, []byte("message b"), sig))
}

func TestSchemeG1SigRejectsWrongKey(t *testing.T) {
	scheme := NewSchemeG1Sig(curve.G2Base())
	sk, _, err := scheme.GenerateKeypair(rand.Reader)
	require.NoError(t, err)
	_, otherPK, err := scheme.GenerateKeypair(rand.Reader)
	require.NoError(t, err)

	msg := []byte("hello bls g1")
	sig, err := scheme.Sign(rand.Reader, sk, msg)
	require.NoError(t, err)
	require.Error(t, scheme.Verify(otherPK, msg, sig))
}

func TestSchemeG1SigBatchVerify(t *testing.T) {
	scheme := NewSchemeG1Sig(curve.G2Base())
	const n = 5
	pks := make([]*curve.G2, n)
	msgs := make([][]byte, n)
	sigs := make([]*curve.G1, n)
	for i := 0; i < n; i++ {
		sk, pk, err := scheme.GenerateKeypair(rand.Reader)
		require.NoError(t, err)
		msg := []byte{byte(i), 'm', 's', 'g'}
		sig, err := scheme.Sign(rand.Reader, sk, msg)
		require.NoError(t, err)
		pks[i], msgs[i], sigs[i] = pk, msg, sig
	}
	require.NoError(t, scheme.BatchVerify(rand.Reader, pks, msgs, sigs))

	sigs[2] = curve.NewG1().Add(sigs[2], curve.G1Base())
	require.Error(t, scheme.BatchVerify(rand.Reader, pks, msgs, sigs))
}

func TestSchemeG1SigBatchVerifyLengthMismatch(t *testing.T) {
	scheme := NewSchemeG1Sig(curve.G2Base())
	err := scheme.BatchVerify(rand.Reader, []*curve.G2{curve.G2Base()}, nil, nil)
	require.Error(t, err)
}

func TestSchemeG1SigAggregation(t *testing.T) {
	scheme := NewSchemeG1Sig(curve.G2Base())
	sk1, pk1, err := scheme.GenerateKeypair(rand.Reader)
	require.NoError(t, err)
	sk2, pk2, err := scheme.GenerateKeypair(rand.Reader)
	require.NoError(t, err)

	msg := []byte("same message")
	sig1, err := scheme.Sign(rand.Reader, sk1, msg)
	require.NoError(t, err)
	sig2, err := scheme.Sign(rand.Reader, sk2, msg)
	require.NoError(t, err)

	aggPK, err := scheme.AggregatePublicKeys([]*curve.G2{pk1, pk2})
	require.NoError(t, err)
	aggSig, err := scheme.AggregateSignatures([]*curve.G1{sig1, sig2})
	require.NoError(t, err)

	require.NoError(t, scheme.Verify(aggPK, msg, aggSig))
}

func TestSchemeG2SigVerify(t *testing.T) {
	scheme := NewSchemeG2Sig(curve.G1Base())
	sk, pk, err := scheme.GenerateKeypair(rand.Reader)
	require.NoError(t, err)

	msg := []byte("hello bls g2")
	sig, err := scheme.Sign(rand.Reader, sk, msg)
	require.NoError(t, err)
	require.NoError(t, scheme.Verify(pk, msg, sig))
}

func TestSchemeG2SigRejectsWrongMessage(t *testing.T) {
	scheme := NewSchemeG2Sig(curve.G1Base())
	sk, pk, err := scheme.GenerateKeypair(rand.Reader)
	require.NoError(t, err)

	sig, err := scheme.Sign(rand.Reader, sk, []byte("message a"))
	require.NoError(t, err)
	require.Error(t, scheme.Verify(pk, []byte("message b"), sig))
}

func TestSchemeG2SigBatchVerify(t *testing.T) {
	scheme := NewSchemeG2Sig(curve.G1Base())
	const n = 4
	pks := make([]*curve.G1, n)
	msgs := make([][]byte, n)
	sigs := make([]*curve.G2, n)
	for i := 0; i < n; i++ {
		sk, pk, err := scheme.GenerateKeypair(rand.Reader)
		require.NoError(t, err)
		msg := []byte{byte(i), 'p', 'o', 'k'}
		sig, err := scheme.Sign(rand.Reader, sk, msg)
		require.NoError(t, err)
		pks[i], msgs[i], sigs[i] = pk, msg, sig
	}
	require.NoError(t, scheme.BatchVerify(rand.Reader, pks, msgs, sigs))
}

func TestSchemeG2SigAggregation(t *testing.T) {
	scheme := NewSchemeG2Sig(curve.G1Base())
	sk1, pk1, err := scheme.GenerateKeypair(rand.Reader)
	require.NoError(t, err)
	sk2, pk2, err := scheme.GenerateKeypair(rand.Reader)
	require.NoError(t, err)

	msg := []byte("same message g2")
	sig1, err := scheme.Sign(rand.Reader, sk1, msg)
	require.NoError(t, err)
	sig2, err := scheme.Sign(rand.Reader, sk2, msg)
	require.NoError(t, err)

	aggPK, err := scheme.AggregatePublicKeys([]*curve.G1{pk1, pk2})
	require.NoError(t, err)
	aggSig, err := scheme.AggregateSignatures([]*curve.G2{sig1, sig2})
	require.NoError(t, err)

	require.NoError(t, scheme.Verify(aggPK, msg, aggSig))
}
