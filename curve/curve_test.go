package curve

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	decoded := NewScalar().SetBytes(s.Bytes())
	require.True(t, s.Equal(decoded))
}

func TestScalarArithmetic(t *testing.T) {
	a, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	b, err := RandomScalar(rand.Reader)
	require.NoError(t, err)

	sum := NewScalar().Add(a, b)
	diff := NewScalar().Sub(sum, b)
	require.True(t, diff.Equal(a))

	inv := NewScalar().Inverse(a)
	one := NewScalar().Mul(a, inv)
	require.True(t, one.Equal(NewScalar().SetOne()))
}

func TestG1RoundTrip(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	p := NewG1().ScalarMul(s, G1Base())
	decoded, err := NewG1().SetBytes(p.Bytes())
	require.NoError(t, err)
	require.True(t, p.Equal(decoded))
}

func TestG2RoundTrip(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	p := NewG2().ScalarMul(s, G2Base())
	decoded, err := NewG2().SetBytes(p.Bytes())
	require.NoError(t, err)
	require.True(t, p.Equal(decoded))
}

func TestG1IdentityIsAdditiveIdentity(t *testing.T) {
	p := NewG1().ScalarMul(NewScalar().SetOne(), G1Base())
	sum := NewG1().Add(p, NewG1())
	require.True(t, sum.Equal(p))
	require.True(t, NewG1().IsIdentity())
}

func TestPairingProductIsOneMatchesBilinearity(t *testing.T) {
	a, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	b, err := RandomScalar(rand.Reader)
	require.NoError(t, err)

	g1a := NewG1().ScalarMul(a, G1Base())
	g2b := NewG2().ScalarMul(b, G2Base())
	ab := NewScalar().Mul(a, b)
	g1ab := NewG1().ScalarMul(ab, G1Base())

	// e(a*g1, b*g2) == e(ab*g1, g2), so e(a*g1,b*g2) * e(-(ab*g1), g2) == 1.
	ok, err := PairingProductIsOne([]*G1{g1a, NewG1().Neg(g1ab)}, []*G2{g2b, G2Base()})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPairingProductIsOneMismatchedLengths(t *testing.T) {
	_, err := PairingProductIsOne([]*G1{G1Base()}, nil)
	require.Error(t, err)
}

func TestG1MultiExp(t *testing.T) {
	a, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	b, err := RandomScalar(rand.Reader)
	require.NoError(t, err)

	bases := []*G1{G1Base(), G1Base()}
	scalars := []*Scalar{a, b}
	got, err := G1MultiExp(bases, scalars)
	require.NoError(t, err)

	want := NewG1().ScalarMul(NewScalar().Add(a, b), G1Base())
	require.True(t, got.Equal(want))
}

func TestNewDomainRejectsNonPowerOfTwo(t *testing.T) {
	_, err := NewDomain(3)
	require.ErrorIs(t, err, ErrEvaluationDomain)
}

func TestDomainFFTDoesNotMutateInput(t *testing.T) {
	domain, err := NewDomain(4)
	require.NoError(t, err)

	coeffs := make([]*Scalar, 4)
	for i := range coeffs {
		s, err := RandomScalar(rand.Reader)
		require.NoError(t, err)
		coeffs[i] = s
	}
	snapshot := make([]*Scalar, 4)
	for i, c := range coeffs {
		snapshot[i] = c.Clone()
	}

	_ = domain.FFT(coeffs)
	for i := range coeffs {
		require.True(t, coeffs[i].Equal(snapshot[i]))
	}
}

// The degree check in dkg relies on FFT evaluations and Lagrange
// coefficients agreeing: interpolating the FFT output at a random point must
// give back the polynomial's value there.
func TestDomainFFTMatchesLagrangeInterpolation(t *testing.T) {
	domain, err := NewDomain(8)
	require.NoError(t, err)

	coeffs := make([]*Scalar, 8)
	for i := range coeffs {
		s, err := RandomScalar(rand.Reader)
		require.NoError(t, err)
		coeffs[i] = s
	}
	evals := domain.FFT(coeffs)

	alpha, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	lagrange := domain.LagrangeCoefficients(alpha)

	interpolated := NewScalar().SetZero()
	for i := range evals {
		interpolated = NewScalar().Add(interpolated, NewScalar().Mul(lagrange[i], evals[i]))
	}

	direct := NewScalar().SetZero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		direct = NewScalar().Add(NewScalar().Mul(direct, alpha), coeffs[i])
	}

	require.True(t, interpolated.Equal(direct))
}

func TestDomainLagrangeCoefficientsSumToOne(t *testing.T) {
	domain, err := NewDomain(8)
	require.NoError(t, err)
	alpha, err := RandomScalar(rand.Reader)
	require.NoError(t, err)

	coeffs := domain.LagrangeCoefficients(alpha)
	sum := NewScalar().SetZero()
	for _, c := range coeffs {
		sum = NewScalar().Add(sum, c)
	}
	require.True(t, sum.Equal(NewScalar().SetOne()))
}

func TestGTDerivedFromPairingProduct(t *testing.T) {
	a, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	g1a := NewG1().ScalarMul(a, G1Base())
	gt1, err := PairingProduct([]*G1{g1a}, []*G2{G2Base()})
	require.NoError(t, err)
	gt2, err := PairingProduct([]*G1{G1Base()}, []*G2{NewG2().ScalarMul(a, G2Base())})
	require.NoError(t, err)
	require.True(t, gt1.Equal(gt2))
	require.False(t, gt1.IsOne())
}
