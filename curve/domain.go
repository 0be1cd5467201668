package curve

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// ErrEvaluationDomain is returned when n is not usable as a radix-2 FFT
// domain size.
var ErrEvaluationDomain = errors.New("curve: could not build a radix-2 evaluation domain of the requested size")

// Domain is the size-n multiplicative subgroup of Fr used to evaluate and
// interpolate the dealer's polynomial, wrapping gnark-crypto's fft.Domain.
type Domain struct {
	size  int
	inner *fft.Domain
}

// NewDomain builds the radix-2 domain of size n. n must be a power of two;
// anything else fails with ErrEvaluationDomain.
func NewDomain(n int) (*Domain, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, ErrEvaluationDomain
	}
	inner := fft.NewDomain(uint64(n))
	if inner == nil || int(inner.Cardinality) != n {
		return nil, ErrEvaluationDomain
	}
	return &Domain{size: n, inner: inner}, nil
}

func (d *Domain) Size() int { return d.size }

// FFT evaluates the polynomial with coefficients coeffs (padded/truncated to
// the domain size by the caller) at every point of the domain, returning a
// fresh slice. coeffs is never mutated: it is copied into an internal buffer
// before the in-place underlying transform runs, so callers can keep using
// their coefficient slice afterwards.
func (d *Domain) FFT(coeffs []*Scalar) []*Scalar {
	buf := make([]fr.Element, d.size)
	for i := 0; i < d.size && i < len(coeffs); i++ {
		buf[i] = coeffs[i].inner
	}
	fft.BitReverse(buf)
	d.inner.FFT(buf, fft.DIT)
	out := make([]*Scalar, d.size)
	for i := range buf {
		out[i] = &Scalar{inner: buf[i]}
	}
	return out
}

// LagrangeCoefficients evaluates every Lagrange basis polynomial L_0..L_{n-1}
// of this domain at alpha: L_i(alpha) = (alpha^n - 1)/n * omega^i/(alpha-omega^i)
// for alpha outside the domain, falling back to the indicator vector when
// alpha happens to land on a domain point. gnark-crypto's fft.Domain does
// not expose this helper itself, so it is derived here from the domain's
// generator and cardinality inverse.
func (d *Domain) LagrangeCoefficients(alpha *Scalar) []*Scalar {
	n := d.size
	coeffs := make([]*Scalar, n)

	// omega^i for i in 0..n
	omegaPowers := make([]fr.Element, n)
	omegaPowers[0].SetOne()
	for i := 1; i < n; i++ {
		omegaPowers[i].Mul(&omegaPowers[i-1], &d.inner.Generator)
	}

	// Check whether alpha coincides with a domain point.
	for i := 0; i < n; i++ {
		if alpha.inner == omegaPowers[i] {
			for j := range coeffs {
				coeffs[j] = NewScalar()
			}
			coeffs[i] = NewScalar().SetOne()
			return coeffs
		}
	}

	// Z_H(alpha) = alpha^n - 1, the vanishing polynomial of the domain.
	alphaPowN := powFr(&alpha.inner, uint64(n))
	var zH fr.Element
	zH.SetOne()
	zH.Sub(&alphaPowN, &zH)
	zH.Mul(&zH, &d.inner.CardinalityInv)

	for i := 0; i < n; i++ {
		var denom fr.Element
		denom.Sub(&alpha.inner, &omegaPowers[i])
		denom.Inverse(&denom)
		var li fr.Element
		li.Mul(&zH, &omegaPowers[i])
		li.Mul(&li, &denom)
		coeffs[i] = &Scalar{inner: li}
	}
	return coeffs
}

func powFr(x *fr.Element, e uint64) fr.Element {
	var result fr.Element
	result.SetOne()
	base := *x
	for e > 0 {
		if e&1 == 1 {
			result.Mul(&result, &base)
		}
		base.Mul(&base, &base)
		e >>= 1
	}
	return result
}
