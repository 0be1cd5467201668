// Package schnorr implements a Schnorr signature generic over the prime-order
// group it is instantiated with. This module uses it at both T = *curve.G1
// and T = *curve.G2, the same two groups the BLS schemes run over, so the
// DKG's PoK and participant-signature roles can each pick BLS or Schnorr
// without the DKG code caring which.
package schnorr

import (
	"github.com/kobigurk/aggregatable-dkg/curve"
	"github.com/kobigurk/aggregatable-dkg/sign/hashutil"
	"github.com/kobigurk/aggregatable-dkg/sign/scheme"
)

// point is the capability surface Scheme needs from its group element type;
// *curve.G1 and *curve.G2 both satisfy point[T] at T equal to themselves,
// the self-referential constraint pattern that lets Scheme be written once.
type point[T any] interface {
	Add(a, b T) T
	Neg(a T) T
	ScalarMul(s *curve.Scalar, a T) T
	Equal(o T) bool
	IsIdentity() bool
	Bytes() []byte
	SetBytes([]byte) (T, error)
}

// Signature is a Schnorr signature (V, r): a commitment point and a response
// scalar satisfying g^r * pk^h == V for h = Hash(message, V, g).
type Signature[T any] struct {
	V T
	R *curve.Scalar
}

// Scheme is a Schnorr signature scheme over group T, relative to generator
// GPublicKey. New must return a fresh identity element of T, since T's zero
// value is a nil pointer, unusable as a receiver.
type Scheme[T point[T]] struct {
	GPublicKey T
	New        func() T
}

func NewScheme[T point[T]](gPublicKey T, newFn func() T) *Scheme[T] {
	return &Scheme[T]{GPublicKey: gPublicKey, New: newFn}
}

func (s *Scheme[T]) GenerateKeypair(rng scheme.Reader) (*curve.Scalar, T, error) {
	sk, err := curve.RandomScalar(rng)
	if err != nil {
		var zero T
		return nil, zero, scheme.NewIOError(err)
	}
	return s.FromSecret(sk)
}

func (s *Scheme[T]) FromSecret(sk *curve.Scalar) (*curve.Scalar, T, error) {
	pk := s.New().ScalarMul(sk, s.GPublicKey)
	return sk, pk, nil
}

func (s *Scheme[T]) hash(message []byte, v T) (*curve.Scalar, error) {
	buf := make([]byte, 0, len(message)+2*64)
	buf = append(buf, message...)
	buf = append(buf, v.Bytes()...)
	buf = append(buf, s.GPublicKey.Bytes()...)
	return hashutil.ToField(hashutil.SchnorrPersonalization, buf)
}

func (s *Scheme[T]) Sign(rng scheme.Reader, sk *curve.Scalar, message []byte) (*Signature[T], error) {
	v, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, scheme.NewIOError(err)
	}
	vg := s.New().ScalarMul(v, s.GPublicKey)
	h, err := s.hash(message, vg)
	if err != nil {
		return nil, scheme.NewIOError(err)
	}
	r := curve.NewScalar().Sub(v, curve.NewScalar().Mul(sk, h))
	return &Signature[T]{V: vg, R: r}, nil
}

func (s *Scheme[T]) Verify(pk T, message []byte, sig *Signature[T]) error {
	h, err := s.hash(message, sig.V)
	if err != nil {
		return scheme.NewIOError(err)
	}
	lhs := s.New().Add(s.New().ScalarMul(sig.R, s.GPublicKey), s.New().ScalarMul(h, pk))
	if !lhs.Equal(sig.V) {
		return scheme.NewVerifyError(scheme.ErrSchnorrVerify)
	}
	return nil
}

// BatchVerify folds every (pk_i, message_i, sig_i) triple's verification
// equation g^r_i * pk_i^h_i * V_i^-1 == 1 into a single accumulated sum,
// each triple weighted by a fresh power of a random challenge alpha.
func (s *Scheme[T]) BatchVerify(rng scheme.Reader, pks []T, messages [][]byte, sigs []*Signature[T]) error {
	if len(pks) != len(messages) || len(pks) != len(sigs) {
		return scheme.NewBatchLengthError(len(pks), len(messages), len(sigs))
	}
	alpha, err := curve.RandomScalar(rng)
	if err != nil {
		return scheme.NewIOError(err)
	}
	current := curve.NewScalar().SetOne()
	acc := s.New()
	for i := range pks {
		h, err := s.hash(messages[i], sigs[i].V)
		if err != nil {
			return scheme.NewIOError(err)
		}
		rAlpha := curve.NewScalar().Mul(sigs[i].R, current)
		hAlpha := curve.NewScalar().Mul(h, current)
		negAlpha := curve.NewScalar().Neg(current)
		term := s.New().Add(
			s.New().ScalarMul(rAlpha, s.GPublicKey),
			s.New().Add(
				s.New().ScalarMul(hAlpha, pks[i]),
				s.New().ScalarMul(negAlpha, sigs[i].V),
			),
		)
		acc = s.New().Add(acc, term)
		current = curve.NewScalar().Mul(current, alpha)
	}
	if !acc.IsIdentity() {
		return scheme.NewVerifyError(scheme.ErrSchnorrVerify)
	}
	return nil
}

// Schnorr signatures are not key- or signature-aggregatable the way BLS is:
// naive per-component addition is rogue-key-vulnerable. Only the DKG's PoK
// and participant-signature roles are required here, and both are satisfied
// by Sign/Verify/BatchVerify above.
