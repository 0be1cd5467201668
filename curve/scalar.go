// Package curve adapts the BLS12-381 pairing, its two prime-order groups and
// its scalar field from github.com/consensys/gnark-crypto into the small
// Scalar/Point capability surface the rest of this module is written
// against, so nothing above this package touches gnark-crypto types
// directly.
package curve

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Scalar is an element of Fr, the scalar field shared by G1, G2 and GT.
type Scalar struct {
	inner fr.Element
}

// ScalarSize is the canonical encoded length of a Scalar in bytes.
const ScalarSize = fr.Bytes

func NewScalar() *Scalar { return &Scalar{} }

func (s *Scalar) SetZero() *Scalar { s.inner.SetZero(); return s }
func (s *Scalar) SetOne() *Scalar  { s.inner.SetOne(); return s }

func (s *Scalar) SetInt64(v int64) *Scalar { s.inner.SetInt64(v); return s }

func (s *Scalar) SetBigInt(v *big.Int) *Scalar {
	s.inner.SetBigInt(v)
	return s
}

func (s *Scalar) BigInt() *big.Int {
	var z big.Int
	s.inner.BigInt(&z)
	return &z
}

func (s *Scalar) Add(a, b *Scalar) *Scalar { s.inner.Add(&a.inner, &b.inner); return s }
func (s *Scalar) Sub(a, b *Scalar) *Scalar { s.inner.Sub(&a.inner, &b.inner); return s }
func (s *Scalar) Mul(a, b *Scalar) *Scalar { s.inner.Mul(&a.inner, &b.inner); return s }
func (s *Scalar) Neg(a *Scalar) *Scalar    { s.inner.Neg(&a.inner); return s }

// Inverse sets s to zero if a is zero. The only inverses this module takes
// are of signing secrets, which are sampled uniformly, so a zero secret
// occurs only with negligible probability.
func (s *Scalar) Inverse(a *Scalar) *Scalar { s.inner.Inverse(&a.inner); return s }

func (s *Scalar) IsZero() bool         { return s.inner.IsZero() }
func (s *Scalar) Equal(o *Scalar) bool { return s.inner == o.inner }

func (s *Scalar) Clone() *Scalar {
	c := *s
	return &c
}

// Bytes is the canonical fixed-width encoding of the scalar.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	out := make([]byte, len(b))
	copy(out, b[:])
	return out
}

func (s *Scalar) SetBytes(b []byte) *Scalar {
	s.inner.SetBytes(b)
	return s
}

// Modulus is Fr's prime modulus, used by rejection-sampling in RandomScalar
// and by the hash-to-field routine in sign/hashutil.
func Modulus() *big.Int { return fr.Modulus() }

// RandomScalar draws a uniform element of Fr from rng by rejection sampling
// against the modulus.
func RandomScalar(rng io.Reader) (*Scalar, error) {
	modulus := Modulus()
	bitLen := modulus.BitLen()
	byteLen := (bitLen + 7) / 8
	mask := byte(0xFF)
	if rem := byteLen*8 - bitLen; rem > 0 {
		mask = 0xFF >> uint(rem)
	}
	buf := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(modulus) < 0 {
			return NewScalar().SetBigInt(v), nil
		}
	}
}
