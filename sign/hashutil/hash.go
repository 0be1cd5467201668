// Package hashutil provides the deterministic, personalization-tagged
// hash-to-group and hash-to-field routines the signature schemes need to
// turn an arbitrary message into a curve point or scalar: seed a stream
// cipher from a personalized BLAKE2s digest of the message, then
// rejection-sample bytes off that stream until they decode to a valid,
// non-identity element.
package hashutil

import (
	"io"

	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/chacha20"

	"github.com/kobigurk/aggregatable-dkg/curve"
)

// Domain-separation tags, one per signature scheme.
var (
	BLSPersonalization     = []byte("BLSSIGNA")
	SchnorrPersonalization = []byte("SCHSIGNA")
)

// streamReader turns a ChaCha20 keystream into an io.Reader, so the same
// curve.RandomScalar rejection-sampling logic used for caller-supplied
// randomness also drives our deterministic, message-seeded randomness.
type streamReader struct {
	cipher *chacha20.Cipher
}

func (r streamReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// rngFromMessage seeds a ChaCha20 stream from a tagged BLAKE2s digest of
// message. BLAKE2s's Go API exposes only keyed mode, not the raw 8-byte
// "personal" parameter block; a tag short enough to be a BLAKE2s key (ours
// are 8 bytes) gives the same per-scheme domain separation, so it is used
// as the key.
func rngFromMessage(personalization, message []byte) (*chacha20.Cipher, error) {
	h, err := blake2s.New256(personalization)
	if err != nil {
		return nil, err
	}
	if _, err := h.Write(message); err != nil {
		return nil, err
	}
	seed := h.Sum(nil)
	nonce := make([]byte, chacha20.NonceSize)
	return chacha20.NewUnauthenticatedCipher(seed, nonce)
}

// ToField rejection-samples a uniform element of Fr from personal(message).
func ToField(personalization, message []byte) (*curve.Scalar, error) {
	cipher, err := rngFromMessage(personalization, message)
	if err != nil {
		return nil, err
	}
	return curve.RandomScalar(streamReader{cipher})
}

// ToG1 rejection-samples a non-identity point of G1 from personal(message).
// gnark-crypto's G1Affine.SetBytes validates both the curve equation and
// subgroup membership as part of decoding a compressed encoding, so no
// separate cofactor-clearing step is needed after a successful decode.
func ToG1(personalization, message []byte) (*curve.G1, error) {
	cipher, err := rngFromMessage(personalization, message)
	if err != nil {
		return nil, err
	}
	reader := streamReader{cipher}
	buf := make([]byte, curve.G1Size)
	for {
		if _, err := io.ReadFull(reader, buf); err != nil {
			return nil, err
		}
		p, err := curve.NewG1().SetBytes(buf)
		if err == nil && !p.IsIdentity() {
			return p, nil
		}
	}
}

// ToG2 is ToG1's G2 counterpart.
func ToG2(personalization, message []byte) (*curve.G2, error) {
	cipher, err := rngFromMessage(personalization, message)
	if err != nil {
		return nil, err
	}
	reader := streamReader{cipher}
	buf := make([]byte, curve.G2Size)
	for {
		if _, err := io.ReadFull(reader, buf); err != nil {
			return nil, err
		}
		p, err := curve.NewG2().SetBytes(buf)
		if err == nil && !p.IsIdentity() {
			return p, nil
		}
	}
}
