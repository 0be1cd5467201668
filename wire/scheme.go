package wire

import (
	"github.com/kobigurk/aggregatable-dkg/curve"
	"github.com/kobigurk/aggregatable-dkg/sign/schnorr"
)

// Codec is how a concrete signature/public-key type plugs into the
// generic DKG wire types below: DKGShare and Transcript are themselves
// generic over the PoK and participant-signature schemes' signature
// types, so encoding them needs an explicit (encode, decode) pair per
// instantiation rather than a type constraint (Go generics cannot express
// "T has a canonical wire codec" as a method set when T may itself be
// generic, as schnorr.Signature[G] is).
type Codec[T any] struct {
	Encode func(w *Writer, v T)
	Decode func(r *Reader) (T, error)
}

// BLS signatures are just G1 or G2 points, so their codec is WriteG1/ReadG1
// (resp. G2) directly.
var BLSG1SigCodec = Codec[*curve.G1]{Encode: WriteG1, Decode: ReadG1}
var BLSG2SigCodec = Codec[*curve.G2]{Encode: WriteG2, Decode: ReadG2}

// SchnorrCodec builds a Codec for schnorr.Signature[T] out of a Codec for
// the underlying group T.
func SchnorrCodec[T any](point Codec[T]) Codec[*schnorr.Signature[T]] {
	return Codec[*schnorr.Signature[T]]{
		Encode: func(w *Writer, sig *schnorr.Signature[T]) {
			point.Encode(w, sig.V)
			WriteScalar(w, sig.R)
		},
		Decode: func(r *Reader) (*schnorr.Signature[T], error) {
			v, err := point.Decode(r)
			if err != nil {
				return nil, err
			}
			rScalar, err := ReadScalar(r)
			if err != nil {
				return nil, err
			}
			return &schnorr.Signature[T]{V: v, R: rScalar}, nil
		},
	}
}

var SchnorrG1Codec = SchnorrCodec(Codec[*curve.G1]{Encode: WriteG1, Decode: ReadG1})
var SchnorrG2Codec = SchnorrCodec(Codec[*curve.G2]{Encode: WriteG2, Decode: ReadG2})
