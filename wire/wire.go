// Package wire implements the canonical binary codec every over-the-wire
// DKG type round-trips through: SRS, public keys, signatures, DKGShare,
// DKGTranscript, DKGTranscriptParticipant, and PVSSShare. Every field is
// written in declaration order; sequences are prefixed with a little-endian
// uint32 length; every point/scalar sub-field is still the curve package's
// own canonical compressed encoding; this layer only frames those fixed-
// width encodings together, so two implementations of the protocol produce
// identical bytes for identical values.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/kobigurk/aggregatable-dkg/curve"
)

// ErrTruncated is returned when a Reader runs out of input mid-decode.
var ErrTruncated = errors.New("wire: truncated input")

// ErrUnorderedContributions is returned when a decoded transcript's
// contributions are not strictly ascending by participant id. The ordering
// is checked on decode rather than trusted blindly.
var ErrUnorderedContributions = errors.New("wire: transcript contributions not ordered by id")

// Writer accumulates a canonical byte encoding.
type Writer struct {
	buf bytes.Buffer
}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// WriteFixed writes b verbatim, used for already fixed-width encodings
// (scalars, compressed points) that need no length prefix.
func (w *Writer) WriteFixed(b []byte) {
	w.buf.Write(b)
}

// WriteUint32 writes v as a little-endian uint32, used as a sequence length
// prefix.
func (w *Writer) WriteUint32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.buf.Write(tmp[:])
}

// WriteUint64 writes v as a little-endian uint64, used for TranscriptParticipant.Weight.
func (w *Writer) WriteUint64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	w.buf.Write(tmp[:])
}

// WriteInt writes a non-negative int as a little-endian uint32, used for
// participant ids and degree/count fields.
func (w *Writer) WriteInt(v int) {
	w.WriteUint32(uint32(v))
}

// Reader consumes a canonical byte encoding produced by Writer.
type Reader struct {
	r *bytes.Reader
}

func NewReader(b []byte) *Reader {
	return &Reader{r: bytes.NewReader(b)}
}

func (r *Reader) ReadFixed(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, ErrTruncated
	}
	return buf, nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	buf, err := r.ReadFixed(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf), nil
}

func (r *Reader) ReadInt() (int, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// Remaining reports how many unconsumed bytes the reader has left, used by
// tests to assert an encoding has no trailing garbage.
func (r *Reader) Remaining() int { return r.r.Len() }

func WriteScalar(w *Writer, s *curve.Scalar) { w.WriteFixed(s.Bytes()) }

func ReadScalar(r *Reader) (*curve.Scalar, error) {
	b, err := r.ReadFixed(curve.ScalarSize)
	if err != nil {
		return nil, err
	}
	return curve.NewScalar().SetBytes(b), nil
}

func WriteG1(w *Writer, p *curve.G1) { w.WriteFixed(p.Bytes()) }

func ReadG1(r *Reader) (*curve.G1, error) {
	b, err := r.ReadFixed(curve.G1Size)
	if err != nil {
		return nil, err
	}
	return curve.NewG1().SetBytes(b)
}

func WriteG2(w *Writer, p *curve.G2) { w.WriteFixed(p.Bytes()) }

func ReadG2(r *Reader) (*curve.G2, error) {
	b, err := r.ReadFixed(curve.G2Size)
	if err != nil {
		return nil, err
	}
	return curve.NewG2().SetBytes(b)
}

func WriteG1Slice(w *Writer, ps []*curve.G1) {
	w.WriteUint32(uint32(len(ps)))
	for _, p := range ps {
		WriteG1(w, p)
	}
}

func ReadG1Slice(r *Reader) ([]*curve.G1, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	out := make([]*curve.G1, n)
	for i := range out {
		p, err := ReadG1(r)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func WriteG2Slice(w *Writer, ps []*curve.G2) {
	w.WriteUint32(uint32(len(ps)))
	for _, p := range ps {
		WriteG2(w, p)
	}
}

func ReadG2Slice(r *Reader) ([]*curve.G2, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	out := make([]*curve.G2, n)
	for i := range out {
		p, err := ReadG2(r)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
