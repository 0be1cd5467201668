package wire

import (
	"github.com/kobigurk/aggregatable-dkg/dkg"
)

func EncodeSRS(w *Writer, srs *dkg.SRS) {
	WriteG1(w, srs.GG1)
	WriteG2(w, srs.HG2)
}

func DecodeSRS(r *Reader) (*dkg.SRS, error) {
	g, err := ReadG1(r)
	if err != nil {
		return nil, err
	}
	h, err := ReadG2(r)
	if err != nil {
		return nil, err
	}
	return &dkg.SRS{GG1: g, HG2: h}, nil
}

func EncodeConfig(w *Writer, c *dkg.Config) {
	EncodeSRS(w, c.SRS)
	WriteG2(w, c.U1)
	w.WriteInt(c.Degree)
}

func DecodeConfig(r *Reader) (*dkg.Config, error) {
	srs, err := DecodeSRS(r)
	if err != nil {
		return nil, err
	}
	u1, err := ReadG2(r)
	if err != nil {
		return nil, err
	}
	degree, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	return &dkg.Config{SRS: srs, U1: u1, Degree: degree}, nil
}

// EncodePVSSShare writes f_i (length t), u_i_2, a_i and y_i (each length n)
// in that declaration order.
func EncodePVSSShare(w *Writer, s *dkg.PVSSShare) {
	WriteG1Slice(w, s.FI)
	WriteG2(w, s.UI2)
	WriteG1Slice(w, s.AI)
	WriteG2Slice(w, s.YI)
}

func DecodePVSSShare(r *Reader) (*dkg.PVSSShare, error) {
	fi, err := ReadG1Slice(r)
	if err != nil {
		return nil, err
	}
	ui2, err := ReadG2(r)
	if err != nil {
		return nil, err
	}
	ai, err := ReadG1Slice(r)
	if err != nil {
		return nil, err
	}
	yi, err := ReadG2Slice(r)
	if err != nil {
		return nil, err
	}
	return &dkg.PVSSShare{FI: fi, UI2: ui2, AI: ai, YI: yi}, nil
}

// EncodeDKGShare writes ParticipantID, CI, PVSSShare, CIPoK, SignatureOnCI
// in declaration order, using the caller-supplied codecs for the two
// scheme-parameterised signature fields.
func EncodeDKGShare[SPOKSig, SSIGSig any](
	w *Writer,
	share *dkg.DKGShare[SPOKSig, SSIGSig],
	pokCodec Codec[SPOKSig],
	sigCodec Codec[SSIGSig],
) {
	w.WriteInt(share.ParticipantID)
	WriteG1(w, share.CI)
	EncodePVSSShare(w, share.PVSSShare)
	pokCodec.Encode(w, share.CIPoK)
	sigCodec.Encode(w, share.SignatureOnCI)
}

func DecodeDKGShare[SPOKSig, SSIGSig any](
	r *Reader,
	pokCodec Codec[SPOKSig],
	sigCodec Codec[SSIGSig],
) (*dkg.DKGShare[SPOKSig, SSIGSig], error) {
	id, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	ci, err := ReadG1(r)
	if err != nil {
		return nil, err
	}
	pvss, err := DecodePVSSShare(r)
	if err != nil {
		return nil, err
	}
	pok, err := pokCodec.Decode(r)
	if err != nil {
		return nil, err
	}
	sig, err := sigCodec.Decode(r)
	if err != nil {
		return nil, err
	}
	return &dkg.DKGShare[SPOKSig, SSIGSig]{
		ParticipantID: id,
		CI:            ci,
		PVSSShare:     pvss,
		CIPoK:         pok,
		SignatureOnCI: sig,
	}, nil
}

// EncodeTranscript writes Degree, NumParticipants, the contribution count,
// then each contribution in ascending participant-id order (never map
// iteration order) as (id, CI, Weight, CIPoK, SignatureOnCI), and finally
// the aggregated PVSSShare.
func EncodeTranscript[SPOKSig, SSIGSig any](
	w *Writer,
	t *dkg.Transcript[SPOKSig, SSIGSig],
	pokCodec Codec[SPOKSig],
	sigCodec Codec[SSIGSig],
) {
	w.WriteInt(t.Degree)
	w.WriteInt(t.NumParticipants)
	ids := t.OrderedIDs()
	w.WriteUint32(uint32(len(ids)))
	for _, id := range ids {
		c := t.Contributions[id]
		w.WriteInt(id)
		WriteG1(w, c.CI)
		w.WriteUint64(c.Weight)
		pokCodec.Encode(w, c.CIPoK)
		sigCodec.Encode(w, c.SignatureOnCI)
	}
	EncodePVSSShare(w, t.PVSSShare)
}

func DecodeTranscript[SPOKSig, SSIGSig any](
	r *Reader,
	pokCodec Codec[SPOKSig],
	sigCodec Codec[SSIGSig],
) (*dkg.Transcript[SPOKSig, SSIGSig], error) {
	degree, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	numParticipants, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	contributions := make(map[int]*dkg.TranscriptParticipant[SPOKSig, SSIGSig], count)
	ids := make([]int, 0, count)
	for i := uint32(0); i < count; i++ {
		id, err := r.ReadInt()
		if err != nil {
			return nil, err
		}
		ci, err := ReadG1(r)
		if err != nil {
			return nil, err
		}
		weight, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		pok, err := pokCodec.Decode(r)
		if err != nil {
			return nil, err
		}
		sig, err := sigCodec.Decode(r)
		if err != nil {
			return nil, err
		}
		contributions[id] = &dkg.TranscriptParticipant[SPOKSig, SSIGSig]{
			CI: ci, Weight: weight, CIPoK: pok, SignatureOnCI: sig,
		}
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			return nil, ErrUnorderedContributions
		}
	}
	pvss, err := DecodePVSSShare(r)
	if err != nil {
		return nil, err
	}
	return &dkg.Transcript[SPOKSig, SSIGSig]{
		Degree:          degree,
		NumParticipants: numParticipants,
		Contributions:   contributions,
		PVSSShare:       pvss,
	}, nil
}

func EncodeParticipant(w *Writer, p *dkg.Participant) {
	w.WriteInt(p.ID)
	WriteG2(w, p.PublicKeySig)
}

func DecodeParticipant(r *Reader) (*dkg.Participant, error) {
	id, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	pk, err := ReadG2(r)
	if err != nil {
		return nil, err
	}
	return &dkg.Participant{ID: id, PublicKeySig: pk, State: dkg.StateInitial}, nil
}
