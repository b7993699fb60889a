package contract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/BernhardWagner251/medical-research-funding/sdk"
)

// Record blobs use a deterministic binary layout: big-endian fixed-width
// numbers, varint string lengths. Deterministic bytes matter because hosts
// diff raw storage between replicas.

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

type binReader struct {
	r *bytes.Reader
}

func newReader(data []byte) *binReader {
	return &binReader{r: bytes.NewReader(data)}
}

func (r *binReader) readUint64() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, errors.New("short buffer")
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	return int64(v), err
}

func (r *binReader) readVarUint() (uint64, error) {
	v, err := binary.ReadUvarint(r.r)
	if err != nil {
		return 0, errors.New("short buffer")
	}
	return v, nil
}

func (r *binReader) readString() (string, error) {
	n, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if n > uint64(r.r.Len()) {
		return "", errors.New("short buffer")
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r.r, b); err != nil {
		return "", errors.New("short buffer")
	}
	return string(b), nil
}

// -----------------------------------------------------------------------------
// Proposal Encoding
// -----------------------------------------------------------------------------

// EncodeProposal flattens a proposal record into the storage blob layout.
func EncodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeUint64(p.ID)
	w.writeString(p.Recipient.String())
	w.writeUint64(uint64(p.Amount))
	w.writeUint64(uint64(p.Votes))
	w.writeString(p.Creator.String())
	w.writeInt64(p.CreatedAt)
	return w.bytes()
}

// DecodeProposal rebuilds a proposal from storage bytes, erroring on truncation.
func DecodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	p := &Proposal{}
	var err error
	if p.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	recipient, err := r.readString()
	if err != nil {
		return nil, err
	}
	p.Recipient = sdk.Address(recipient)
	amount, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	p.Amount = Amount(amount)
	votes, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	p.Votes = Amount(votes)
	creator, err := r.readString()
	if err != nil {
		return nil, err
	}
	p.Creator = sdk.Address(creator)
	if p.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return p, nil
}
