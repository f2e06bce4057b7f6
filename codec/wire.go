// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is returned by every Read* helper when the remaining
// buffer is too small to hold the next field.
var ErrShortBuffer = errors.New("codec: buffer too short")

// Writer accumulates a length-prefixed, little-endian instruction payload.
// This mirrors the wire format described by the instruction catalogue: a
// one-byte tag followed by little-endian fixed-width fields and
// length-prefixed variable-width ones.
type Writer struct {
	buf []byte
}

// NewWriter starts a payload with the given instruction tag as its first
// byte.
func NewWriter(tag byte) *Writer {
	return &Writer{buf: []byte{tag}}
}

func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) PutU8(v uint8) *Writer {
	w.buf = append(w.buf, v)
	return w
}

func (w *Writer) PutU64(v uint64) *Writer {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
	return w
}

func (w *Writer) PutFixed(b []byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

// PutString writes a u32 length prefix followed by the raw UTF-8 bytes.
func (w *Writer) PutString(s string) *Writer {
	return w.putBytesLP([]byte(s))
}

func (w *Writer) putBytesLP(b []byte) *Writer {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(len(b)))
	w.buf = append(w.buf, tmp[:]...)
	w.buf = append(w.buf, b...)
	return w
}

// PutOption writes a one-byte presence flag followed by enc(value) when
// present is true.
func (w *Writer) PutOption(present bool, enc func(*Writer)) *Writer {
	if present {
		w.buf = append(w.buf, 1)
		enc(w)
	} else {
		w.buf = append(w.buf, 0)
	}
	return w
}

// Reader consumes a length-prefixed, little-endian instruction payload
// produced by Writer (or an equivalent off-chain encoder).
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential decoding. The caller is expected to
// have already consumed the one-byte instruction tag.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

func (r *Reader) remaining() int { return len(r.buf) - r.pos }

func (r *Reader) ReadU8() (uint8, error) {
	if r.remaining() < 1 {
		return 0, ErrShortBuffer
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *Reader) ReadU64() (uint64, error) {
	if r.remaining() < 8 {
		return 0, ErrShortBuffer
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

func (r *Reader) ReadFixed(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, ErrShortBuffer
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

func (r *Reader) ReadString() (string, error) {
	b, err := r.readBytesLP()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *Reader) readBytesLP() ([]byte, error) {
	if r.remaining() < 4 {
		return nil, ErrShortBuffer
	}
	n := binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return r.ReadFixed(int(n))
}

// ReadOption reads the one-byte presence flag and, when set, invokes dec to
// decode the value. It reports whether a value was present.
func (r *Reader) ReadOption(dec func(*Reader) error) (bool, error) {
	present, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	if present == 0 {
		return false, nil
	}
	if err := dec(r); err != nil {
		return false, err
	}
	return true, nil
}

// Remaining returns whatever bytes have not yet been consumed.
func (r *Reader) Remaining() []byte {
	return r.buf[r.pos:]
}
