// Package binary implements the append-only encoder used to produce
// instruction data matching a Borsh-style on-chain deserializer: integers are
// little-endian (two's-complement for signed), booleans are a single 0/1
// byte, vectors carry a u32 little-endian length prefix, and optional values
// carry a one-byte 0/1 discriminator.
//
// There is deliberately no matching reader; the deserializer lives on-chain.
package binary

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

var (
	ErrWidthOverflow = errors.New("value does not fit target width")
	ErrInvalidLength = errors.New("unexpected byte length")
)

// Writer accumulates instruction data. The first failed write latches an
// error and turns every later write into a no-op, so callers can serialize a
// whole structure and check the writer once at the end. No bytes written
// before the failure are ever emitted: Bytes returns the error instead.
type Writer struct {
	buf []byte
	err error
}

// NewWriter creates a writer with the provided initial capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{
		buf: make([]byte, 0, capacity),
	}
}

// Err returns the first write failure, if any.
func (w *Writer) Err() error {
	return w.err
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the accumulated instruction data, or the first write failure.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.buf, nil
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// WriteUint writes an unsigned little-endian integer of the provided width
// (1, 2, 4 or 8 bytes). Values outside the target width fail with
// ErrWidthOverflow rather than being truncated.
func (w *Writer) WriteUint(v uint64, width int) {
	if w.err != nil {
		return
	}

	switch width {
	case 1, 2, 4, 8:
	default:
		w.fail(errors.Errorf("unsupported integer width %d", width))
		return
	}

	if width < 8 && v >= 1<<(8*width) {
		w.fail(errors.Wrapf(ErrWidthOverflow, "value %d exceeds %d bits", v, 8*width))
		return
	}

	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], v)
	w.buf = append(w.buf, scratch[:width]...)
}

// WriteInt writes a signed little-endian two's-complement integer of the
// provided width (1, 2, 4 or 8 bytes), validating the value fits.
func (w *Writer) WriteInt(v int64, width int) {
	if w.err != nil {
		return
	}

	switch width {
	case 1, 2, 4, 8:
	default:
		w.fail(errors.Errorf("unsupported integer width %d", width))
		return
	}

	if width < 8 {
		bits := uint(8 * width)
		min := -int64(1) << (bits - 1)
		max := int64(1)<<(bits-1) - 1
		if v < min || v > max {
			w.fail(errors.Wrapf(ErrWidthOverflow, "value %d exceeds %d bits", v, bits))
			return
		}
	}

	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(v))
	w.buf = append(w.buf, scratch[:width]...)
}

func (w *Writer) WriteUint8(v uint8) {
	w.WriteUint(uint64(v), 1)
}

func (w *Writer) WriteUint16(v uint16) {
	w.WriteUint(uint64(v), 2)
}

func (w *Writer) WriteUint32(v uint32) {
	w.WriteUint(uint64(v), 4)
}

func (w *Writer) WriteUint64(v uint64) {
	w.WriteUint(v, 8)
}

// WriteBool writes a boolean as a single 0/1 byte.
func (w *Writer) WriteBool(v bool) {
	if w.err != nil {
		return
	}
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

// WriteBytes writes raw bytes verbatim, without a length prefix. The caller
// guarantees the length matches the wire layout.
func (w *Writer) WriteBytes(b []byte) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, b...)
}

// WriteFixedBytes writes a fixed-size field, failing with ErrInvalidLength
// when the value has the wrong byte count.
func (w *Writer) WriteFixedBytes(b []byte, size int) {
	if w.err != nil {
		return
	}
	if len(b) != size {
		w.fail(errors.Wrapf(ErrInvalidLength, "expected %d bytes, got %d", size, len(b)))
		return
	}
	w.buf = append(w.buf, b...)
}

// WriteVecLen writes the u32 little-endian element count that prefixes a
// vector. The elements themselves are written by the caller.
func (w *Writer) WriteVecLen(n int) {
	if w.err != nil {
		return
	}
	if n < 0 || uint64(n) > math.MaxUint32 {
		w.fail(errors.Wrapf(ErrWidthOverflow, "vector length %d exceeds u32", n))
		return
	}
	w.WriteUint(uint64(n), 4)
}

// WriteVecBytes writes a length-prefixed byte vector (u32 LE count followed
// by the bytes).
func (w *Writer) WriteVecBytes(b []byte) {
	w.WriteVecLen(len(b))
	w.WriteBytes(b)
}

// WriteOption writes the one-byte option discriminator: 0 for absent (nothing
// follows), 1 for present (the caller writes the inner value next).
func (w *Writer) WriteOption(present bool) {
	w.WriteBool(present)
}

// WriteOptionUint64 writes an optional u64 in one call.
func (w *Writer) WriteOptionUint64(v *uint64) {
	w.WriteOption(v != nil)
	if v != nil {
		w.WriteUint64(*v)
	}
}

// WriteOptionUint8 writes an optional u8 in one call.
func (w *Writer) WriteOptionUint8(v *uint8) {
	w.WriteOption(v != nil)
	if v != nil {
		w.WriteUint8(*v)
	}
}
