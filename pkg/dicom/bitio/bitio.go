// Package bitio implements a little-endian byte writer for DICOM encoding.
package bitio

import (
	"io"
)

// Writer is the little-endian writer implementation.
type Writer struct {
	out io.Writer

	// TryError holds the first error occurred in TryXXX() methods.
	TryError error
}

// NewWriter returns a new Writer using the specified io.Writer as the output.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

// WriteUint16 writes 16 bits in little-endian byte order.
func (w *Writer) WriteUint16(r uint16) error {
	_, err := w.Write([]byte{
		byte(r),
		byte(r >> 8),
	})
	return err
}

// WriteUint32 writes 32 bits in little-endian byte order.
func (w *Writer) WriteUint32(r uint32) error {
	_, err := w.Write([]byte{
		byte(r),
		byte(r >> 8),
		byte(r >> 16),
		byte(r >> 24),
	})
	return err
}

// TryWrite tries to write len(p) bytes.
func (w *Writer) TryWrite(p []byte) {
	if w.TryError == nil {
		_, w.TryError = w.Write(p)
	}
}

// TryWriteByte tries to write 1 byte.
func (w *Writer) TryWriteByte(b byte) {
	if w.TryError == nil {
		_, w.TryError = w.Write([]byte{b})
	}
}

// TryWriteUint16 tries to write 16 bits in little-endian byte order.
func (w *Writer) TryWriteUint16(r uint16) {
	if w.TryError == nil {
		w.TryError = w.WriteUint16(r)
	}
}

// TryWriteUint32 tries to write 32 bits in little-endian byte order.
func (w *Writer) TryWriteUint32(r uint32) {
	if w.TryError == nil {
		w.TryError = w.WriteUint32(r)
	}
}
