package bitio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.TryWrite([]byte{0x01})
	w.TryWriteByte(0x02)
	w.TryWriteUint16(0x0304)
	w.TryWriteUint32(0x05060708)

	require.NoError(t, w.TryError)
	require.Equal(t, []byte{
		0x01,
		0x02,
		0x04, 0x03, // uint16 little-endian.
		0x08, 0x07, 0x06, 0x05, // uint32 little-endian.
	}, buf.Bytes())
}

var errMock = errors.New("mock")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errMock
}

func TestWriterStickyError(t *testing.T) {
	w := NewWriter(failWriter{})

	w.TryWriteUint32(1)
	require.ErrorIs(t, w.TryError, errMock)

	// Later writes must not clear the first error.
	w.TryWrite([]byte{0xff})
	w.TryWriteUint16(2)
	require.ErrorIs(t, w.TryError, errMock)
}
