package dicom

import (
	"bytes"
	"testing"

	"mpg2dcm/pkg/dicom/bitio"

	"github.com/stretchr/testify/require"
)

func TestWriteFileMeta(t *testing.T) {
	ds := NewDataset()
	ds.SetString(TagSOPClassUID, UI, "1.2")
	ds.SetString(TagSOPInstanceUID, UI, "3.4")

	buf := &bytes.Buffer{}
	err := writeFileMeta(bitio.NewWriter(buf), ds, TransferSyntaxMPEG2)
	require.NoError(t, err)

	out := buf.Bytes()
	require.Equal(t, make([]byte, 128), out[:128])
	require.Equal(t, []byte("DICM"), out[128:132])

	// Group length element comes first and covers the rest of the
	// group exactly.
	require.Equal(t, []byte{
		0x02, 0x00, 0x00, 0x00, // tag
		'U', 'L', // vr
		0x04, 0x00, // length
	}, out[132:140])

	groupLen := int(out[140]) |
		int(out[141])<<8 |
		int(out[142])<<16 |
		int(out[143])<<24
	require.Equal(t, len(out)-144, groupLen)

	// Media storage UIDs mirror the dataset.
	require.True(t, bytes.Contains(out, []byte{
		0x02, 0x00, 0x02, 0x00, 'U', 'I', 0x04, 0x00, '1', '.', '2', 0x00,
	}))
	require.True(t, bytes.Contains(out, []byte{
		0x02, 0x00, 0x03, 0x00, 'U', 'I', 0x04, 0x00, '3', '.', '4', 0x00,
	}))
	require.True(t, bytes.Contains(out, []byte(TransferSyntaxMPEG2)))
}

func TestWriteFileMetaMissingSOP(t *testing.T) {
	buf := &bytes.Buffer{}
	err := writeFileMeta(bitio.NewWriter(buf), NewDataset(), TransferSyntaxMPEG2)
	require.Error(t, err)
}
