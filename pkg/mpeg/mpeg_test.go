package mpeg

import (
	"bytes"
	"testing"

	"mpg2dcm/pkg/dicom"

	"github.com/stretchr/testify/require"
)

// sequenceHeader packs width=640, height=480, aspect=4:3, rate=30.
//
//	0010 1000 0000  horizontal size
//	0001 1110 0000  vertical size
//	0010            aspect_ratio_information (4:3)
//	0101            frame_rate_code (30)
var sequenceHeader = []byte{0x00, 0x00, 0x01, 0xb3, 0x28, 0x01, 0xe0, 0x25}

func TestParseMetadata(t *testing.T) {
	md, err := ParseMetadata(bytes.NewReader(sequenceHeader))
	require.NoError(t, err)

	require.NotNil(t, md.Columns)
	require.Equal(t, uint16(640), *md.Columns)
	require.NotNil(t, md.Rows)
	require.Equal(t, uint16(480), *md.Rows)

	require.NotNil(t, md.FrameRate)
	require.Equal(t, dicom.FrameRate(30), *md.FrameRate)

	require.NotNil(t, md.AspectRatio)
	require.Equal(t, `4\3`, md.AspectRatio.RatioString())
}

func TestParseMetadataLeadingGarbage(t *testing.T) {
	stream := append([]byte{0xde, 0xad, 0xbe, 0xef, 0x00}, sequenceHeader...)

	md, err := ParseMetadata(bytes.NewReader(stream))
	require.NoError(t, err)
	require.NotNil(t, md.Rows)
	require.Equal(t, uint16(480), *md.Rows)
}

func TestParseMetadataSkipsOtherStartCodes(t *testing.T) {
	// A group-of-pictures start code before the sequence header.
	stream := append([]byte{0x00, 0x00, 0x01, 0xb8, 0x12, 0x34}, sequenceHeader...)

	md, err := ParseMetadata(bytes.NewReader(stream))
	require.NoError(t, err)
	require.NotNil(t, md.Columns)
	require.Equal(t, uint16(640), *md.Columns)
}

func TestParseMetadataThreeByteZeroPrefix(t *testing.T) {
	stream := append([]byte{0x00}, sequenceHeader...)

	md, err := ParseMetadata(bytes.NewReader(stream))
	require.NoError(t, err)
	require.NotNil(t, md.Rows)
}

func TestParseMetadataNoHeader(t *testing.T) {
	md, err := ParseMetadata(bytes.NewReader([]byte{0x47, 0x11, 0x00, 0x01}))
	require.NoError(t, err)
	require.Nil(t, md.Rows)
	require.Nil(t, md.Columns)
	require.Nil(t, md.FrameRate)
	require.Nil(t, md.AspectRatio)
}

func TestParseMetadataEmptyStream(t *testing.T) {
	md, err := ParseMetadata(bytes.NewReader(nil))
	require.NoError(t, err)
	require.Nil(t, md.Rows)
}

func TestParseMetadataTruncatedHeader(t *testing.T) {
	md, err := ParseMetadata(bytes.NewReader([]byte{0x00, 0x00, 0x01, 0xb3, 0x28}))
	require.NoError(t, err)
	require.Nil(t, md.Rows)
	require.Nil(t, md.FrameRate)
}

func TestParseMetadataReservedCodes(t *testing.T) {
	// aspect=1111 (reserved), rate=0000 (forbidden).
	stream := []byte{0x00, 0x00, 0x01, 0xb3, 0x28, 0x01, 0xe0, 0xf0}

	md, err := ParseMetadata(bytes.NewReader(stream))
	require.NoError(t, err)
	require.NotNil(t, md.Rows)
	require.NotNil(t, md.Columns)
	require.Nil(t, md.FrameRate)
	require.Nil(t, md.AspectRatio)
}
