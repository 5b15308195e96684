// Package mpeg extracts video metadata from the sequence header of
// an MPEG-2 elementary stream.
package mpeg

import (
	"bufio"
	"errors"
	"io"

	"mpg2dcm/pkg/dicom"

	"github.com/icza/bitio"
)

// sequenceHeaderCode follows the 00 00 01 start code prefix.
const sequenceHeaderCode = 0xB3

// probeLimit bounds how far into the stream the scan looks for a
// sequence header before giving up.
const probeLimit = 1 << 20

// frameRates maps the frame_rate_code field to frames per second.
var frameRates = map[uint8]dicom.FrameRate{
	1: 23.976,
	2: 24,
	3: 25,
	4: 29.97,
	5: 30,
	6: 50,
	7: 59.94,
	8: 60,
}

// aspectRatios maps the aspect_ratio_information field to the
// display aspect ratio.
var aspectRatios = map[uint8]dicom.AspectRatio{
	1: 1.0, // Square samples.
	2: 4.0 / 3.0,
	3: 16.0 / 9.0,
	4: 2.21,
}

// ParseMetadata scans the stream for the first MPEG-2 sequence
// header and returns the metadata it declares. A stream without a
// sequence header in the probed prefix yields all-absent metadata,
// not an error. Reserved field codes leave their field absent.
func ParseMetadata(r io.Reader) (dicom.VideoMetadata, error) {
	br := bufio.NewReader(io.LimitReader(r, probeLimit))

	zeros := 0
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return dicom.VideoMetadata{}, nil
		}
		if err != nil {
			return dicom.VideoMetadata{}, err
		}

		switch {
		case b == 0x00:
			zeros++
		case b == 0x01 && zeros >= 2:
			code, err := br.ReadByte()
			if errors.Is(err, io.EOF) {
				return dicom.VideoMetadata{}, nil
			}
			if err != nil {
				return dicom.VideoMetadata{}, err
			}
			if code == sequenceHeaderCode {
				return parseSequenceHeader(br)
			}
			if code == 0x00 {
				zeros = 1
			} else {
				zeros = 0
			}
		default:
			zeros = 0
		}
	}
}

// parseSequenceHeader reads the fixed-width fields directly after
// the sequence header start code.
func parseSequenceHeader(r io.Reader) (dicom.VideoMetadata, error) {
	br := bitio.NewReader(r)

	fields := make([]uint64, 4)
	for i, n := range []uint8{12, 12, 4, 4} {
		value, err := br.ReadBits(n)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			// Truncated header, treat as absent.
			return dicom.VideoMetadata{}, nil
		}
		if err != nil {
			return dicom.VideoMetadata{}, err
		}
		fields[i] = value
	}
	width, height, aspectCode, rateCode := fields[0], fields[1], fields[2], fields[3]

	var md dicom.VideoMetadata
	if width > 0 {
		columns := uint16(width)
		md.Columns = &columns
	}
	if height > 0 {
		rows := uint16(height)
		md.Rows = &rows
	}
	if rate, exists := frameRates[uint8(rateCode)]; exists {
		md.FrameRate = &rate
	}
	if ratio, exists := aspectRatios[uint8(aspectCode)]; exists {
		md.AspectRatio = &ratio
	}
	return md, nil
}
