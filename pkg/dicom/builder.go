// Package dicom wraps an opaque video elementary stream in a DICOM
// file: file meta header, dataset and a pixel data element holding
// the verbatim payload.
package dicom

import (
	"fmt"
	"io"
	"os"
	"time"

	"mpg2dcm/pkg/dicom/bitio"
)

const (
	manufacturer       = "mpg2dcm"
	defaultCharset     = "ISO_IR 100"
	defaultImageType   = `ORIGINAL\PRIMARY`
	defaultPhotometric = "YBR_PARTIAL_420"

	// Video Endoscopic Image Storage.
	sopClassVideoEndoscopic = "1.2.840.10008.5.1.4.1.1.77.1.1"

	copyBufferSize = 8192

	undefinedLength = 0xFFFFFFFF

	// maxDeclaredLength is the largest length the 32-bit pixel data
	// header can declare without colliding with the undefined length
	// sentinel.
	maxDeclaredLength = 0xFFFFFFFE
)

// Builder assembles a DICOM file around a payload stream.
// A builder owns its attribute table exclusively and is meant for a
// single conversion. Not safe for concurrent use.
type Builder struct {
	ds *Dataset

	now    func() time.Time
	newUID func() string
}

// NewBuilder returns a builder with an empty attribute table.
func NewBuilder() *Builder {
	return NewBuilderWith(nil)
}

// NewBuilderWith returns a builder seeded with the given attribute
// table. Caller-supplied attributes take precedence over every
// fill-if-absent default.
func NewBuilderWith(ds *Dataset) *Builder {
	if ds == nil {
		ds = NewDataset()
	}
	return &Builder{
		ds:     ds,
		now:    time.Now,
		newUID: NewUID,
	}
}

// Dataset returns the builder's attribute table.
func (b *Builder) Dataset() *Dataset {
	return b.ds
}

// MergeMetadata writes the derived attributes for every present
// metadata field into the table, overwriting existing values.
// Absent fields are skipped.
func (b *Builder) MergeMetadata(md VideoMetadata) {
	if md.Rows != nil {
		b.ds.SetUint16(TagRows, US, *md.Rows)
	}
	if md.Columns != nil {
		b.ds.SetUint16(TagColumns, US, *md.Columns)
	}
	if md.FrameRate != nil {
		b.ds.SetString(TagCineRate, IS, md.FrameRate.RateString())
		b.ds.SetString(TagFrameTime, DS, md.FrameRate.FrameTimeString())
		b.ds.SetTagRef(TagFrameIncrementPointer, TagFrameTime)
	}
	if md.AspectRatio != nil {
		b.ds.SetString(TagPixelAspectRatio, IS, md.AspectRatio.RatioString())
	}
}

// applyDefaults populates every attribute the serializer requires.
// Creation date, time and manufacturer are always overwritten, the
// rest only fill missing entries so caller values and merged
// metadata are preserved.
func (b *Builder) applyDefaults() {
	now := b.now()
	b.ds.SetDate(TagInstanceCreationDate, now)
	b.ds.SetTime(TagInstanceCreationTime, now)
	b.ds.SetString(TagManufacturer, LO, manufacturer)

	b.setDefaultString(TagImageType, CS, defaultImageType)
	b.setDefaultString(TagSpecificCharacterSet, CS, defaultCharset)
	b.setDefaultUint16(TagBitsAllocated, 8)
	b.setDefaultUint16(TagBitsStored, 8)
	b.setDefaultUint16(TagHighBit, 7)
	b.setDefaultUint16(TagPixelRepresentation, 0)
	b.setDefaultString(TagPhotometricInterpretation, CS, defaultPhotometric)
	b.setDefaultString(TagLossyImageCompression, CS, "01")
	b.setDefaultUint16(TagPlanarConfiguration, 0)
	b.setDefaultUint16(TagSamplesPerPixel, 3)

	// Endoscopy.
	b.setDefaultString(TagModality, CS, "ES")
	b.setDefaultString(TagSOPClassUID, UI, sopClassVideoEndoscopic)

	b.setDefaultUID(TagStudyInstanceUID)
	b.setDefaultUID(TagSeriesInstanceUID)
	b.setDefaultUID(TagSOPInstanceUID)
}

func (b *Builder) setDefaultString(tag Tag, vr VR, value string) {
	if !b.ds.Contains(tag) {
		b.ds.SetString(tag, vr, value)
	}
}

func (b *Builder) setDefaultUint16(tag Tag, value uint16) {
	if !b.ds.Contains(tag) {
		b.ds.SetUint16(tag, US, value)
	}
}

func (b *Builder) setDefaultUID(tag Tag) {
	if !b.ds.Contains(tag) {
		b.ds.SetString(tag, UI, b.newUID())
	}
}

// WriteFile creates the destination file and writes the container.
// The file handle is released on every exit path. The output may be
// left truncated on failure and should be discarded by the caller.
func (b *Builder) WriteFile(path string, payload io.Reader, length *int64) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open destination: %w", err)
	}
	defer file.Close()

	return b.Write(file, payload, length)
}

// Write serializes the container to dst: defaults pass, file meta
// header, dataset, pixel data element and verbatim payload copy.
// A nil length writes the undefined length sentinel and terminates
// the payload with a sequence delimitation item.
func (b *Builder) Write(dst io.Writer, payload io.Reader, length *int64) error {
	if length != nil {
		if *length < 0 {
			return fmt.Errorf("negative payload length: %v", *length)
		}
		if *length > maxDeclaredLength {
			return fmt.Errorf(
				"payload length %v exceeds the declarable maximum %v,"+
					" use undefined length", *length, int64(maxDeclaredLength))
		}
	}

	b.applyDefaults()

	w := bitio.NewWriter(dst)
	if err := writeFileMeta(w, b.ds, TransferSyntaxMPEG2); err != nil {
		return fmt.Errorf("write file meta: %w", err)
	}
	if err := b.ds.Marshal(w); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}

	payloadLength := uint32(undefinedLength)
	if length != nil {
		payloadLength = uint32(*length)
	}
	if err := writeElementHeader(w, TagPixelData, OB, payloadLength); err != nil {
		return fmt.Errorf("write pixel data header: %w", err)
	}

	buf := make([]byte, copyBufferSize)
	if _, err := io.CopyBuffer(dst, payload, buf); err != nil {
		return fmt.Errorf("copy payload: %w", err)
	}

	if length == nil {
		if err := writeDelimitation(w, TagSequenceDelimitationItem); err != nil {
			return fmt.Errorf("write delimitation: %w", err)
		}
	}
	return nil
}
