package dicom

import (
	"mpg2dcm/pkg/dicom/bitio"
)

// Element is a single dataset attribute: tag, value representation
// and raw value bytes. The value is padded to even length when
// marshaled, not when stored.
type Element struct {
	Tag   Tag
	VR    VR
	Value []byte
}

// Size returns the marshaled size in bytes.
// The size must be known before marshaling
// since the element header contains the length.
func (e Element) Size() int {
	headerSize := 8
	if e.VR.longForm() {
		headerSize = 12
	}
	return headerSize + len(e.Value) + len(e.Value)%2
}

// Marshal element to writer in explicit VR little-endian encoding.
func (e Element) Marshal(w *bitio.Writer) error {
	paddedLen := len(e.Value) + len(e.Value)%2

	err := writeElementHeader(w, e.Tag, e.VR, uint32(paddedLen))
	if err != nil {
		return err
	}

	w.TryWrite(e.Value)
	if len(e.Value)%2 != 0 {
		w.TryWriteByte(e.VR.padByte())
	}
	return w.TryError
}

// writeElementHeader writes tag, VR and value length without the value.
// Used directly for the pixel data element whose value is streamed.
func writeElementHeader(w *bitio.Writer, tag Tag, vr VR, length uint32) error {
	w.TryWriteUint16(tag.Group)
	w.TryWriteUint16(tag.Element)
	w.TryWrite(vr[:])
	if vr.longForm() {
		w.TryWrite([]byte{0x00, 0x00})
		w.TryWriteUint32(length)
	} else {
		w.TryWriteUint16(uint16(length))
	}
	return w.TryError
}

// writeDelimitation writes a delimitation item.
// Delimitation items carry no VR, only a zero 32-bit length.
func writeDelimitation(w *bitio.Writer, tag Tag) error {
	w.TryWriteUint16(tag.Group)
	w.TryWriteUint16(tag.Element)
	w.TryWriteUint32(0)
	return w.TryError
}
