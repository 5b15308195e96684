package dicom

import (
	"sort"
	"time"

	"mpg2dcm/pkg/dicom/bitio"
)

// Dataset is a mutable attribute table keyed by tag.
// Setters always overwrite; fill-if-absent semantics are built
// on Contains. Not safe for concurrent use.
type Dataset struct {
	elems map[Tag]Element
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{elems: make(map[Tag]Element)}
}

// Contains reports whether the tag has a value.
func (d *Dataset) Contains(tag Tag) bool {
	_, exists := d.elems[tag]
	return exists
}

// Get returns the element for tag.
func (d *Dataset) Get(tag Tag) (Element, bool) {
	elem, exists := d.elems[tag]
	return elem, exists
}

// Len returns the number of attributes.
func (d *Dataset) Len() int {
	return len(d.elems)
}

// SetBytes sets a raw value.
func (d *Dataset) SetBytes(tag Tag, vr VR, value []byte) {
	d.elems[tag] = Element{Tag: tag, VR: vr, Value: value}
}

// SetString sets a textual value.
func (d *Dataset) SetString(tag Tag, vr VR, value string) {
	d.SetBytes(tag, vr, []byte(value))
}

// SetUint16 sets a 16-bit binary value.
func (d *Dataset) SetUint16(tag Tag, vr VR, value uint16) {
	d.SetBytes(tag, vr, []byte{byte(value), byte(value >> 8)})
}

// SetUint32 sets a 32-bit binary value.
func (d *Dataset) SetUint32(tag Tag, vr VR, value uint32) {
	d.SetBytes(tag, vr, []byte{
		byte(value),
		byte(value >> 8),
		byte(value >> 16),
		byte(value >> 24),
	})
}

// SetDate sets a DA value as YYYYMMDD.
func (d *Dataset) SetDate(tag Tag, t time.Time) {
	d.SetString(tag, DA, t.Format("20060102"))
}

// SetTime sets a TM value as HHMMSS.FFF.
func (d *Dataset) SetTime(tag Tag, t time.Time) {
	d.SetString(tag, TM, t.Format("150405.000"))
}

// SetTagRef sets an AT value referencing another tag.
func (d *Dataset) SetTagRef(tag Tag, ref Tag) {
	d.SetBytes(tag, AT, []byte{
		byte(ref.Group),
		byte(ref.Group >> 8),
		byte(ref.Element),
		byte(ref.Element >> 8),
	})
}

// StringValue returns the value for tag with trailing padding removed.
func (d *Dataset) StringValue(tag Tag) (string, bool) {
	elem, exists := d.elems[tag]
	if !exists {
		return "", false
	}
	value := elem.Value
	for len(value) > 0 {
		last := value[len(value)-1]
		if last != ' ' && last != 0x00 {
			break
		}
		value = value[:len(value)-1]
	}
	return string(value), true
}

// Elements returns all elements in ascending tag order.
func (d *Dataset) Elements() []Element {
	elems := make([]Element, 0, len(d.elems))
	for _, elem := range d.elems {
		elems = append(elems, elem)
	}
	sort.Slice(elems, func(i, j int) bool {
		return elems[i].Tag.key() < elems[j].Tag.key()
	})
	return elems
}

// Size returns the combined marshaled size of all elements.
func (d *Dataset) Size() int {
	var total int
	for _, elem := range d.elems {
		total += elem.Size()
	}
	return total
}

// Marshal all elements to writer in ascending tag order.
func (d *Dataset) Marshal(w *bitio.Writer) error {
	for _, elem := range d.Elements() {
		if err := elem.Marshal(w); err != nil {
			return err
		}
	}
	return nil
}
