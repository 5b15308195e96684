package dicom

import (
	"fmt"

	"mpg2dcm/pkg/dicom/bitio"
)

// TransferSyntaxMPEG2 is the MPEG2 Main Profile / Main Level
// transfer syntax identifier.
const TransferSyntaxMPEG2 = "1.2.840.10008.1.2.4.100"

const (
	implementationClassUID    = "1.2.826.0.1.3680043.10.382.1"
	implementationVersionName = "mpg2dcm-go-1.0"
)

const preambleSize = 128

var magicWord = []byte{'D', 'I', 'C', 'M'}

// writeFileMeta writes the 128-byte preamble, the magic word and the
// group 0002 file meta information derived from the dataset.
// The dataset must already contain SOP class and instance UIDs.
func writeFileMeta(w *bitio.Writer, ds *Dataset, transferSyntax string) error {
	sopClass, exists := ds.StringValue(TagSOPClassUID)
	if !exists {
		return fmt.Errorf("missing SOP class UID")
	}
	sopInstance, exists := ds.StringValue(TagSOPInstanceUID)
	if !exists {
		return fmt.Errorf("missing SOP instance UID")
	}

	meta := NewDataset()
	meta.SetBytes(TagFileMetaInformationVersion, OB, []byte{0x00, 0x01})
	meta.SetString(TagMediaStorageSOPClassUID, UI, sopClass)
	meta.SetString(TagMediaStorageSOPInstanceUID, UI, sopInstance)
	meta.SetString(TagTransferSyntaxUID, UI, transferSyntax)
	meta.SetString(TagImplementationClassUID, UI, implementationClassUID)
	meta.SetString(TagImplementationVersionName, SH, implementationVersionName)

	// The group length covers every group 0002 element after itself.
	meta.SetUint32(TagFileMetaInformationGroupLength, UL,
		uint32(meta.Size()))

	w.TryWrite(make([]byte, preambleSize))
	w.TryWrite(magicWord)
	if w.TryError != nil {
		return w.TryError
	}
	return meta.Marshal(w)
}
