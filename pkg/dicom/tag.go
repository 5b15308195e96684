package dicom

// Tag identifies one attribute slot in the DICOM data dictionary.
type Tag struct {
	Group   uint16
	Element uint16
}

// key is used for ascending tag order.
func (t Tag) key() uint32 {
	return uint32(t.Group)<<16 | uint32(t.Element)
}

// File meta information group.
var (
	TagFileMetaInformationGroupLength = Tag{0x0002, 0x0000}
	TagFileMetaInformationVersion     = Tag{0x0002, 0x0001}
	TagMediaStorageSOPClassUID        = Tag{0x0002, 0x0002}
	TagMediaStorageSOPInstanceUID     = Tag{0x0002, 0x0003}
	TagTransferSyntaxUID              = Tag{0x0002, 0x0010}
	TagImplementationClassUID         = Tag{0x0002, 0x0012}
	TagImplementationVersionName      = Tag{0x0002, 0x0013}
)

// Dataset tags.
var (
	TagSpecificCharacterSet      = Tag{0x0008, 0x0005}
	TagImageType                 = Tag{0x0008, 0x0008}
	TagInstanceCreationDate      = Tag{0x0008, 0x0012}
	TagInstanceCreationTime      = Tag{0x0008, 0x0013}
	TagSOPClassUID               = Tag{0x0008, 0x0016}
	TagSOPInstanceUID            = Tag{0x0008, 0x0018}
	TagStudyDate                 = Tag{0x0008, 0x0020}
	TagStudyTime                 = Tag{0x0008, 0x0030}
	TagAccessionNumber           = Tag{0x0008, 0x0050}
	TagModality                  = Tag{0x0008, 0x0060}
	TagManufacturer              = Tag{0x0008, 0x0070}
	TagReferringPhysicianName    = Tag{0x0008, 0x0090}
	TagStudyDescription          = Tag{0x0008, 0x1030}
	TagSeriesDescription         = Tag{0x0008, 0x103E}
	TagPatientName               = Tag{0x0010, 0x0010}
	TagPatientID                 = Tag{0x0010, 0x0020}
	TagCineRate                  = Tag{0x0018, 0x0040}
	TagFrameTime                 = Tag{0x0018, 0x1063}
	TagStudyInstanceUID          = Tag{0x0020, 0x000D}
	TagSeriesInstanceUID         = Tag{0x0020, 0x000E}
	TagStudyID                   = Tag{0x0020, 0x0010}
	TagSeriesNumber              = Tag{0x0020, 0x0011}
	TagInstanceNumber            = Tag{0x0020, 0x0013}
	TagSamplesPerPixel           = Tag{0x0028, 0x0002}
	TagPhotometricInterpretation = Tag{0x0028, 0x0004}
	TagPlanarConfiguration       = Tag{0x0028, 0x0006}
	TagFrameIncrementPointer     = Tag{0x0028, 0x0009}
	TagRows                      = Tag{0x0028, 0x0010}
	TagColumns                   = Tag{0x0028, 0x0011}
	TagPixelAspectRatio          = Tag{0x0028, 0x0034}
	TagBitsAllocated             = Tag{0x0028, 0x0100}
	TagBitsStored                = Tag{0x0028, 0x0101}
	TagHighBit                   = Tag{0x0028, 0x0102}
	TagPixelRepresentation       = Tag{0x0028, 0x0103}
	TagLossyImageCompression     = Tag{0x0028, 0x2110}
	TagPixelData                 = Tag{0x7FE0, 0x0010}
	TagSequenceDelimitationItem  = Tag{0xFFFE, 0xE0DD}
)

type dictEntry struct {
	tag Tag
	vr  VR
}

// keywordTable maps attribute keywords accepted in override
// configuration to their tag and value representation.
var keywordTable = map[string]dictEntry{
	"SpecificCharacterSet":      {TagSpecificCharacterSet, CS},
	"ImageType":                 {TagImageType, CS},
	"SOPClassUID":               {TagSOPClassUID, UI},
	"SOPInstanceUID":            {TagSOPInstanceUID, UI},
	"StudyDate":                 {TagStudyDate, DA},
	"StudyTime":                 {TagStudyTime, TM},
	"AccessionNumber":           {TagAccessionNumber, SH},
	"Modality":                  {TagModality, CS},
	"Manufacturer":              {TagManufacturer, LO},
	"ReferringPhysicianName":    {TagReferringPhysicianName, PN},
	"StudyDescription":          {TagStudyDescription, LO},
	"SeriesDescription":         {TagSeriesDescription, LO},
	"PatientName":               {TagPatientName, PN},
	"PatientID":                 {TagPatientID, LO},
	"CineRate":                  {TagCineRate, IS},
	"FrameTime":                 {TagFrameTime, DS},
	"StudyInstanceUID":          {TagStudyInstanceUID, UI},
	"SeriesInstanceUID":         {TagSeriesInstanceUID, UI},
	"StudyID":                   {TagStudyID, SH},
	"SeriesNumber":              {TagSeriesNumber, IS},
	"InstanceNumber":            {TagInstanceNumber, IS},
	"PhotometricInterpretation": {TagPhotometricInterpretation, CS},
	"Rows":                      {TagRows, US},
	"Columns":                   {TagColumns, US},
	"PixelAspectRatio":          {TagPixelAspectRatio, IS},
	"LossyImageCompression":     {TagLossyImageCompression, CS},
}

// LookupKeyword resolves an attribute keyword to its tag and VR.
func LookupKeyword(keyword string) (Tag, VR, bool) {
	entry, exists := keywordTable[keyword]
	if !exists {
		return Tag{}, VR{}, false
	}
	return entry.tag, entry.vr, true
}
